package acquisition

import (
	"sort"

	"tarkov_market/internal/domain/entity"
	"tarkov_market/internal/domain/value"
)

// SelectCheapest ranks candidates ascending by ruble cost and returns the
// winner. The sort is stable, so equal costs resolve in enumeration order
// (crafts, then barters, then bundled). Nil means no viable method exists;
// consumers must render that distinctly, never as "free".
func (e Engine) SelectCheapest(candidates []entity.AcquisitionMethod) *entity.AcquisitionMethod {
	if len(candidates) == 0 {
		return nil
	}

	ranked := make([]entity.AcquisitionMethod, len(candidates))
	copy(ranked, candidates)

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].CostRUB < ranked[j].CostRUB
	})

	return &ranked[0]
}

// CheapestFor is the one-item entry point: enumerate, rank, pick.
func (e Engine) CheapestFor(item entity.Item, prices value.PriceIndex) *entity.AcquisitionMethod {
	return e.SelectCheapest(e.Enumerate(item, prices))
}
