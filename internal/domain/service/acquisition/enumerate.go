package acquisition

import (
	"fmt"

	"tarkov_market/internal/domain/entity"
	"tarkov_market/internal/domain/value"
)

// Enumerate produces every priced acquisition method for the item:
// crafts first, then barters, then the bundled decomposition. A craft or
// barter whose cost computes to exactly 0 is dropped — zero means the
// ingredients are unpriced, not that the method is free. Sell offers are
// not acquisition methods and are never considered here.
//
// The returned order is the construction order; ranking happens in
// SelectCheapest.
func (e Engine) Enumerate(item entity.Item, prices value.PriceIndex) []entity.AcquisitionMethod {
	var methods []entity.AcquisitionMethod

	for i := range item.Crafts {
		craft := item.Crafts[i]

		cost := CraftCost(craft, prices)
		if cost <= 0 {
			continue
		}

		methods = append(methods, entity.AcquisitionMethod{
			Type:     entity.MethodCraft,
			ID:       craft.ID,
			Cost:     cost,
			Currency: value.RUB,
			CostRUB:  value.RUB.ToRubles(cost),
			Details: fmt.Sprintf("%s Level %d (%s)",
				craft.Station.Name, craft.Level, formatDuration(craft.Duration)),
			Craft: &craft,
		})
	}

	for i := range item.Barters {
		barter := item.Barters[i]

		cost := BarterCost(barter, prices)
		if cost <= 0 {
			continue
		}

		details := fmt.Sprintf("%s LL%d", barter.Trader.Name, barter.Level)
		if barter.TaskUnlock != nil {
			details += fmt.Sprintf(" (%s)", barter.TaskUnlock.Name)
		}

		methods = append(methods, entity.AcquisitionMethod{
			Type:     entity.MethodBarter,
			ID:       barter.ID,
			Cost:     cost,
			Currency: value.RUB,
			CostRUB:  value.RUB.ToRubles(cost),
			Details:  details,
			Barter:   &barter,
		})
	}

	if item.Bundled != nil {
		if method, ok := e.bundledMethod(item, *item.Bundled, prices); ok {
			methods = append(methods, method)
		}
	}

	return methods
}
