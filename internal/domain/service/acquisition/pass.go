package acquisition

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"tarkov_market/internal/domain/entity"
	"tarkov_market/internal/domain/value"
)

// ComputePass runs one full engine pass: for every item that the flea
// market does not carry in this mode, the cheapest acquisition method is
// computed and attached. Input items are not mutated; the returned slice
// is a fresh snapshot. Items are independent, so the pass fans out across
// goroutines against the read-only price index.
//
// The engine is mode-blind: running the second game mode means calling
// ComputePass again with that mode's own price index.
func (e Engine) ComputePass(
	ctx context.Context,
	items []entity.Item,
	prices value.PriceIndex,
	mode value.GameMode,
) []entity.Item {
	result := make([]entity.Item, len(items))
	copy(result, items)

	g, _ := errgroup.WithContext(ctx)
	if e.concurrency > 0 {
		g.SetLimit(e.concurrency)
	}

	for i := range result {
		g.Go(func() error {
			item := &result[i]
			item.Cheapest = nil

			if !item.FleaRestricted() && item.ModePrice(mode) != 0 {
				return nil
			}

			item.Cheapest = e.CheapestFor(*item, prices)

			if item.Cheapest == nil {
				logger(ctx).Debug("no acquisition method found",
					slog.String("item", item.Name),
					slog.String("mode", mode.String()),
				)
			}

			return nil
		})
	}

	// Workers never return errors; Wait is only a join point.
	_ = g.Wait()

	return result
}
