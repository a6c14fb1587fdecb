// Package acquisition prices every way to obtain a questline item that the
// flea market does not carry: crafting it, bartering for it, or buying a
// bundled composite and stripping it for parts. All costs are normalized
// into rubles before comparison; the cheapest method wins.
package acquisition

import (
	"fmt"
	"time"

	"tarkov_market/internal/domain/entity"
	"tarkov_market/internal/domain/value"
	"tarkov_market/pkg/contextx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

// Engine computes acquisition methods against immutable catalog and price
// snapshots. It holds no mutable state; the same engine value may be used
// from any number of goroutines.
type Engine struct {
	concurrency int
}

// NewEngine returns an engine that prices up to concurrency items in
// parallel during a pass. Zero or negative means sequential.
func NewEngine(concurrency int) Engine {
	return Engine{concurrency: concurrency}
}

// stackCost sums cached ruble prices over required stacks. An ingredient
// missing from the index prices at 0, which underestimates the method; the
// enumerator later drops methods that collapse to 0 entirely.
func stackCost(stacks []entity.ItemStack, prices value.PriceIndex) int64 {
	var total int64

	for _, stack := range stacks {
		total += prices.Lookup(stack.Item.ID) * int64(stack.Count)
	}

	return total
}

// CraftCost prices one craft recipe against the index.
func CraftCost(craft entity.Craft, prices value.PriceIndex) int64 {
	return stackCost(craft.RequiredItems, prices)
}

// BarterCost prices one barter offer against the index.
func BarterCost(barter entity.Barter, prices value.PriceIndex) int64 {
	return stackCost(barter.RequiredItems, prices)
}

func formatDuration(d time.Duration) string {
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60

	if hours > 0 {
		return fmt.Sprintf("%dh %dm", hours, minutes)
	}

	return fmt.Sprintf("%dm", minutes)
}
