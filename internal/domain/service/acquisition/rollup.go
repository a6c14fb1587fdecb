package acquisition

import (
	"tarkov_market/internal/domain/entity"
	"tarkov_market/internal/domain/value"
)

// TotalValue prices the full required quantity of one item. A restricted
// item with a computed method always uses that method's cost, even when a
// stale market price happens to be populated; otherwise the mode price
// applies, and an unpriced item contributes 0.
func TotalValue(item entity.Item, mode value.GameMode) float64 {
	if item.FleaRestricted() && item.Cheapest != nil {
		return item.Cheapest.CostRUB * float64(item.Quantity)
	}

	if price := item.ModePrice(mode); price > 0 {
		return float64(price * int64(item.Quantity))
	}

	return 0
}

// Summarize rolls the priced items up into the dashboard totals: grand
// total, per-quest subtotals, restricted-item count and the value-weighted
// 48h price movement.
func Summarize(items []entity.Item, mode value.GameMode) entity.Summary {
	summary := entity.Summary{
		QuestTotals: make(map[string]float64, len(items)),
	}

	var weightedChange float64
	var weightedValue float64

	for _, item := range items {
		itemValue := TotalValue(item, mode)

		summary.GrandTotal += itemValue
		summary.QuestTotals[item.QuestName] += itemValue

		if item.FleaRestricted() {
			summary.RestrictedCount++
		}

		if item.ChangeLast48hPercent != nil && itemValue > 0 {
			weightedChange += *item.ChangeLast48hPercent * itemValue
			weightedValue += itemValue
		}
	}

	if weightedValue > 0 {
		summary.OverallPriceChange = weightedChange / weightedValue
	}

	return summary
}
