package entity

import (
	"time"

	"tarkov_market/internal/domain/value"
)

// Summary is the roll-up the dashboard header renders.
type Summary struct {
	GrandTotal         float64            `json:"grand_total"`
	QuestTotals        map[string]float64 `json:"quest_totals"`
	RestrictedCount    int                `json:"restricted_count"`
	OverallPriceChange float64            `json:"overall_price_change"`
}

// Snapshot is one complete engine pass for one game mode: the priced
// items, their roll-up and the price index the pass was computed against.
type Snapshot struct {
	Mode      value.GameMode   `json:"mode"`
	Items     []Item           `json:"items"`
	Summary   Summary          `json:"summary"`
	Prices    value.PriceIndex `json:"prices"`
	FetchedAt time.Time        `json:"fetched_at"`
}
