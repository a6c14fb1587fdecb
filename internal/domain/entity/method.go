package entity

import "tarkov_market/internal/domain/value"

type MethodType string

const (
	MethodCraft   MethodType = "craft"
	MethodBarter  MethodType = "barter"
	MethodBundled MethodType = "bundled"
)

// AcquisitionMethod is one priced way to obtain an item. Methods are
// compared by CostRUB; Cost and Currency keep the origin figure for
// display.
type AcquisitionMethod struct {
	Type     MethodType     `json:"type"`
	ID       string         `json:"id"`
	Cost     int64          `json:"cost"`
	Currency value.Currency `json:"currency"`
	CostRUB  float64        `json:"cost_rub"`
	Details  string         `json:"details"`

	Craft   *Craft            `json:"craft,omitempty"`
	Barter  *Barter           `json:"barter,omitempty"`
	Bundled *BundledBreakdown `json:"bundled,omitempty"`
}

// PartValuation is the resale assessment of one bundled sub-part.
type PartValuation struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	ShortName       string  `json:"short_name"`
	IconLink        string  `json:"icon_link"`
	Count           int     `json:"count"`
	MarketPrice     int64   `json:"market_price"`
	BestTraderPrice int64   `json:"best_trader_price"`
	BestTraderName  string  `json:"best_trader_name"`
	FleaPrice       int64   `json:"flea_price"`
	RecommendFlea   bool    `json:"recommend_flea"`
	SellValue       int64   `json:"sell_value"`
	KeepForQuest    bool    `json:"keep_for_quest"`
	ChangeLast48h   float64 `json:"change_last_48h"`
}

// Decomposition is the full strip-for-parts assessment of a bundled item.
// TotalSellValue excludes the kept quest part and is partitioned into the
// flea and trader shares by the per-part venue recommendation.
type Decomposition struct {
	Parts           []PartValuation `json:"parts"`
	TotalSellValue  int64           `json:"total_sell_value"`
	FleaSellValue   int64           `json:"flea_sell_value"`
	TraderSellValue int64           `json:"trader_sell_value"`
}

// BundledBreakdown documents how a bundled method's net cost came to be:
// which barter acquires the composite, what the parts sell for, and what
// remains. NetCost may be negative when resale exceeds the barter cost.
type BundledBreakdown struct {
	BundledName      string          `json:"bundled_name"`
	BundledShortName string          `json:"bundled_short_name"`
	BarterCost       int64           `json:"barter_cost"`
	NetCost          int64           `json:"net_cost"`
	Trader           string          `json:"trader"`
	TraderLevel      int             `json:"trader_level"`
	RequiredItems    []ItemStack     `json:"required_items"`
	Parts            []PartValuation `json:"parts"`
	TotalSellValue   int64           `json:"total_sell_value"`
	FleaSellValue    int64           `json:"flea_sell_value"`
	TraderSellValue  int64           `json:"trader_sell_value"`
}
