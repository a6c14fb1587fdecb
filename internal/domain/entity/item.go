package entity

import (
	"time"

	"tarkov_market/internal/domain/value"
)

// Item is one questline requirement together with everything the engine
// needs to price it: market data, craft recipes, barter offers and an
// optional bundled source. Items are rebuilt from the upstream catalog on
// every fetch cycle and treated as immutable for the duration of a pass.
type Item struct {
	ID                   string     `json:"id"`
	Name                 string     `json:"name"`
	ShortName            string     `json:"short_name"`
	Avg24hPrice          int64      `json:"avg_24h_price"`
	LastLowPrice         int64      `json:"last_low_price"`
	ChangeLast48h        float64    `json:"change_last_48h"`
	ChangeLast48hPercent *float64   `json:"change_last_48h_percent,omitempty"`
	Updated              time.Time  `json:"updated"`
	IconLink             string     `json:"icon_link"`
	WikiLink             string     `json:"wiki_link"`
	Quantity             int        `json:"quantity"`
	QuestName            string     `json:"quest_name"`
	QuestOrder           int        `json:"quest_order"`
	Crafts               []Craft    `json:"crafts"`
	Barters              []Barter   `json:"barters"`
	SellFor              []SellOffer `json:"sell_for"`

	// FleaMarketFee is nil when the flea market does not list the item at
	// all. Together with zero mode prices that is the restriction signal.
	FleaMarketFee *int64 `json:"flea_market_fee,omitempty"`

	PvPPrice int64 `json:"pvp_price"`
	PvEPrice int64 `json:"pve_price"`

	Bundled *BundledItem `json:"bundled_item,omitempty"`

	// Cheapest is computed by the acquisition engine, never fetched. It is
	// replaced wholesale on every pass.
	Cheapest *AcquisitionMethod `json:"cheapest_acquisition_method,omitempty"`
}

// ModePrice returns the flea price snapshot for the given game mode.
func (i Item) ModePrice(mode value.GameMode) int64 {
	if mode == value.GameModePvE {
		return i.PvEPrice
	}
	return i.PvPPrice
}

// FleaRestricted reports whether the open market does not carry the item.
// A missing fee value is itself the restriction signal, as is a zero price
// in both modes.
func (i Item) FleaRestricted() bool {
	return i.FleaMarketFee == nil || (i.PvPPrice == 0 && i.PvEPrice == 0)
}

// ItemRef is a lightweight reference to an item used inside recipes and
// trade offers.
type ItemRef struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	ShortName string `json:"short_name"`
	IconLink  string `json:"icon_link,omitempty"`
}

// ItemStack is an item reference with a count, e.g. "2x graphics card".
type ItemStack struct {
	Item  ItemRef `json:"item"`
	Count int     `json:"count"`
}

// Vendor identifies a sale venue: a trader or the flea market.
type Vendor struct {
	Name           string `json:"name"`
	NormalizedName string `json:"normalized_name"`
}

const FleaMarketVendor = "flea-market"

// SellOffer is what a vendor pays for the item. Sell offers are display
// and decomposition data only; they are never an acquisition cost source.
type SellOffer struct {
	Vendor   Vendor         `json:"vendor"`
	Price    int64          `json:"price"`
	Currency value.Currency `json:"currency"`
	PriceRUB int64          `json:"price_rub"`
}

// IsFleaMarket reports whether the offer realizes on the open market.
func (o SellOffer) IsFleaMarket() bool {
	return o.Vendor.NormalizedName == FleaMarketVendor
}

// RUB returns the offer price in rubles, normalizing the origin currency
// when the upstream did not supply a ruble figure.
func (o SellOffer) RUB() int64 {
	if o.PriceRUB != 0 {
		return o.PriceRUB
	}
	return int64(o.Currency.ToRubles(o.Price))
}
