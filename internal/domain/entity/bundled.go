package entity

// SubPart is a component contained in a bundled item, with its own sale
// data so the engine can price a strip-for-parts strategy.
type SubPart struct {
	ID            string      `json:"id"`
	Name          string      `json:"name"`
	ShortName     string      `json:"short_name"`
	IconLink      string      `json:"icon_link"`
	Avg24hPrice   int64       `json:"avg_24h_price"`
	LastLowPrice  int64       `json:"last_low_price"`
	ChangeLast48h float64     `json:"change_last_48h"`
	SellFor       []SellOffer `json:"sell_for"`
}

// ContainedPart is a sub-part with its count inside the bundle.
type ContainedPart struct {
	Item  SubPart `json:"item"`
	Count int     `json:"count"`
}

// BundledItem is a composite item (e.g. a weapon preset carrying the scope
// a quest actually wants). It is acquired through its own barters and then
// decomposed: the target part is kept, the rest is sold off.
type BundledItem struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	ShortName     string          `json:"short_name"`
	Avg24hPrice   int64           `json:"avg_24h_price"`
	LastLowPrice  int64           `json:"last_low_price"`
	Barters       []Barter        `json:"barters"`
	SellFor       []SellOffer     `json:"sell_for"`
	ContainsItems []ContainedPart `json:"contains_items"`
}
