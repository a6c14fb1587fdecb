package rest

// Error Модель ошибок
type Error struct {
	// Code Код ошибки
	Code ErrorCode `json:"code"`

	// Message Сообщение об ошибке (для отображения в UI в будущем)
	Message string `json:"message"`
}

// ErrorCode Код ошибки
type ErrorCode string

type Quest struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Order    int    `json:"order"`
	Trader   string `json:"trader,omitempty"`
	WikiLink string `json:"wikiLink,omitempty"`
}

type ItemStack struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	ShortName string `json:"shortName"`
	IconLink  string `json:"iconLink,omitempty"`
	Count     int    `json:"count"`
}

type Craft struct {
	ID            string      `json:"id"`
	Station       string      `json:"station"`
	Level         int         `json:"level"`
	Duration      string      `json:"duration"`
	RequiredItems []ItemStack `json:"requiredItems"`
}

type Barter struct {
	ID            string      `json:"id"`
	Trader        string      `json:"trader"`
	Level         int         `json:"level"`
	QuestUnlock   string      `json:"questUnlock,omitempty"`
	RequiredItems []ItemStack `json:"requiredItems"`
}

type PartValuation struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	ShortName string `json:"shortName"`
	IconLink  string `json:"iconLink,omitempty"`
	Count     int    `json:"count"`
	SellValue int64  `json:"sellValue"`
	Venue     string `json:"venue"`
	Keep      bool   `json:"keep"`
}

type BundledBreakdown struct {
	SourceName      string          `json:"sourceName"`
	Trader          string          `json:"trader"`
	TraderLevel     int             `json:"traderLevel"`
	BarterCost      int64           `json:"barterCost"`
	NetCost         int64           `json:"netCost"`
	TotalSellValue  int64           `json:"totalSellValue"`
	FleaSellValue   int64           `json:"fleaSellValue"`
	TraderSellValue int64           `json:"traderSellValue"`
	RequiredItems   []ItemStack     `json:"requiredItems"`
	Parts           []PartValuation `json:"parts"`
}

type AcquisitionMethod struct {
	Type     string            `json:"type"`
	Cost     int64             `json:"cost"`
	Currency string            `json:"currency"`
	CostRUB  float64           `json:"costRub"`
	Details  string            `json:"details"`
	Craft    *Craft            `json:"craft,omitempty"`
	Barter   *Barter           `json:"barter,omitempty"`
	Bundled  *BundledBreakdown `json:"bundled,omitempty"`
}

type Item struct {
	ID                   string             `json:"id"`
	Name                 string             `json:"name"`
	ShortName            string             `json:"shortName"`
	IconLink             string             `json:"iconLink,omitempty"`
	WikiLink             string             `json:"wikiLink,omitempty"`
	Quantity             int                `json:"quantity"`
	QuestName            string             `json:"questName"`
	QuestOrder           int                `json:"questOrder"`
	Price                int64              `json:"price"`
	ChangeLast48hPercent *float64           `json:"changeLast48hPercent,omitempty"`
	FleaRestricted       bool               `json:"fleaRestricted"`
	TotalValue           float64            `json:"totalValue"`
	Cheapest             *AcquisitionMethod `json:"cheapestAcquisition,omitempty"`
	Crafts               []Craft            `json:"crafts,omitempty"`
	Barters              []Barter           `json:"barters,omitempty"`
	Updated              string             `json:"updated,omitempty"`
}

type Summary struct {
	GrandTotal         float64            `json:"grandTotal"`
	QuestTotals        map[string]float64 `json:"questTotals"`
	RestrictedCount    int                `json:"restrictedCount"`
	OverallPriceChange float64            `json:"overallPriceChange"`
}

type Questline struct {
	Mode      string  `json:"mode"`
	Items     []Item  `json:"items"`
	Summary   Summary `json:"summary"`
	FetchedAt string  `json:"fetchedAt"`
}

type QuestUnlock struct {
	QuestID   string `json:"questId"`
	QuestName string `json:"questName"`
	Trader    string `json:"trader"`
	Level     int    `json:"level"`
	ItemID    string `json:"itemId"`
	ItemName  string `json:"itemName"`
}

type QuestsResponse struct {
	Quests  []Quest                  `json:"quests"`
	Unlocks map[string][]QuestUnlock `json:"unlocks,omitempty"`
}

type SearchRequest struct {
	Query string `json:"query" validate:"required,min=1"`
	Mode  string `json:"mode" validate:"omitempty,oneof=pvp pve"`
	Limit int    `json:"limit" validate:"omitempty,min=1,max=50"`
}

type SearchResult struct {
	Query string `json:"query"`
	Mode  string `json:"mode"`
	Items []Item `json:"items"`
}
