package tarkovdev

// Wire shapes of the tarkov.dev GraphQL responses. Kept separate from
// domain entities so upstream schema drift stays inside this package.

type graphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type graphQLError struct {
	Message string `json:"message"`
}

type graphQLResponse[T any] struct {
	Data   T              `json:"data"`
	Errors []graphQLError `json:"errors,omitempty"`
}

type itemsData struct {
	Items []apiItem `json:"items"`
}

type tasksData struct {
	Tasks []apiTask `json:"tasks"`
}

type apiVendor struct {
	Name           string `json:"name"`
	NormalizedName string `json:"normalizedName"`
}

type apiSellOffer struct {
	Price    int64     `json:"price"`
	Currency string    `json:"currency"`
	PriceRUB int64     `json:"priceRUB"`
	Vendor   apiVendor `json:"vendor"`
}

type apiItemRef struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	ShortName string `json:"shortName"`
	IconLink  string `json:"iconLink"`
}

type apiStack struct {
	Item  apiItemRef `json:"item"`
	Count int        `json:"count"`
}

type apiStation struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	NormalizedName string `json:"normalizedName"`
}

type apiCraft struct {
	ID            string     `json:"id"`
	Station       apiStation `json:"station"`
	Level         int        `json:"level"`
	Duration      int64      `json:"duration"`
	RequiredItems []apiStack `json:"requiredItems"`
	RewardItems   []apiStack `json:"rewardItems"`
}

type apiTrader struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	NormalizedName string `json:"normalizedName"`
}

type apiTaskUnlock struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type apiBarter struct {
	ID            string         `json:"id"`
	Trader        apiTrader      `json:"trader"`
	Level         int            `json:"level"`
	RequiredItems []apiStack     `json:"requiredItems"`
	RewardItems   []apiStack     `json:"rewardItems"`
	TaskUnlock    *apiTaskUnlock `json:"taskUnlock"`
}

type apiContainedItem struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	ShortName     string         `json:"shortName"`
	IconLink      string         `json:"iconLink"`
	Avg24hPrice   int64          `json:"avg24hPrice"`
	LastLowPrice  int64          `json:"lastLowPrice"`
	ChangeLast48h float64        `json:"changeLast48h"`
	SellFor       []apiSellOffer `json:"sellFor"`
}

type apiContainedStack struct {
	Item  apiContainedItem `json:"item"`
	Count int              `json:"count"`
}

type apiItem struct {
	ID                   string              `json:"id"`
	Name                 string              `json:"name"`
	ShortName            string              `json:"shortName"`
	Avg24hPrice          int64               `json:"avg24hPrice"`
	LastLowPrice         int64               `json:"lastLowPrice"`
	ChangeLast48h        float64             `json:"changeLast48h"`
	ChangeLast48hPercent *float64            `json:"changeLast48hPercent"`
	Updated              string              `json:"updated"`
	IconLink             string              `json:"iconLink"`
	WikiLink             string              `json:"wikiLink"`
	FleaMarketFee        *int64              `json:"fleaMarketFee"`
	SellFor              []apiSellOffer      `json:"sellFor"`
	CraftsFor            []apiCraft          `json:"craftsFor"`
	BartersFor           []apiBarter         `json:"bartersFor"`
	ContainsItems        []apiContainedStack `json:"containsItems"`
}

type apiTaskObjective struct {
	ID          string      `json:"id"`
	Description string      `json:"description"`
	Type        string      `json:"type"`
	Item        *apiItemRef `json:"item"`
	Count       int         `json:"count"`
	FoundInRaid bool        `json:"foundInRaid"`
}

type apiTask struct {
	ID         string             `json:"id"`
	Name       string             `json:"name"`
	Trader     apiTrader          `json:"trader"`
	Objectives []apiTaskObjective `json:"objectives"`
}
