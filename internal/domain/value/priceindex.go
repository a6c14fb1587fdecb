package value

// PriceIndex is a flat item-id → ruble-price lookup for one game mode,
// built once per fetch cycle and read-only afterwards.
type PriceIndex map[string]int64

// Lookup returns the cached price, or 0 when the item is unpriced. The
// zero fallback deliberately biases downstream cost estimates low; callers
// that need accuracy check Has separately.
func (p PriceIndex) Lookup(id string) int64 {
	return p[id]
}

// Has reports whether the index carries a price for the item.
func (p PriceIndex) Has(id string) bool {
	_, ok := p[id]
	return ok
}
