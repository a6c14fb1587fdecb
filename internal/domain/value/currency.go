package value

import "fmt"

// Currency is an ISO-ish currency code as the upstream reports it.
type Currency string

const (
	RUB Currency = "RUB"
	USD Currency = "USD"
	EUR Currency = "EUR"
)

// Fixed exchange rates into rubles, the common accounting currency.
// Approximate, update as needed.
//
//nolint:gochecknoglobals
var exchangeRates = map[Currency]float64{
	USD: 140,
	EUR: 150,
	RUB: 1,
}

//nolint:gochecknoglobals
var symbols = map[Currency]string{
	RUB: "₽",
	USD: "$",
	EUR: "€",
}

// ToRubles converts an amount in this currency into rubles. Unknown codes
// are treated as already normalized (1:1). Fractions are preserved;
// rounding is a presentation concern.
func (c Currency) ToRubles(amount int64) float64 {
	rate, ok := exchangeRates[c]
	if !ok {
		rate = 1
	}

	return float64(amount) * rate
}

// Symbol returns the display symbol, falling back to the code itself.
func (c Currency) Symbol() string {
	if s, ok := symbols[c]; ok {
		return s
	}
	return string(c)
}

// FormatRubles renders a ruble amount for logs and API details, grouping
// thousands: "₽ 1,250,000".
func FormatRubles(amount float64) string {
	return RUB.Symbol() + " " + groupDigits(int64(amount))
}

func groupDigits(n int64) string {
	s := fmt.Sprintf("%d", n)

	neg := false
	if len(s) > 0 && s[0] == '-' {
		neg = true
		s = s[1:]
	}

	var out []byte
	for i, d := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, d)
	}

	if neg {
		return "-" + string(out)
	}
	return string(out)
}
