// Package entity defines the domain models for market quotes, price history and search.
package entity

// Metadata is instrument information reported by a market-data provider.
// Providers omit fields freely, so every field is optional: nil means "not reported".
// Defaults are applied by NewSnapshot, never by the adapters.
type Metadata struct {
	LongName         *string
	PreviousClose    *float64
	Volume           *int64
	MarketCap        *int64
	TrailingPE       *float64
	FiftyTwoWeekHigh *float64
	FiftyTwoWeekLow  *float64
	DividendYield    *float64
	Currency         *string
	Exchange         *string
	MarketState      *string // e.g. "REGULAR", "CLOSED", "PRE", "POST"
}

// StringOr returns *p, or def when p is nil or empty.
func StringOr(p *string, def string) string {
	if p == nil || *p == "" {
		return def
	}
	return *p
}

// FloatOr returns *p, or def when p is nil.
func FloatOr(p *float64, def float64) float64 {
	if p == nil {
		return def
	}
	return *p
}

// IntOr returns *p, or def when p is nil.
func IntOr(p *int64, def int64) int64 {
	if p == nil {
		return def
	}
	return *p
}
