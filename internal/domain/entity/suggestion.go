package entity

// Suggestion is a search hit for a ticker that resolved to a named instrument.
type Suggestion struct {
	Symbol   string // Uppercased ticker (e.g. "AAPL")
	Name     string // Instrument long name
	Exchange string // Exchange code reported by the provider
}
