package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Index is a market index tracked on the dashboard.
type Index struct {
	Symbol string // Provider symbol (e.g. "^GSPC")
	Name   string // Display name (e.g. "S&P 500")
}

// IndexQuote is the subset of a Snapshot shown for a market index.
type IndexQuote struct {
	Symbol        string
	Name          string
	CurrentPrice  decimal.Decimal
	Change        decimal.Decimal
	ChangePercent decimal.Decimal
	Timestamp     time.Time
}

// NewIndexQuote projects a snapshot onto the configured index.
func NewIndexQuote(idx Index, s Snapshot) IndexQuote {
	return IndexQuote{
		Symbol:        idx.Symbol,
		Name:          idx.Name,
		CurrentPrice:  s.CurrentPrice,
		Change:        s.Change,
		ChangePercent: s.ChangePercent,
		Timestamp:     s.Timestamp,
	}
}
