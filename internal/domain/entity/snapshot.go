package entity

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"stock_directory/internal/domain"
)

// Defaults used when the provider omits a metadata field.
const (
	DefaultCurrency    = "USD"
	DefaultExchange    = "UNKNOWN"
	DefaultMarketState = "CLOSED"
)

var hundred = decimal.NewFromInt(100)

// Snapshot is a point-in-time view of a symbol's quote.
// Prices are kept unrounded; rounding to two places belongs to the response layer.
type Snapshot struct {
	Symbol        string
	Name          string
	CurrentPrice  decimal.Decimal
	PreviousClose decimal.Decimal
	Change        decimal.Decimal
	ChangePercent decimal.Decimal
	Volume        int64
	MarketCap     int64
	PERatio       float64
	High52w       decimal.Decimal
	Low52w        decimal.Decimal
	DividendYield float64
	Currency      string
	Exchange      string
	MarketState   string
	Timestamp     time.Time
}

// NewSnapshot builds a Snapshot from provider metadata and a recent price history.
//
// The current price is the close of the last bar. When the provider does not report a previous
// close, the current price is used instead, so the change is zero.
// It returns domain.ErrNotFound when bars is empty.
func NewSnapshot(symbol string, meta Metadata, bars []Bar, now time.Time) (Snapshot, error) {
	if len(bars) == 0 {
		return Snapshot{}, domain.ErrNotFound
	}
	sym := strings.ToUpper(symbol)

	current := decimal.NewFromFloat(bars[len(bars)-1].Close)
	previous := current
	if meta.PreviousClose != nil {
		previous = decimal.NewFromFloat(*meta.PreviousClose)
	}
	change, percent := PriceChange(current, previous)

	return Snapshot{
		Symbol:        sym,
		Name:          StringOr(meta.LongName, sym),
		CurrentPrice:  current,
		PreviousClose: previous,
		Change:        change,
		ChangePercent: percent,
		Volume:        IntOr(meta.Volume, 0),
		MarketCap:     IntOr(meta.MarketCap, 0),
		PERatio:       FloatOr(meta.TrailingPE, 0),
		High52w:       decimal.NewFromFloat(FloatOr(meta.FiftyTwoWeekHigh, 0)),
		Low52w:        decimal.NewFromFloat(FloatOr(meta.FiftyTwoWeekLow, 0)),
		DividendYield: FloatOr(meta.DividendYield, 0),
		Currency:      StringOr(meta.Currency, DefaultCurrency),
		Exchange:      StringOr(meta.Exchange, DefaultExchange),
		MarketState:   StringOr(meta.MarketState, DefaultMarketState),
		Timestamp:     now,
	}, nil
}

// PriceChange returns current-previous and the change as a percentage of previous.
// The percentage is zero when previous is zero.
func PriceChange(current, previous decimal.Decimal) (change, percent decimal.Decimal) {
	change = current.Sub(previous)
	if previous.IsZero() {
		return change, decimal.Zero
	}
	return change, change.Div(previous).Mul(hundred)
}
