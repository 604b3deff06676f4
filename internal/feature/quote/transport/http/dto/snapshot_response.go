package dto

import (
	"time"

	"stock_directory/internal/domain/entity"
	"stock_directory/internal/shared/money"
)

// SnapshotResponse は GET /api/stock/:symbol のレスポンスDTOです。
type SnapshotResponse struct {
	Symbol        string  `json:"symbol"`
	Name          string  `json:"name"`
	CurrentPrice  float64 `json:"current_price"`
	PreviousClose float64 `json:"previous_close"`
	Change        float64 `json:"change"`
	ChangePercent float64 `json:"change_percent"`
	Volume        int64   `json:"volume"`
	MarketCap     int64   `json:"market_cap"`
	PERatio       float64 `json:"pe_ratio"`
	High52w       float64 `json:"high_52w"`
	Low52w        float64 `json:"low_52w"`
	DividendYield float64 `json:"dividend_yield"`
	Currency      string  `json:"currency"`
	Exchange      string  `json:"exchange"`
	MarketState   string  `json:"market_state"`
	Timestamp     string  `json:"timestamp"` // RFC 3339
}

// NewSnapshotResponse はスナップショットをレスポンスDTOに変換します。
// 価格系の項目のみ2桁に丸め、PERと配当利回りはプロバイダーの値をそのまま返します。
func NewSnapshotResponse(s entity.Snapshot) SnapshotResponse {
	return SnapshotResponse{
		Symbol:        s.Symbol,
		Name:          s.Name,
		CurrentPrice:  money.Round(s.CurrentPrice),
		PreviousClose: money.Round(s.PreviousClose),
		Change:        money.Round(s.Change),
		ChangePercent: money.Round(s.ChangePercent),
		Volume:        s.Volume,
		MarketCap:     s.MarketCap,
		PERatio:       s.PERatio,
		High52w:       money.Round(s.High52w),
		Low52w:        money.Round(s.Low52w),
		DividendYield: s.DividendYield,
		Currency:      s.Currency,
		Exchange:      s.Exchange,
		MarketState:   s.MarketState,
		Timestamp:     s.Timestamp.Format(time.RFC3339),
	}
}
