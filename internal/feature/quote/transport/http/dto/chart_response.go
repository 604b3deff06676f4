package dto

import (
	"time"

	"stock_directory/internal/domain/entity"
	"stock_directory/internal/shared/money"
)

// BarResponse はチャート1本分のレスポンスDTOです。
type BarResponse struct {
	Date      string  `json:"date"`      // 日付（取引所のタイムゾーン）
	Timestamp int64   `json:"timestamp"` // エポックミリ秒
	Open      float64 `json:"open"`      // 始値
	High      float64 `json:"high"`      // 高値
	Low       float64 `json:"low"`       // 安値
	Close     float64 `json:"close"`     // 終値
	Volume    int64   `json:"volume"`    // 出来高
}

// ChartResponse は GET /api/stock/:symbol/chart のレスポンスDTOです。
type ChartResponse struct {
	Symbol    string        `json:"symbol"`
	Period    string        `json:"period"`
	Interval  string        `json:"interval"`
	Data      []BarResponse `json:"data"`
	Count     int           `json:"count"`
	Timestamp string        `json:"timestamp"`
}

// NewChartResponse はチャートをレスポンスDTOに変換します。
// 足の順序はプロバイダーの返却順のまま保持します。
func NewChartResponse(c entity.Chart) ChartResponse {
	data := make([]BarResponse, 0, len(c.Bars))
	for _, b := range c.Bars {
		data = append(data, BarResponse{
			Date:      b.Time.Format(time.DateOnly),
			Timestamp: b.Time.UnixMilli(),
			Open:      money.RoundFloat(b.Open),
			High:      money.RoundFloat(b.High),
			Low:       money.RoundFloat(b.Low),
			Close:     money.RoundFloat(b.Close),
			Volume:    b.Volume,
		})
	}

	return ChartResponse{
		Symbol:    c.Symbol,
		Period:    string(c.Period),
		Interval:  c.Interval,
		Data:      data,
		Count:     len(data),
		Timestamp: c.Timestamp.Format(time.RFC3339),
	}
}
