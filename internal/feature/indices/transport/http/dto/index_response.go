// Package dto はindicesフィーチャーのレスポンスDTOを定義します。
package dto

import (
	"bytes"
	"encoding/json"
	"time"

	"stock_directory/internal/domain/entity"
	"stock_directory/internal/shared/money"
)

// IndexQuoteResponse は指数1件分のレスポンスDTOです。
type IndexQuoteResponse struct {
	Name          string  `json:"name"`
	Symbol        string  `json:"symbol"`
	CurrentPrice  float64 `json:"current_price"`
	Change        float64 `json:"change"`
	ChangePercent float64 `json:"change_percent"`
	Timestamp     string  `json:"timestamp"`
}

// IndexQuotesResponse は GET /api/market/indices のレスポンスです。
// シンボルをキーとするJSONオブジェクトとして、要素の順序どおりにキーを出力します。
type IndexQuotesResponse []IndexQuoteResponse

// NewIndexQuotesResponse は指数相場の一覧をレスポンスDTOに変換します。
func NewIndexQuotesResponse(qs []entity.IndexQuote) IndexQuotesResponse {
	out := make(IndexQuotesResponse, 0, len(qs))
	for _, q := range qs {
		out = append(out, IndexQuoteResponse{
			Name:          q.Name,
			Symbol:        q.Symbol,
			CurrentPrice:  money.Round(q.CurrentPrice),
			Change:        money.Round(q.Change),
			ChangePercent: money.Round(q.ChangePercent),
			Timestamp:     q.Timestamp.Format(time.RFC3339),
		})
	}
	return out
}

// MarshalJSON はmapでは保てないキー順を維持するため、オブジェクトを手で組み立てます。
func (r IndexQuotesResponse) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, q := range r {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(q.Symbol)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(q)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
