// Package dto はsearchフィーチャーのレスポンスDTOを定義します。
package dto

import "stock_directory/internal/domain/entity"

// SuggestionResponse は検索候補1件のDTOです。
type SuggestionResponse struct {
	Symbol   string `json:"symbol"`
	Name     string `json:"name"`
	Exchange string `json:"exchange"`
}

// SearchResponse は GET /api/search/:query のレスポンスDTOです。
type SearchResponse struct {
	Suggestions []SuggestionResponse `json:"suggestions"`
}

// NewSearchResponse は検索候補をレスポンスDTOに変換します。候補がなくても空配列を返します。
func NewSearchResponse(ss []entity.Suggestion) SearchResponse {
	out := make([]SuggestionResponse, 0, len(ss))
	for _, s := range ss {
		out = append(out, SuggestionResponse{Symbol: s.Symbol, Name: s.Name, Exchange: s.Exchange})
	}
	return SearchResponse{Suggestions: out}
}
