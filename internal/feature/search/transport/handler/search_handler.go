// Package handler はsearchフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"stock_directory/internal/domain/entity"
	"stock_directory/internal/feature/search/transport/http/dto"
)

// SearchUsecase は銘柄検索のユースケースインターフェースです。
type SearchUsecase interface {
	Search(ctx context.Context, query string) []entity.Suggestion
}

// SearchHandler は銘柄検索のHTTPリクエストを処理します。
type SearchHandler struct {
	uc SearchUsecase
}

// NewSearchHandler はSearchHandlerの新しいインスタンスを生成します。
func NewSearchHandler(uc SearchUsecase) *SearchHandler {
	return &SearchHandler{uc: uc}
}

// Search は検索候補を常に200で返します。
//
// エンドポイント例:
// GET /api/search/aapl
func (h *SearchHandler) Search(c *gin.Context) {
	ss := h.uc.Search(c.Request.Context(), c.Param("query"))
	c.JSON(http.StatusOK, dto.NewSearchResponse(ss))
}
