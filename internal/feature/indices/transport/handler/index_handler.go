// Package handler はindicesフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"stock_directory/internal/domain/entity"
	"stock_directory/internal/feature/indices/transport/http/dto"
)

// IndexUsecase は指数一覧取得のユースケースインターフェースです。
type IndexUsecase interface {
	GetIndices(ctx context.Context) []entity.IndexQuote
}

// IndexHandler は主要指数のHTTPリクエストを処理します。
type IndexHandler struct {
	uc IndexUsecase
}

// NewIndexHandler はIndexHandlerの新しいインスタンスを生成します。
func NewIndexHandler(uc IndexUsecase) *IndexHandler {
	return &IndexHandler{uc: uc}
}

// List は設定された指数の相場をシンボルをキーとするオブジェクトで返します。
// 一部または全部の取得に失敗しても常に200を返します。
//
// エンドポイント例:
// GET /api/market/indices
func (h *IndexHandler) List(c *gin.Context) {
	qs := h.uc.GetIndices(c.Request.Context())
	c.JSON(http.StatusOK, dto.NewIndexQuotesResponse(qs))
}
