// Package handler はquoteフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"stock_directory/internal/domain"
	"stock_directory/internal/domain/entity"
	"stock_directory/internal/feature/quote/transport/http/dto"
)

const (
	defaultPeriod   = "1y"
	defaultInterval = "1d"
)

// QuoteUsecase は銘柄スナップショットとチャートのユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type QuoteUsecase interface {
	GetSnapshot(ctx context.Context, symbol string) (entity.Snapshot, error)
	GetChart(ctx context.Context, symbol, period, interval string) (entity.Chart, error)
}

// QuoteHandler は銘柄情報のHTTPリクエストを処理します。
type QuoteHandler struct {
	uc QuoteUsecase
}

// NewQuoteHandler は指定されたusecaseでQuoteHandlerの新しいインスタンスを生成します。
func NewQuoteHandler(uc QuoteUsecase) *QuoteHandler {
	return &QuoteHandler{uc: uc}
}

// GetStock は銘柄のスナップショットをJSONで返します。
//
// エンドポイント例:
// GET /api/stock/AAPL
func (h *QuoteHandler) GetStock(c *gin.Context) {
	symbol := c.Param("symbol")

	snap, err := h.uc.GetSnapshot(c.Request.Context(), symbol)
	if err != nil {
		// 上流のエラー内容はクライアントに返さない（usecase側でログ出力済み）
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: fmt.Sprintf("No data found for symbol %s", symbol)})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: fmt.Sprintf("Failed to fetch data for %s", symbol)})
		return
	}

	c.JSON(http.StatusOK, dto.NewSnapshotResponse(snap))
}

// GetChart は期間と足種を指定して銘柄のチャートデータをJSONで返します。
//
// エンドポイント例:
// GET /api/stock/AAPL/chart?period=6mo&interval=1wk
func (h *QuoteHandler) GetChart(c *gin.Context) {
	symbol := c.Param("symbol")
	// 未指定の場合はデフォルト値を使用
	period := c.DefaultQuery("period", defaultPeriod)
	interval := c.DefaultQuery("interval", defaultInterval)

	chart, err := h.uc.GetChart(c.Request.Context(), symbol, period, interval)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: fmt.Sprintf("No chart data found for symbol %s", symbol)})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: fmt.Sprintf("Failed to fetch chart data for %s", symbol)})
		return
	}

	c.JSON(http.StatusOK, dto.NewChartResponse(chart))
}
