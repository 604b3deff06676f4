package handler_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stock_directory/internal/domain"
	"stock_directory/internal/domain/entity"
	"stock_directory/internal/feature/quote/transport/handler"
)

// mockQuoteUsecase はQuoteUsecaseインターフェースのモック実装です。
type mockQuoteUsecase struct {
	GetSnapshotFunc func(ctx context.Context, symbol string) (entity.Snapshot, error)
	GetChartFunc    func(ctx context.Context, symbol, period, interval string) (entity.Chart, error)
}

func (m *mockQuoteUsecase) GetSnapshot(ctx context.Context, symbol string) (entity.Snapshot, error) {
	return m.GetSnapshotFunc(ctx, symbol)
}

func (m *mockQuoteUsecase) GetChart(ctx context.Context, symbol, period, interval string) (entity.Chart, error) {
	return m.GetChartFunc(ctx, symbol, period, interval)
}

func setupRouter(uc handler.QuoteUsecase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := handler.NewQuoteHandler(uc)
	r := gin.New()
	r.GET("/api/stock/:symbol", h.GetStock)
	r.GET("/api/stock/:symbol/chart", h.GetChart)
	return r
}

func ptr[T any](v T) *T { return &v }

// TestQuoteHandler_GetStock はGetStockのHTTPリクエスト/レスポンス処理をテストします。
func TestQuoteHandler_GetStock(t *testing.T) {
	testTime := time.Date(2025, 3, 14, 15, 30, 0, 0, time.UTC)

	tests := []struct {
		name           string
		url            string
		mockGet        func(ctx context.Context, symbol string) (entity.Snapshot, error)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "success",
			url:  "/api/stock/aapl",
			mockGet: func(ctx context.Context, symbol string) (entity.Snapshot, error) {
				assert.Equal(t, "aapl", symbol)
				return entity.NewSnapshot(symbol, entity.Metadata{
					LongName:      ptr("Apple Inc."),
					PreviousClose: ptr(148.0),
					Volume:        ptr(int64(1200)),
					Exchange:      ptr("NMS"),
					MarketState:   ptr("REGULAR"),
				}, []entity.Bar{{Time: testTime, Close: 150.455}}, testTime)
			},
			expectedStatus: http.StatusOK,
			expectedBody: `{"symbol":"AAPL","name":"Apple Inc.","current_price":150.46,"previous_close":148,
				"change":2.46,"change_percent":1.66,"volume":1200,"market_cap":0,"pe_ratio":0,
				"high_52w":0,"low_52w":0,"dividend_yield":0,"currency":"USD","exchange":"NMS",
				"market_state":"REGULAR","timestamp":"2025-03-14T15:30:00Z"}`,
		},
		{
			name: "not found",
			url:  "/api/stock/ZZZZ",
			mockGet: func(ctx context.Context, symbol string) (entity.Snapshot, error) {
				return entity.Snapshot{}, domain.ErrNotFound
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"error":"No data found for symbol ZZZZ"}`,
		},
		{
			name: "provider error does not leak cause",
			url:  "/api/stock/AAPL",
			mockGet: func(ctx context.Context, symbol string) (entity.Snapshot, error) {
				return entity.Snapshot{}, &domain.ProviderError{Op: "quote", Symbol: symbol, Err: errors.New("dial tcp: secret-host:443")}
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"Failed to fetch data for AAPL"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := setupRouter(&mockQuoteUsecase{GetSnapshotFunc: tt.mockGet})

			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			body, err := io.ReadAll(w.Body)
			require.NoError(t, err)
			assert.JSONEq(t, tt.expectedBody, string(body))
			assert.NotContains(t, string(body), "secret-host")
		})
	}
}

// TestQuoteHandler_GetChart はGetChartのクエリパラメータ処理とレスポンスをテストします。
func TestQuoteHandler_GetChart(t *testing.T) {
	barTime := time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)
	now := time.Date(2025, 1, 4, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name           string
		url            string
		mockGet        func(ctx context.Context, symbol, period, interval string) (entity.Chart, error)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "success: explicit parameters",
			url:  "/api/stock/AAPL/chart?period=5d&interval=1h",
			mockGet: func(ctx context.Context, symbol, period, interval string) (entity.Chart, error) {
				assert.Equal(t, "AAPL", symbol)
				assert.Equal(t, "5d", period)
				assert.Equal(t, "1h", interval)
				return entity.Chart{
					Symbol:    "AAPL",
					Period:    entity.Period5d,
					Interval:  interval,
					Bars:      []entity.Bar{{Time: barTime, Open: 1.005, High: 2.5, Low: 1, Close: 2.004, Volume: 10}},
					Timestamp: now,
				}, nil
			},
			expectedStatus: http.StatusOK,
			expectedBody: `{"symbol":"AAPL","period":"5d","interval":"1h","count":1,"timestamp":"2025-01-04T12:00:00Z",
				"data":[{"date":"2025-01-02","timestamp":1735776000000,"open":1.01,"high":2.5,"low":1,"close":2,"volume":10}]}`,
		},
		{
			name: "success: default parameter values",
			url:  "/api/stock/AAPL/chart",
			mockGet: func(ctx context.Context, symbol, period, interval string) (entity.Chart, error) {
				assert.Equal(t, "1y", period)  // デフォルト値
				assert.Equal(t, "1d", interval) // デフォルト値
				return entity.Chart{Symbol: "AAPL", Period: entity.Period1y, Interval: interval, Bars: []entity.Bar{{Time: barTime}}, Timestamp: now}, nil
			},
			expectedStatus: http.StatusOK,
			expectedBody: `{"symbol":"AAPL","period":"1y","interval":"1d","count":1,"timestamp":"2025-01-04T12:00:00Z",
				"data":[{"date":"2025-01-02","timestamp":1735776000000,"open":0,"high":0,"low":0,"close":0,"volume":0}]}`,
		},
		{
			name: "not found",
			url:  "/api/stock/ZZZZ/chart?period=1mo",
			mockGet: func(ctx context.Context, symbol, period, interval string) (entity.Chart, error) {
				return entity.Chart{}, domain.ErrNotFound
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"error":"No chart data found for symbol ZZZZ"}`,
		},
		{
			name: "provider error",
			url:  "/api/stock/AAPL/chart",
			mockGet: func(ctx context.Context, symbol, period, interval string) (entity.Chart, error) {
				return entity.Chart{}, &domain.ProviderError{Op: "chart", Symbol: symbol, Err: errors.New("timeout")}
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"Failed to fetch chart data for AAPL"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := setupRouter(&mockQuoteUsecase{GetChartFunc: tt.mockGet})

			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}
