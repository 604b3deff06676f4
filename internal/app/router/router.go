// Package router はHTTPルーティングを組み立てます。
package router

import (
	"log/slog"
	"slices"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	indiceshandler "stock_directory/internal/feature/indices/transport/handler"
	quotehandler "stock_directory/internal/feature/quote/transport/handler"
	searchhandler "stock_directory/internal/feature/search/transport/handler"
	"stock_directory/internal/platform/http/handler"
	"stock_directory/internal/platform/http/middleware"
)

// Handlers はルーターに登録するフィーチャーごとのハンドラーです。
type Handlers struct {
	Quote   *quotehandler.QuoteHandler
	Indices *indiceshandler.IndexHandler
	Search  *searchhandler.SearchHandler
}

// NewRouter はミドルウェアとすべてのエンドポイントを登録したginエンジンを返します。
// allowedOrigins が空または "*" を含む場合はすべてのオリジンを許可します。
func NewRouter(h Handlers, allowedOrigins []string, logger *slog.Logger) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestLogger(logger), middleware.Recovery(logger))
	r.Use(cors.New(corsConfig(allowedOrigins)))

	// 未定義のルート
	r.NoRoute(handler.NotFound)

	api := r.Group("/api")
	{
		// 導通確認用
		api.GET("/health", handler.Health)
		api.HEAD("/health", handler.Health)

		// 個別銘柄
		api.GET("/stock/:symbol", h.Quote.GetStock)
		api.GET("/stock/:symbol/chart", h.Quote.GetChart)

		// 主要指数
		api.GET("/market/indices", h.Indices.List)

		// 銘柄検索
		api.GET("/search/:query", h.Search.Search)
	}

	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowMethods = []string{"GET", "HEAD", "OPTIONS"}
	if len(origins) == 0 || slices.Contains(origins, "*") {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = origins
	return cfg
}
