package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"stock_directory/internal/app/di"
	"stock_directory/internal/app/router"
	indiceshandler "stock_directory/internal/feature/indices/transport/handler"
	quotehandler "stock_directory/internal/feature/quote/transport/handler"
	searchhandler "stock_directory/internal/feature/search/transport/handler"
	"stock_directory/internal/platform/config"
	"stock_directory/internal/platform/logger"
)

func main() {
	// .envを読み込む
	if err := godotenv.Load(".env"); err != nil {
		log.Println("[INFO] .env not found; using system environment variables")
	}

	// 設定ファイルは任意（未指定なら config.yaml があれば使う）
	path := os.Getenv("CONFIG_FILE")
	if path == "" {
		path = "config.yaml"
	}
	cfg, err := config.Load(path)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	lg := logger.New(cfg.Log.Level, cfg.Log.Format, os.Stdout)
	slog.SetDefault(lg)
	gin.SetMode(cfg.Server.Mode)

	// Repository
	market, err := di.NewMarket(cfg.Provider)
	if err != nil {
		lg.Error("failed to create market provider", "error", err)
		os.Exit(1)
	}

	// Usecase
	uc := di.NewUsecases(market, cfg.Indices, lg)

	// Handler
	handlers := router.Handlers{
		Quote:   quotehandler.NewQuoteHandler(uc.Quote),
		Indices: indiceshandler.NewIndexHandler(uc.Indices),
		Search:  searchhandler.NewSearchHandler(uc.Search),
	}

	// ルータ生成
	r := router.NewRouter(handlers, cfg.CORS.AllowedOrigins, lg)

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		lg.Info("stock directory API listening",
			"addr", cfg.Server.Addr,
			"provider", cfg.Provider.Name,
			"endpoints", []string{
				"GET /api/health",
				"GET /api/stock/:symbol",
				"GET /api/stock/:symbol/chart?period=&interval=",
				"GET /api/market/indices",
				"GET /api/search/:query",
			})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			lg.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// SIGINT/SIGTERMで停止
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	lg.Info("shutting down", "timeout", cfg.Server.ShutdownTimeout)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		lg.Error("graceful shutdown failed", "error", err)
	}
}
