// Package di provides dependency injection factories for creating application components.
package di

import (
	"fmt"
	"log/slog"

	indicesusecase "stock_directory/internal/feature/indices/usecase"
	quoteusecase "stock_directory/internal/feature/quote/usecase"
	searchusecase "stock_directory/internal/feature/search/usecase"
	"stock_directory/internal/platform/config"
	"stock_directory/internal/platform/externalapi/twelvedata"
	"stock_directory/internal/platform/externalapi/yahoo"
	infrahttp "stock_directory/internal/platform/http"
)

// defaultUserAgent is sent to providers that do not require a specific one.
const defaultUserAgent = "stock-directory/1.0"

// NewMarket creates the market data provider selected by cfg, with its own HTTP client.
// A non-zero cfg.Timeout overrides the adapter's default timeout.
func NewMarket(cfg config.Provider) (quoteusecase.MarketRepository, error) {
	switch cfg.Name {
	case config.ProviderYahoo:
		yc := yahoo.LoadConfig()
		if cfg.Timeout > 0 {
			yc.Timeout = cfg.Timeout
		}
		return yahoo.NewYahooMarket(yc, infrahttp.NewHTTPClient(yc.Timeout, defaultUserAgent)), nil
	case config.ProviderTwelveData:
		tc := twelvedata.LoadConfig()
		if cfg.Timeout > 0 {
			tc.Timeout = cfg.Timeout
		}
		return twelvedata.NewTwelveDataMarket(tc, infrahttp.NewHTTPClient(tc.Timeout, defaultUserAgent)), nil
	default:
		return nil, fmt.Errorf("unknown market provider %q", cfg.Name)
	}
}

// Usecases bundles the feature usecases built on a single market provider.
type Usecases struct {
	Quote   *quoteusecase.QuoteUsecase
	Indices *indicesusecase.IndexUsecase
	Search  *searchusecase.SearchUsecase
}

// NewUsecases wires every feature usecase to market.
func NewUsecases(market quoteusecase.MarketRepository, indices config.IndicesConfig, logger *slog.Logger) Usecases {
	quoteUC := quoteusecase.NewQuoteUsecase(market, logger)
	return Usecases{
		Quote: quoteUC,
		Indices: indicesusecase.NewIndexUsecase(quoteUC, indices.IndexList(), indicesusecase.Options{
			MaxConcurrency: indices.MaxConcurrency,
			Timeout:        indices.Timeout,
		}, logger),
		Search: searchusecase.NewSearchUsecase(market, logger),
	}
}
