// Package usecase は個別銘柄のスナップショットとチャート取得のビジネスロジックを実装します。
package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"stock_directory/internal/domain"
	"stock_directory/internal/domain/entity"
)

const (
	// DefaultInterval はチャート取得時のデフォルト足種です。
	DefaultInterval = "1d"

	snapshotInterval = "1d"
)

//go:generate mockgen -source=quote_usecase.go -destination=mock_market_repository_test.go -package=usecase

// MarketRepository は外部マーケットデータプロバイダーへの読み取りを抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
//
// 存在しない銘柄やデータなしの場合、実装はエラーではなく空の結果を返します。
type MarketRepository interface {
	// GetMetadata は銘柄の付随情報を取得します。
	GetMetadata(ctx context.Context, symbol string) (entity.Metadata, error)
	// GetHistory は期間・足種を指定して価格履歴を古い順に取得します。
	GetHistory(ctx context.Context, symbol string, period entity.Period, interval string) ([]entity.Bar, error)
}

// QuoteUsecase は銘柄スナップショットとチャートのユースケースです。
type QuoteUsecase struct {
	market MarketRepository
	logger *slog.Logger
	now    func() time.Time
}

// NewQuoteUsecase はQuoteUsecaseの新しいインスタンスを生成します。
func NewQuoteUsecase(market MarketRepository, logger *slog.Logger) *QuoteUsecase {
	if logger == nil {
		logger = slog.Default()
	}
	return &QuoteUsecase{market: market, logger: logger, now: time.Now}
}

// GetSnapshot は直近1日の価格履歴とメタデータから銘柄のスナップショットを組み立てます。
//
// 履歴が空の場合は domain.ErrNotFound、プロバイダー呼び出しの失敗は *domain.ProviderError を返します。
func (uc *QuoteUsecase) GetSnapshot(ctx context.Context, symbol string) (entity.Snapshot, error) {
	var (
		meta entity.Metadata
		bars []entity.Bar
	)

	// メタデータと履歴は独立しているので並行に取得する
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		m, err := uc.market.GetMetadata(gctx, symbol)
		if err != nil {
			return err
		}
		meta = m
		return nil
	})
	g.Go(func() error {
		b, err := uc.market.GetHistory(gctx, symbol, entity.Period1d, snapshotInterval)
		if err != nil {
			return err
		}
		bars = b
		return nil
	})
	if err := g.Wait(); err != nil {
		uc.logger.ErrorContext(ctx, "failed to fetch quote", "symbol", symbol, "error", err)
		return entity.Snapshot{}, &domain.ProviderError{Op: "quote", Symbol: symbol, Err: err}
	}

	snap, err := entity.NewSnapshot(symbol, meta, bars, uc.now())
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			uc.logger.InfoContext(ctx, "no quote data", "symbol", symbol)
		}
		return entity.Snapshot{}, err
	}
	return snap, nil
}

// GetChart は期間と足種を指定して銘柄のチャートデータを取得します。
//
// 未対応の period は 1y として扱い、interval は空でなければそのままプロバイダーへ渡します。
func (uc *QuoteUsecase) GetChart(ctx context.Context, symbol, period, interval string) (entity.Chart, error) {
	p := entity.ParsePeriod(period)
	if interval == "" {
		interval = DefaultInterval
	}

	bars, err := uc.market.GetHistory(ctx, symbol, p, interval)
	if err != nil {
		uc.logger.ErrorContext(ctx, "failed to fetch chart",
			"symbol", symbol, "period", p, "interval", interval, "error", err)
		return entity.Chart{}, &domain.ProviderError{Op: "chart", Symbol: symbol, Err: err}
	}
	if len(bars) == 0 {
		uc.logger.InfoContext(ctx, "no chart data", "symbol", symbol, "period", p, "interval", interval)
		return entity.Chart{}, domain.ErrNotFound
	}

	return entity.Chart{
		Symbol:    strings.ToUpper(symbol),
		Period:    p,
		Interval:  interval,
		Bars:      bars,
		Timestamp: uc.now(),
	}, nil
}
