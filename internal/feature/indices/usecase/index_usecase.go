// Package usecase は主要株価指数の一括取得ロジックを実装します。
package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"stock_directory/internal/domain/entity"
)

const (
	// DefaultMaxConcurrency は同時に問い合わせる指数数の上限のデフォルト値です。
	DefaultMaxConcurrency = 4
	// DefaultTimeout は指数1件あたりの取得タイムアウトのデフォルト値です。
	DefaultTimeout = 5 * time.Second
)

// SnapshotGetter は銘柄スナップショットの取得を抽象化します。
// quoteフィーチャーの QuoteUsecase がこれを満たします。
type SnapshotGetter interface {
	GetSnapshot(ctx context.Context, symbol string) (entity.Snapshot, error)
}

// Options は指数取得の並行度とタイムアウトを指定します。
// ゼロ値の項目はデフォルト値で補完されます。
type Options struct {
	MaxConcurrency int
	Timeout        time.Duration
}

// IndexUsecase は設定された指数の一覧を並行に取得します。
type IndexUsecase struct {
	quotes  SnapshotGetter
	indices []entity.Index
	opts    Options
	logger  *slog.Logger
}

// NewIndexUsecase はIndexUsecaseの新しいインスタンスを生成します。
func NewIndexUsecase(quotes SnapshotGetter, indices []entity.Index, opts Options, logger *slog.Logger) *IndexUsecase {
	if opts.MaxConcurrency <= 0 {
		opts.MaxConcurrency = DefaultMaxConcurrency
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &IndexUsecase{quotes: quotes, indices: indices, opts: opts, logger: logger}
}

// GetIndices は設定順に指数の相場を返します。
//
// 取得に失敗した指数はログに記録したうえで結果から除外され、呼び出し自体は失敗しません。
// 全件失敗した場合は空のスライスを返します。
func (uc *IndexUsecase) GetIndices(ctx context.Context) []entity.IndexQuote {
	// 設定順を保つため、インデックス位置ごとに結果を書き込む
	results := make([]*entity.IndexQuote, len(uc.indices))

	var g errgroup.Group
	g.SetLimit(uc.opts.MaxConcurrency)
	for i, idx := range uc.indices {
		g.Go(func() error {
			q, err := uc.fetch(ctx, idx)
			if err != nil {
				uc.logger.WarnContext(ctx, "index fetch failed, omitting",
					"symbol", idx.Symbol, "name", idx.Name, "error", err)
				return nil
			}
			results[i] = &q
			return nil
		})
	}
	_ = g.Wait() // タスクは常にnilを返す

	out := make([]entity.IndexQuote, 0, len(results))
	for _, r := range results {
		if r != nil {
			out = append(out, *r)
		}
	}
	return out
}

// fetch は指数1件を取得します。panicもエラーとして扱い、他の指数に影響させません。
func (uc *IndexUsecase) fetch(ctx context.Context, idx entity.Index) (q entity.IndexQuote, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()

	ctx, cancel := context.WithTimeout(ctx, uc.opts.Timeout)
	defer cancel()

	snap, err := uc.quotes.GetSnapshot(ctx, idx.Symbol)
	if err != nil {
		return entity.IndexQuote{}, err
	}
	return entity.NewIndexQuote(idx, snap), nil
}
