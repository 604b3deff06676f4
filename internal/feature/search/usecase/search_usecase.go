// Package usecase は銘柄シンボルの検索候補を返すロジックを実装します。
package usecase

import (
	"context"
	"log/slog"
	"strings"
	"unicode/utf8"

	"stock_directory/internal/domain/entity"
)

// MaxQueryLength はプロバイダーへ問い合わせるクエリの最大文字数です。
// これより長いクエリはティッカーではないとみなし、問い合わせずに空を返します。
const MaxQueryLength = 5

// MetadataRepository は銘柄メタデータの取得を抽象化します。
type MetadataRepository interface {
	GetMetadata(ctx context.Context, symbol string) (entity.Metadata, error)
}

// SearchUsecase はクエリをそのままシンボルとして照会し、候補を返します。
type SearchUsecase struct {
	market MetadataRepository
	logger *slog.Logger
}

// NewSearchUsecase はSearchUsecaseの新しいインスタンスを生成します。
func NewSearchUsecase(market MetadataRepository, logger *slog.Logger) *SearchUsecase {
	if logger == nil {
		logger = slog.Default()
	}
	return &SearchUsecase{market: market, logger: logger}
}

// Search はクエリに一致する銘柄の候補を0件または1件返します。
// 取得エラーはログに記録するだけで、呼び出し元には空の結果として扱われます。
func (uc *SearchUsecase) Search(ctx context.Context, query string) []entity.Suggestion {
	if query == "" || utf8.RuneCountInString(query) > MaxQueryLength {
		return []entity.Suggestion{}
	}
	symbol := strings.ToUpper(query)

	meta, err := uc.market.GetMetadata(ctx, symbol)
	if err != nil {
		uc.logger.WarnContext(ctx, "symbol probe failed", "query", query, "symbol", symbol, "error", err)
		return []entity.Suggestion{}
	}
	if meta.LongName == nil || *meta.LongName == "" {
		return []entity.Suggestion{}
	}

	return []entity.Suggestion{{
		Symbol:   symbol,
		Name:     *meta.LongName,
		Exchange: entity.StringOr(meta.Exchange, entity.DefaultExchange),
	}}
}
