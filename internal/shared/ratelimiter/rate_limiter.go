// Package ratelimiter は外部API呼び出しの頻度を制限します。
package ratelimiter

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// RateLimiterInterface は、API呼び出しなどの操作の頻度を制限するインターフェースです。
type RateLimiterInterface interface {
	Wait(ctx context.Context) error
}

// RateLimiter は interval あたり limit 回まで呼び出しを許可します。
// 複数のgoroutineから同時に使用できます。
type RateLimiter struct {
	l *rate.Limiter
}

var _ RateLimiterInterface = (*RateLimiter)(nil)

// NewRateLimiter は新しいRateLimiterのインスタンスを生成します。
// limit 回までは待たずに通し、以降は interval/limit ごとに1回ずつ補充します。
// limit <= 0 の場合は制限しません。
func NewRateLimiter(limit int, interval time.Duration) *RateLimiter {
	if limit <= 0 || interval <= 0 {
		return &RateLimiter{l: rate.NewLimiter(rate.Inf, 0)}
	}
	return &RateLimiter{l: rate.NewLimiter(rate.Every(interval/time.Duration(limit)), limit)}
}

// Wait は上限に達していれば枠が空くまで待機します。
// ctxがキャンセルされた場合、または期限までに枠が空かない場合はエラーを返します。
func (rl *RateLimiter) Wait(ctx context.Context) error {
	return rl.l.Wait(ctx)
}
