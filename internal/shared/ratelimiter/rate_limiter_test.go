package ratelimiter

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimiter_AllowsBurstUpToLimit(t *testing.T) {
	t.Parallel()

	rl := NewRateLimiter(3, time.Minute)
	ctx := context.Background()

	start := time.Now()
	for i := 0; i < 3; i++ {
		require.NoError(t, rl.Wait(ctx))
	}
	assert.Less(t, time.Since(start), 100*time.Millisecond)
}

func TestRateLimiter_BlocksWhenExhausted(t *testing.T) {
	t.Parallel()

	rl := NewRateLimiter(1, time.Minute)
	require.NoError(t, rl.Wait(context.Background()))

	// 次の枠は1分後なので、短い期限では待てない
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	assert.Error(t, rl.Wait(ctx))
}

func TestRateLimiter_Refills(t *testing.T) {
	t.Parallel()

	rl := NewRateLimiter(2, 100*time.Millisecond)
	ctx := context.Background()

	require.NoError(t, rl.Wait(ctx))
	require.NoError(t, rl.Wait(ctx))

	start := time.Now()
	require.NoError(t, rl.Wait(ctx))
	assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
}

func TestRateLimiter_Disabled(t *testing.T) {
	t.Parallel()

	for _, rl := range []*RateLimiter{NewRateLimiter(0, time.Minute), NewRateLimiter(5, 0)} {
		for i := 0; i < 100; i++ {
			require.NoError(t, rl.Wait(context.Background()))
		}
	}
}

func TestRateLimiter_CanceledContext(t *testing.T) {
	t.Parallel()

	rl := NewRateLimiter(1, time.Minute)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Error(t, rl.Wait(ctx))
}
