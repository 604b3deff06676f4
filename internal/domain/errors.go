// Package domain defines domain-level errors shared by the market features.
package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that the provider returned no price data for the requested symbol or period.
// Handlers map it to 404.
var ErrNotFound = errors.New("no data found")

// ProviderError reports a failed fetch from the upstream market-data provider.
// The wrapped error carries provider details and must only be logged, never returned to clients.
type ProviderError struct {
	Op     string // operation that failed (e.g. "quote", "chart")
	Symbol string // symbol being fetched
	Err    error  // underlying cause
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Symbol, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}
