// Package twelvedata provides a client for the Twelve Data stock market API.
package twelvedata

import (
	"os"
	"strconv"
	"time"
)

const (
	defaultBaseURL = "https://api.twelvedata.com"
	// 無料プランの上限（1分あたり8リクエスト）
	defaultRateLimit = 8
)

// Config holds configuration for the Twelve Data API client.
type Config struct {
	TwelveDataAPIKey string        // API key for authentication
	BaseURL          string        // Base URL for the API (e.g., "https://api.twelvedata.com")
	Timeout          time.Duration // HTTP request timeout
	RateLimit        int           // Requests per minute; 0 disables limiting
}

// LoadConfig loads Twelve Data configuration from environment variables.
func LoadConfig() Config {
	cfg := Config{
		TwelveDataAPIKey: os.Getenv("TWELVE_DATA_API_KEY"),
		BaseURL:          os.Getenv("TWELVE_DATA_BASE_URL"),
		Timeout:          10 * time.Second,
		RateLimit:        defaultRateLimit,
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if v, err := strconv.Atoi(os.Getenv("TWELVE_DATA_RATE_LIMIT")); err == nil && v >= 0 {
		cfg.RateLimit = v
	}
	return cfg
}
