// Package config loads application configuration from an optional YAML file and the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gopkg.in/yaml.v3"

	"stock_directory/internal/domain/entity"
)

// Provider names accepted by provider.name / MARKET_PROVIDER.
const (
	ProviderYahoo      = "yahoo"
	ProviderTwelveData = "twelvedata"
)

// Config holds all application configuration.
type Config struct {
	Server   Server        `yaml:"server"`
	Log      Log           `yaml:"log"`
	Provider Provider      `yaml:"provider"`
	Indices  IndicesConfig `yaml:"indices"`
	CORS     CORS          `yaml:"cors"`
}

type Server struct {
	Addr            string        `yaml:"addr"`
	Mode            string        `yaml:"mode"` // gin mode: debug, release, test
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

type Log struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
}

type Provider struct {
	Name    string        `yaml:"name"`
	Timeout time.Duration `yaml:"timeout"`
}

// IndicesConfig is the market index dashboard. Items are returned in the order listed.
type IndicesConfig struct {
	Items          []IndexConfig `yaml:"items"`
	MaxConcurrency int           `yaml:"max_concurrency"`
	Timeout        time.Duration `yaml:"timeout"`
}

type IndexConfig struct {
	Symbol string `yaml:"symbol"`
	Name   string `yaml:"name"`
}

type CORS struct {
	AllowedOrigins []string `yaml:"allowed_origins"` // empty or "*" allows any origin
}

// DefaultIndices is used with the Yahoo provider when the config file lists no indices.
var DefaultIndices = []IndexConfig{
	{Symbol: "^GSPC", Name: "S&P 500"},
	{Symbol: "^DJI", Name: "Dow Jones"},
	{Symbol: "^IXIC", Name: "NASDAQ"},
}

// DefaultTwelveDataIndices is the same dashboard in Twelve Data's index tickers.
var DefaultTwelveDataIndices = []IndexConfig{
	{Symbol: "SPX", Name: "S&P 500"},
	{Symbol: "DJI", Name: "Dow Jones"},
	{Symbol: "IXIC", Name: "NASDAQ"},
}

// DefaultIndicesFor returns the default index list for a provider.
func DefaultIndicesFor(provider string) []IndexConfig {
	if provider == ProviderTwelveData {
		return DefaultTwelveDataIndices
	}
	return DefaultIndices
}

// Load reads config from a YAML file, then applies environment variable overrides and defaults.
// A missing file is not an error; path may be empty.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if len(data) > 0 {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config: %w", err)
			}
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	// Environment variable overrides
	if v := os.Getenv("PORT"); v != "" {
		c.Server.Addr = ":" + v
	}
	if v := os.Getenv("ADDR"); v != "" {
		c.Server.Addr = v
	}
	if v := os.Getenv("GIN_MODE"); v != "" {
		c.Server.Mode = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		c.Log.Format = v
	}
	if v := os.Getenv("MARKET_PROVIDER"); v != "" {
		c.Provider.Name = v
	}
	if v := os.Getenv("PROVIDER_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("PROVIDER_TIMEOUT: %w", err)
		}
		c.Provider.Timeout = d
	}
	if v := os.Getenv("CORS_ALLOWED_ORIGINS"); v != "" {
		c.CORS.AllowedOrigins = splitList(v)
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.Server.Addr == "" {
		c.Server.Addr = ":5000"
	}
	if c.Server.Mode == "" {
		c.Server.Mode = "release"
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10 * time.Second
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
	if c.Provider.Name == "" {
		c.Provider.Name = ProviderYahoo
	}
	c.Provider.Name = strings.ToLower(c.Provider.Name)
	if c.Provider.Timeout == 0 {
		c.Provider.Timeout = 10 * time.Second
	}
	if len(c.Indices.Items) == 0 {
		c.Indices.Items = append([]IndexConfig(nil), DefaultIndicesFor(c.Provider.Name)...)
	}
	if c.Indices.MaxConcurrency == 0 {
		c.Indices.MaxConcurrency = len(c.Indices.Items)
	}
	if c.Indices.Timeout == 0 {
		c.Indices.Timeout = 5 * time.Second
	}
}

// Validate checks that all fields hold usable values.
func (c *Config) Validate() error {
	switch c.Provider.Name {
	case ProviderYahoo, ProviderTwelveData:
	default:
		return fmt.Errorf("provider.name must be %q or %q, got %q", ProviderYahoo, ProviderTwelveData, c.Provider.Name)
	}
	switch c.Server.Mode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
	default:
		// gin.SetModeは未知の値でpanicする
		return fmt.Errorf("server.mode must be %s, %s or %s, got %q", gin.DebugMode, gin.ReleaseMode, gin.TestMode, c.Server.Mode)
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("log.format must be text or json, got %q", c.Log.Format)
	}
	if c.Provider.Timeout < 0 {
		return fmt.Errorf("provider.timeout must not be negative")
	}
	if c.Indices.MaxConcurrency < 0 {
		return fmt.Errorf("indices.max_concurrency must not be negative")
	}
	if c.Indices.Timeout < 0 {
		return fmt.Errorf("indices.timeout must not be negative")
	}

	seen := make(map[string]struct{}, len(c.Indices.Items))
	for i, idx := range c.Indices.Items {
		if idx.Symbol == "" {
			return fmt.Errorf("indices.items[%d].symbol is required", i)
		}
		if idx.Name == "" {
			return fmt.Errorf("indices.items[%d].name is required", i)
		}
		if _, dup := seen[idx.Symbol]; dup {
			return fmt.Errorf("indices.items[%d]: duplicate symbol %q", i, idx.Symbol)
		}
		seen[idx.Symbol] = struct{}{}
	}
	return nil
}

// IndexList converts the configured indices into domain values.
func (c IndicesConfig) IndexList() []entity.Index {
	out := make([]entity.Index, 0, len(c.Items))
	for _, it := range c.Items {
		out = append(out, entity.Index{Symbol: it.Symbol, Name: it.Name})
	}
	return out
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
