package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"DEBUG":   slog.LevelDebug,
		"info":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}
	for in, expected := range tests {
		assert.Equal(t, expected, ParseLevel(in), "ParseLevel(%q)", in)
	}
}

func TestNew_JSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l := New("warn", "json", &buf)

	l.Info("dropped")
	l.Warn("index fetch failed", "symbol", "^DJI")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec), "expected exactly one JSON record, got %q", buf.String())
	assert.Equal(t, "WARN", rec["level"])
	assert.Equal(t, "index fetch failed", rec["msg"])
	assert.Equal(t, "^DJI", rec["symbol"])
}

func TestNew_Text(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l := New("debug", "text", &buf)

	l.Debug("probe", "symbol", "AAPL")

	assert.Contains(t, buf.String(), "level=DEBUG")
	assert.Contains(t, buf.String(), "symbol=AAPL")
}
