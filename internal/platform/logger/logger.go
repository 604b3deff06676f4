// Package logger はアプリケーション共通の構造化ロガーを生成します。
package logger

import (
	"io"
	"log/slog"
	"strings"
)

// New はlevelとformatに従ってslog.Loggerを生成します。
// formatが "json" 以外の場合はテキスト形式、未知のlevelはinfoとして扱います。
func New(level, format string, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(level)}

	var h slog.Handler
	if strings.EqualFold(format, "json") {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}
	return slog.New(h)
}

// ParseLevel はログレベル文字列をslog.Levelに変換します。
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
