// Package middleware はginのリクエストログとpanic復旧のミドルウェアを提供します。
package middleware

import (
	"io"
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"stock_directory/internal/platform/http/handler"
)

// RequestLogger はリクエストごとにメソッド・パス・ステータス・処理時間を記録します。
func RequestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		level := slog.LevelInfo
		if status >= 500 {
			level = slog.LevelError
		}
		logger.LogAttrs(c.Request.Context(), level, "request",
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Int("status", status),
			slog.Duration("latency", time.Since(start)),
			slog.String("client_ip", c.ClientIP()),
		)
	}
}

// Recovery はpanicをログに記録し、汎用的な500レスポンスに変換します。
func Recovery(logger *slog.Logger) gin.HandlerFunc {
	// ginのスタックトレース出力は使わず、slogに一本化する
	return gin.CustomRecoveryWithWriter(io.Discard, func(c *gin.Context, err any) {
		logger.ErrorContext(c.Request.Context(), "panic recovered",
			"method", c.Request.Method, "path", c.Request.URL.Path, "error", err)
		handler.InternalError(c, err)
	})
}
