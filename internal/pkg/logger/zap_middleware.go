package logger

import (
	"fmt"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// ZapEchoMiddleware creates request-logging middleware for Echo using the Zap logger
func ZapEchoMiddleware(logger *ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			path := c.Request().URL.Path
			raw := c.Request().URL.RawQuery

			err := next(c)

			latency := time.Since(start)
			statusCode := c.Response().Status
			clientIP := c.RealIP()
			method := c.Request().Method

			if raw != "" {
				path = path + "?" + raw
			}

			userID := c.Get("user_id")
			userIDStr := "anonymous"
			if userID != nil {
				userIDStr = fmt.Sprintf("%v", userID)
			}

			requestID := c.Response().Header().Get("X-Request-ID")

			fields := []zap.Field{
				zap.Int("status", statusCode),
				zap.String("latency", latency.String()),
				zap.Int64("latency_ms", latency.Milliseconds()),
				zap.String("client_ip", clientIP),
				zap.String("method", method),
				zap.String("path", path),
				zap.String("user_id", userIDStr),
				zap.String("request_id", requestID),
			}
			if err != nil {
				fields = append(fields, zap.Error(err))
			}

			switch {
			case statusCode >= 500:
				logger.Logger.Error("HTTP request", fields...)
			case statusCode >= 400:
				logger.Logger.Warn("HTTP request", fields...)
			default:
				logger.Logger.Info("HTTP request", fields...)
			}

			return err
		}
	}
}
