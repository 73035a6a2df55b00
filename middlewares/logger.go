package middlewares

import (
	"log/slog"
	"time"

	"github.com/itopia/site/internal"
)

// AccessLog returns middleware that logs one line per request with its
// status, size and duration. Server errors log at error level, client
// errors at warn.
func AccessLog() internal.Middleware {
	return func(next internal.HandlerFunc) internal.HandlerFunc {
		return func(c internal.Context) error {
			start := time.Now()
			err := next(c)

			rw := c.ResponseWriter()
			status := rw.Status()

			level := slog.LevelInfo
			switch {
			case err != nil || status >= 500:
				level = slog.LevelError
			case status >= 400:
				level = slog.LevelWarn
			}

			attrs := []any{
				slog.String("method", c.Request().Method),
				slog.String("path", c.Request().URL.Path),
				slog.Int("status", status),
				slog.Int64("size", rw.Size()),
				slog.Duration("duration", time.Since(start)),
				slog.Bool("htmx", c.IsHTMX()),
			}
			if err != nil {
				attrs = append(attrs, slog.Any("error", err))
			}
			c.Logger().Log(c.Context(), level, "request", attrs...)

			return err
		}
	}
}
