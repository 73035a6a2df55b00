// Package logger builds the site's slog logger.
//
// Output is JSON on stdout by default. Request-scoped values such as the
// request ID are attached to every record through ContextExtractor functions:
//
//	log := logger.New(cfg.Log, middlewares.RequestIDExtractor())
//	log.InfoContext(ctx, "draft saved")
//	// {"level":"INFO","msg":"draft saved","request_id":"..."}
//
// When SENTRY_DSN is set, errors are also reported to Sentry.
package logger
