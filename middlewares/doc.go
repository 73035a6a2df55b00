// Package middlewares provides the HTTP middleware of the site.
//
// # Request ID
//
// RequestID keeps an upstream X-Request-ID or generates a UUID, stores it
// in the context and echoes it in the response. RequestIDExtractor adds it
// to every log line:
//
//	log := logger.New(cfg.Log, middlewares.RequestIDExtractor())
//
// # Recover and Timeout
//
// Recover turns panics into *PanicError and Timeout turns an exceeded
// deadline into *TimeoutError. Both are returned to the app's ErrorHandler,
// which renders them as 500 and 503.
//
// # I18n
//
// I18n resolves the language from the "lang" cookie and Accept-Language
// and stores an *i18n.Translator in the request context.
//
// # Visitor and SEO
//
// Visitor identifies the browser through a signed "visitor" cookie; the ID
// keys the contact form state. SEO attaches a per-request seo.Collector
// with the site defaults.
//
// # Recommended Order
//
//	internal.WithMiddleware(
//	    middlewares.RequestID(),  // assign ID for all subsequent logging
//	    middlewares.AccessLog(),
//	    middlewares.I18n(bundle), // error pages are translated
//	    middlewares.SEO(content.Defaults(baseURL)),
//	    middlewares.Recover(),
//	    middlewares.Visitor(0),
//	)
//
// Timeout is attached per route so endpoints that report the outcome of
// detached work can run without it:
//
//	r.GET("/about", about, middlewares.Timeout(10*time.Second))
package middlewares
