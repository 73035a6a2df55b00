// Package internal is the small HTTP framework the site runs on. Handlers
// and middlewares import it directly; the root package only assembles an
// App.
//
// # Core Types
//
//   - App: HTTP routing, middleware, health endpoints and graceful shutdown
//   - Context: request/response access, cookies, rendering, i18n and logging
//   - Router: the interface handlers use to declare routes
//   - Handler: implemented by types that declare routes on a router
//   - HandlerFunc: a route handler that returns an error
//   - Middleware: wraps a HandlerFunc
//   - ErrorHandler: turns handler errors into responses
//
// # Context as context.Context
//
// Context embeds context.Context, so it can be passed straight to blocking
// calls:
//
//	func (h *ContactHandler) draft(c internal.Context) error {
//	    holder, err := h.registry.Holder(c, visitorID)
//	    ...
//	}
//
// # HTMX
//
// Requests carrying the HX-Request header have every status rewritten to
// 200 by ResponseWriter. Render accepts htmx options that set response
// headers and append out-of-band fragments; they are ignored for full page
// loads.
//
// # Errors
//
// Handlers return errors. An *HTTPError carries the status and message to
// render; everything else is treated as a 500 by the configured
// ErrorHandler.
package internal
