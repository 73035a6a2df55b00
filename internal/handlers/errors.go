package handlers

import (
	"net/http"

	"github.com/itopia/site/internal"
	"github.com/itopia/site/internal/content"
	"github.com/itopia/site/internal/views"
	"github.com/itopia/site/middlewares"
	"github.com/itopia/site/pkg/htmx"
	"github.com/itopia/site/pkg/seo"
)

// Errors renders every failed request. HTMX requests keep their page and
// get an error toast; others get the error page. Causes are logged, never
// shown.
func Errors() internal.ErrorHandler {
	return func(c internal.Context, err error) error {
		code, title, message := describe(c, err)
		if code >= http.StatusInternalServerError {
			c.LogError("request failed", "status", code, "error", err)
		} else {
			c.LogDebug("request rejected", "status", code, "error", err)
		}

		if c.IsHTMX() {
			t := views.Toast{Kind: views.ToastError, Title: title, Description: message}
			return c.Render(code, views.ToastOOB(t),
				htmx.WithEvent(ToastEvent, t),
				htmx.WithReswap(htmx.SwapNone),
			)
		}

		meta := content.NotFoundMeta
		if code != http.StatusNotFound {
			meta = seo.Metadata{Title: title + " | " + content.SiteName, Description: message}
		}
		seo.SetPageMetadata(c, meta)
		return c.Render(code, views.Layout("", views.ErrorPage(code, title, message)))
	}
}

// describe maps err to a status and user-facing text.
func describe(c internal.Context, err error) (code int, title, message string) {
	title, message = c.T("error.title"), c.T("error.message")

	if _, ok := middlewares.AsPanicError(err); ok {
		return http.StatusInternalServerError, title, message
	}
	if _, ok := middlewares.AsTimeoutError(err); ok {
		return http.StatusServiceUnavailable, title, c.T("error.unavailable")
	}
	if he := internal.AsHTTPError(err); he != nil {
		if he.Code >= http.StatusInternalServerError {
			return he.Code, title, message
		}
		return he.Code, he.StatusText(), he.Message
	}
	return http.StatusInternalServerError, title, message
}

// NotFound sends unknown paths to the error handler.
func NotFound(c internal.Context) error {
	return internal.ErrNotFound("page not found")
}

// MethodNotAllowed sends unsupported methods to the error handler.
func MethodNotAllowed(c internal.Context) error {
	return internal.ErrMethodNotAllowed("method not allowed")
}
