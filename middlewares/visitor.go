package middlewares

import (
	"github.com/google/uuid"

	"github.com/itopia/site/internal"
)

// VisitorCookie is the signed cookie identifying a browser.
const VisitorCookie = "visitor"

// DefaultVisitorMaxAge keeps the visitor cookie for 30 days.
const DefaultVisitorMaxAge = 30 * 24 * 60 * 60

type visitorKey struct{}

// Visitor returns middleware that identifies the browser by a signed
// cookie, issuing a new UUID when the cookie is missing or tampered with.
// The ID keys the visitor's contact form state.
func Visitor(maxAge int) internal.Middleware {
	if maxAge <= 0 {
		maxAge = DefaultVisitorMaxAge
	}

	return func(next internal.HandlerFunc) internal.HandlerFunc {
		return func(c internal.Context) error {
			id, err := c.CookieSigned(VisitorCookie)
			if err != nil || uuid.Validate(id) != nil {
				id = uuid.NewString()
				if err := c.SetCookieSigned(VisitorCookie, id, maxAge); err != nil {
					return err
				}
			}

			c.Set(visitorKey{}, id)
			return next(c)
		}
	}
}

// GetVisitorID returns the visitor ID, or an empty string when the
// Visitor middleware did not run.
func GetVisitorID(c internal.Context) string {
	return internal.ContextValue[string](c, visitorKey{})
}
