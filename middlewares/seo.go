package middlewares

import (
	"github.com/itopia/site/internal"
	"github.com/itopia/site/pkg/seo"
)

// SEO returns middleware that attaches a fresh seo.Collector with the
// given defaults to every request. Handlers fill it with
// seo.SetPageMetadata and the layout renders it.
func SEO(defaults seo.Metadata) internal.Middleware {
	return func(next internal.HandlerFunc) internal.HandlerFunc {
		return func(c internal.Context) error {
			c.SetContext(seo.WithCollector(c.Context(), seo.NewCollector(defaults)))
			return next(c)
		}
	}
}
