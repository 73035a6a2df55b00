// Package seo collects per-page metadata during a request and renders it
// into the document head.
//
// A middleware attaches a Collector with site defaults; handlers then call
// SetPageMetadata, and the layout renders Head:
//
//	seo.SetPageMetadata(ctx, seo.Metadata{
//		Title:       "Contacto | ITopIA",
//		Description: "Consulta gratuita",
//	})
//
// JSON-LD values are any JSON-encodable value; the schema types in this
// package cover what the site publishes.
package seo
