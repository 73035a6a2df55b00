// Package handlers implements the HTTP endpoints of the site: the content
// pages, the contact form and the error pages.
//
// Handlers only translate between HTTP and the domain packages. The
// contact form state lives in a form.Registry keyed by the visitor cookie
// issued by middlewares.Visitor.
package handlers
