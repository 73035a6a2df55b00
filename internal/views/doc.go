// Package views renders the site markup as templ components.
//
// Markup lives in the .templ files; the _templ.go files next to them are
// generated and checked in. User-facing strings come from the request
// translator stored by middlewares.I18n; page copy comes from
// internal/content.
package views

//go:generate go run github.com/a-h/templ/cmd/templ@v0.3.977 generate
