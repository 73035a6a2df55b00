// Package web embeds the browser assets and translation files of the site.
package web

import "embed"

// Static holds the files served under /static/.
//
//go:embed static
var Static embed.FS

// Locales holds the {lang}/{namespace}.yaml translation tree.
//
//go:embed locales
var Locales embed.FS
