package middlewares

import (
	"github.com/itopia/site/internal"
	"github.com/itopia/site/pkg/i18n"
)

// LanguageCookie is the cookie holding an explicit language choice.
const LanguageCookie = "lang"

// I18nConfig configures the I18n middleware.
type I18nConfig struct {
	Namespace string
	Sources   []internal.ExtractorSource
}

// I18nOption configures I18nConfig.
type I18nOption func(*I18nConfig)

// WithI18nNamespace sets the default namespace of the request translator.
func WithI18nNamespace(ns string) I18nOption {
	return func(cfg *I18nConfig) {
		cfg.Namespace = ns
	}
}

// WithI18nSources replaces the language preference sources.
func WithI18nSources(sources ...internal.ExtractorSource) I18nOption {
	return func(cfg *I18nConfig) {
		cfg.Sources = sources
	}
}

// I18n returns middleware that resolves the visitor's language and stores
// an *i18n.Translator in the request context.
//
// Preferences are read from the "lang" cookie and then Accept-Language;
// the first one the bundle supports wins, else the bundle default.
func I18n(b *i18n.Bundle, opts ...I18nOption) internal.Middleware {
	cfg := &I18nConfig{
		Namespace: "common",
		Sources: []internal.ExtractorSource{
			internal.FromCookie(LanguageCookie),
			internal.FromHeader("Accept-Language"),
		},
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(next internal.HandlerFunc) internal.HandlerFunc {
		return func(c internal.Context) error {
			prefs := make([]string, 0, len(cfg.Sources))
			for _, src := range cfg.Sources {
				if v, ok := src(c); ok {
					prefs = append(prefs, v)
				}
			}

			tr := i18n.NewTranslator(b, b.Match(prefs...), cfg.Namespace)
			c.SetContext(i18n.WithTranslator(c.Context(), tr))

			return next(c)
		}
	}
}

// GetTranslator returns the request translator, or nil.
func GetTranslator(c internal.Context) *i18n.Translator {
	tr, _ := i18n.FromContext(c.Context())
	return tr
}
