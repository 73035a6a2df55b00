package i18n

import "context"

// Translator is a Bundle bound to one language and namespace.
type Translator struct {
	bundle    *Bundle
	lang      string
	namespace string
}

// NewTranslator binds b to lang and namespace. An empty lang means the
// bundle default.
func NewTranslator(b *Bundle, lang, namespace string) *Translator {
	if lang == "" {
		lang = b.Default()
	}
	return &Translator{bundle: b, lang: lang, namespace: namespace}
}

// T translates key in the translator's namespace.
func (t *Translator) T(key string, args ...M) string {
	return t.bundle.T(t.lang, t.namespace, key, args...)
}

// Namespace returns a translator for the same language in another namespace.
func (t *Translator) Namespace(ns string) *Translator {
	return &Translator{bundle: t.bundle, lang: t.lang, namespace: ns}
}

// Language returns the bound language.
func (t *Translator) Language() string { return t.lang }

type translatorKey struct{}

// WithTranslator stores t in ctx.
func WithTranslator(ctx context.Context, t *Translator) context.Context {
	return context.WithValue(ctx, translatorKey{}, t)
}

// FromContext returns the translator stored by WithTranslator.
func FromContext(ctx context.Context) (*Translator, bool) {
	t, ok := ctx.Value(translatorKey{}).(*Translator)
	return t, ok
}
