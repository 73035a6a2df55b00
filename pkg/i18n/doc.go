// Package i18n loads YAML translations and negotiates the visitor language.
//
// Files live at {lang}/{namespace}.yaml:
//
//	es/contact.yaml
//	en/contact.yaml
//
// Nested keys are addressed with dots and placeholders use {{name}}:
//
//	b, err := i18n.Load(locales, "es")
//	lang := b.Match(cookieLang, r.Header.Get("Accept-Language"))
//	t := i18n.NewTranslator(b, lang, "contact")
//	t.T("toast.sent.title")
//	t.T("greeting", i18n.M{"name": "Ana"})
//
// Missing keys fall back to the default language, then to the key itself.
package i18n
