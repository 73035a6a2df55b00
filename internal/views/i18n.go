package views

import (
	"context"

	"github.com/itopia/site/pkg/i18n"
)

// translate looks key up in namespace ns with the request translator.
// Without one the key is returned.
func translate(ctx context.Context, ns, key string, args ...i18n.M) string {
	tr, ok := i18n.FromContext(ctx)
	if !ok {
		return key
	}
	return tr.Namespace(ns).T(key, args...)
}

func language(ctx context.Context) string {
	if tr, ok := i18n.FromContext(ctx); ok {
		return tr.Language()
	}
	return "es"
}
