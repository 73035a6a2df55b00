package views

import (
	"context"
	"strconv"
	"time"

	"github.com/itopia/site/pkg/i18n"
)

// Languages are offered by the header switcher in this order.
var Languages = []string{"es", "en"}

// switchURL stores lang and comes back to path.
func switchURL(lang, path string) string {
	return "/lang/" + lang + "?next=" + path
}

func rights(ctx context.Context) string {
	return translate(ctx, "common", "footer.rights", i18n.M{"year": strconv.Itoa(time.Now().Year())})
}
