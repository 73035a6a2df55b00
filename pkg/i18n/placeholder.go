package i18n

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// M holds placeholder values for a translation.
type M map[string]any

// Replace substitutes every {{name}} in s with the matching value from m.
// Unknown placeholders are left as they are.
func Replace(s string, m M) string {
	if len(m) == 0 || !strings.Contains(s, "{{") {
		return s
	}
	pairs := make([]string, 0, len(m)*2)
	for _, k := range slices.Sorted(maps.Keys(m)) {
		pairs = append(pairs, "{{"+k+"}}", fmt.Sprint(m[k]))
	}
	return strings.NewReplacer(pairs...).Replace(s)
}

func merge(ms []M) M {
	switch len(ms) {
	case 0:
		return nil
	case 1:
		return ms[0]
	}
	out := make(M)
	for _, m := range ms {
		maps.Copy(out, m)
	}
	return out
}
