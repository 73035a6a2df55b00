package i18n

import (
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strings"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// Bundle holds every translation of the site. It is read-only after Load
// and safe for concurrent use.
type Bundle struct {
	messages map[string]map[string]string // lang -> "namespace:key.path" -> text
	matcher  language.Matcher
	langs    []string // default first
	missing  func(lang, key string)
}

// Option configures a Bundle.
type Option func(*Bundle)

// WithMissingKeyHandler is called when a key is absent in every candidate
// language.
func WithMissingKeyHandler(fn func(lang, key string)) Option {
	return func(b *Bundle) { b.missing = fn }
}

// Load reads {lang}/{namespace}.yaml files from fsys. Nested YAML maps are
// flattened into dotted keys. defaultLang must be one of the loaded languages.
func Load(fsys fs.FS, defaultLang string, opts ...Option) (*Bundle, error) {
	if defaultLang == "" {
		return nil, ErrEmptyLanguage
	}

	b := &Bundle{messages: make(map[string]map[string]string)}
	for _, opt := range opts {
		opt(b)
	}

	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		ext := strings.ToLower(path.Ext(p))
		if ext != ".yaml" && ext != ".yml" {
			return nil
		}
		dir := path.Dir(p)
		if dir == "." {
			return fmt.Errorf("%w: %s is not inside a language directory", ErrInvalidFile, p)
		}

		raw, err := fs.ReadFile(fsys, p)
		if err != nil {
			return err
		}
		var tree map[string]any
		if err := yaml.Unmarshal(raw, &tree); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidFile, p, err)
		}

		lang := path.Base(dir)
		ns := strings.TrimSuffix(path.Base(p), path.Ext(p))
		if b.messages[lang] == nil {
			b.messages[lang] = make(map[string]string)
		}
		flatten(b.messages[lang], ns+":", tree)
		return nil
	})
	if err != nil {
		return nil, err
	}
	if _, ok := b.messages[defaultLang]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownLang, defaultLang)
	}

	b.langs = []string{defaultLang}
	for lang := range b.messages {
		if lang != defaultLang {
			b.langs = append(b.langs, lang)
		}
	}
	slices.Sort(b.langs[1:])

	tags := make([]language.Tag, len(b.langs))
	for i, l := range b.langs {
		tags[i] = language.Make(l)
	}
	b.matcher = language.NewMatcher(tags)
	return b, nil
}

func flatten(dst map[string]string, prefix string, tree map[string]any) {
	for k, v := range tree {
		switch v := v.(type) {
		case map[string]any:
			flatten(dst, prefix+k+".", v)
		case string:
			dst[prefix+k] = v
		default:
			dst[prefix+k] = fmt.Sprint(v)
		}
	}
}

// Languages returns the loaded languages, default first.
func (b *Bundle) Languages() []string { return slices.Clone(b.langs) }

// Default returns the fallback language.
func (b *Bundle) Default() string { return b.langs[0] }

// Match picks the best supported language. Each preference may be a plain
// tag such as "en" or a full Accept-Language header; earlier preferences
// win. The default language is returned when nothing matches.
func (b *Bundle) Match(preferences ...string) string {
	for _, p := range preferences {
		if strings.TrimSpace(p) == "" {
			continue
		}
		_, idx, conf := b.matcher.Match(parse(p)...)
		if conf != language.No {
			return b.langs[idx]
		}
	}
	return b.langs[0]
}

func parse(s string) []language.Tag {
	tags, _, err := language.ParseAcceptLanguage(s)
	if err != nil {
		return nil
	}
	return tags
}

// T translates namespace:key into lang, falling back to the default
// language and finally to the key itself.
func (b *Bundle) T(lang, namespace, key string, args ...M) string {
	id := namespace + ":" + key
	if s, ok := b.messages[lang][id]; ok {
		return Replace(s, merge(args))
	}
	if s, ok := b.messages[b.langs[0]][id]; ok {
		return Replace(s, merge(args))
	}
	if b.missing != nil {
		b.missing(lang, id)
	}
	return key
}
