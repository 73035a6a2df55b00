package mailer

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"path"
	"sync"
	texttemplate "text/template"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/itopia/site/pkg/sanitizer"
)

// Renderer turns markdown templates into HTML emails wrapped in a layout.
// Parsed templates and layouts are cached; rendered output never is.
type Renderer struct {
	fsys      fs.FS
	md        goldmark.Markdown
	templates sync.Map // name -> *parsedTemplate
	layouts   sync.Map // name -> *template.Template
	dir       string
	layoutDir string
}

type parsedTemplate struct {
	meta *Template
	body *texttemplate.Template
}

// RendererOption configures a Renderer.
type RendererOption func(*Renderer)

// WithTemplateDir sets the directory holding markdown templates. Default ".".
func WithTemplateDir(dir string) RendererOption {
	return func(r *Renderer) { r.dir = dir }
}

// WithLayoutDir sets the directory holding HTML layouts. Default "layouts".
func WithLayoutDir(dir string) RendererOption {
	return func(r *Renderer) { r.layoutDir = dir }
}

// NewRenderer creates a Renderer reading from fsys.
func NewRenderer(fsys fs.FS, opts ...RendererOption) *Renderer {
	r := &Renderer{
		fsys:      fsys,
		dir:       ".",
		layoutDir: "layouts",
		md: goldmark.New(
			goldmark.WithExtensions(ButtonExtension()),
			goldmark.WithRendererOptions(html.WithHardWraps()),
		),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Rendered is the output of Render.
type Rendered struct {
	Metadata *Template
	HTML     string
	Text     string
}

// Render executes the named template with data, converts it to HTML and
// wraps it in layout. Text is the tag-free version of the converted body.
func (r *Renderer) Render(layout, name string, data any) (*Rendered, error) {
	tpl, err := r.template(name)
	if err != nil {
		return nil, err
	}

	var md bytes.Buffer
	if err := tpl.body.Execute(&md, data); err != nil {
		return nil, errors.Join(ErrRenderFailed, err)
	}

	var body bytes.Buffer
	if err := r.md.Convert(md.Bytes(), &body); err != nil {
		return nil, errors.Join(ErrRenderFailed, err)
	}

	lt, err := r.layout(layout)
	if err != nil {
		return nil, err
	}

	var out bytes.Buffer
	if err := lt.Execute(&out, map[string]any{
		"Content":  template.HTML(body.String()), //nolint:gosec // produced by goldmark without raw HTML
		"Metadata": tpl.meta.Metadata,
	}); err != nil {
		return nil, errors.Join(ErrRenderFailed, err)
	}

	return &Rendered{
		Metadata: tpl.meta,
		HTML:     out.String(),
		Text:     sanitizer.PlainText(body.String()),
	}, nil
}

func (r *Renderer) template(name string) (*parsedTemplate, error) {
	if v, ok := r.templates.Load(name); ok {
		return v.(*parsedTemplate), nil
	}

	raw, err := fs.ReadFile(r.fsys, path.Join(r.dir, name))
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrTemplateNotFound, name)
	}
	meta, err := ParseTemplate(raw)
	if err != nil {
		return nil, err
	}
	body, err := texttemplate.New(name).Parse(meta.Body)
	if err != nil {
		return nil, errors.Join(ErrRenderFailed, err)
	}

	v, _ := r.templates.LoadOrStore(name, &parsedTemplate{meta: meta, body: body})
	return v.(*parsedTemplate), nil
}

func (r *Renderer) layout(name string) (*template.Template, error) {
	if v, ok := r.layouts.Load(name); ok {
		return v.(*template.Template), nil
	}

	raw, err := fs.ReadFile(r.fsys, path.Join(r.layoutDir, name))
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrLayoutNotFound, name)
	}
	t, err := template.New(name).Parse(string(raw))
	if err != nil {
		return nil, errors.Join(ErrRenderFailed, err)
	}

	v, _ := r.layouts.LoadOrStore(name, t)
	return v.(*template.Template), nil
}
