package htmx

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

// Swap is an hx-swap strategy.
type Swap string

const (
	SwapInnerHTML Swap = "innerHTML"
	SwapOuterHTML Swap = "outerHTML"
	SwapBeforeEnd Swap = "beforeend"
	SwapNone      Swap = "none"
)

// Renderable is anything that renders HTML, such as a templ.Component.
type Renderable interface {
	Render(ctx context.Context, w io.Writer) error
}

type event struct {
	detail any
	name   string
}

// Response collects htmx response headers and out-of-band fragments.
type Response struct {
	OOB      []Renderable
	events   []event
	Retarget string
	Reswap   Swap
	PushURL  string
}

// Option configures a Response.
type Option func(*Response)

// NewResponse creates a Response from opts.
func NewResponse(opts ...Option) *Response {
	r := &Response{}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// WithOOB appends fragments rendered after the main component. Each needs
// an id and hx-swap-oob.
func WithOOB(components ...Renderable) Option {
	return func(r *Response) { r.OOB = append(r.OOB, components...) }
}

// WithRetarget overrides the swap target.
func WithRetarget(selector string) Option {
	return func(r *Response) { r.Retarget = selector }
}

// WithReswap overrides the swap strategy.
func WithReswap(s Swap) Option {
	return func(r *Response) { r.Reswap = s }
}

// WithPushURL pushes url into the browser history.
func WithPushURL(url string) Option {
	return func(r *Response) { r.PushURL = url }
}

// WithTrigger fires a client event with no detail.
func WithTrigger(name string) Option {
	return WithEvent(name, nil)
}

// WithEvent fires a client event carrying detail as its JSON payload.
func WithEvent(name string, detail any) Option {
	return func(r *Response) { r.events = append(r.events, event{name: name, detail: detail}) }
}

// Apply writes the headers. It must run before WriteHeader.
func (r *Response) Apply(w http.ResponseWriter) error {
	if r == nil {
		return nil
	}
	h := w.Header()
	if r.Retarget != "" {
		h.Set(HeaderRetarget, r.Retarget)
	}
	if r.Reswap != "" {
		h.Set(HeaderReswap, string(r.Reswap))
	}
	if r.PushURL != "" {
		h.Set(HeaderPushURL, r.PushURL)
	}
	if len(r.events) > 0 {
		v, err := r.trigger()
		if err != nil {
			return err
		}
		h.Set(HeaderTrigger, v)
	}
	return nil
}

// trigger encodes events as a comma list when none has detail and as a
// JSON object otherwise. A repeated name keeps its last detail. Non-ASCII
// characters are \u-escaped since browsers read headers as Latin-1.
func (r *Response) trigger() (string, error) {
	plain := true
	for _, e := range r.events {
		if e.detail != nil {
			plain = false
			break
		}
	}
	if plain {
		names := make([]string, len(r.events))
		for i, e := range r.events {
			names[i] = e.name
		}
		return strings.Join(names, ", "), nil
	}

	obj := make(map[string]any, len(r.events))
	for _, e := range r.events {
		obj[e.name] = e.detail
	}
	b, err := json.Marshal(obj)
	if err != nil {
		return "", err
	}
	return asciiJSON(string(b)), nil
}

func asciiJSON(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r < utf8.RuneSelf:
			b.WriteRune(r)
		case r > 0xFFFF:
			r1, r2 := utf16.EncodeRune(r)
			fmt.Fprintf(&b, "\\u%04x\\u%04x", r1, r2)
		default:
			fmt.Fprintf(&b, "\\u%04x", r)
		}
	}
	return b.String()
}

// RenderOOB writes the out-of-band fragments to w.
func (r *Response) RenderOOB(ctx context.Context, w io.Writer) error {
	if r == nil {
		return nil
	}
	for _, c := range r.OOB {
		if err := c.Render(ctx, w); err != nil {
			return err
		}
	}
	return nil
}
