package seo

import (
	"context"
	"sync"
)

// Metadata describes the head of one page. Empty OG fields fall back to
// Title and Description when rendered.
type Metadata struct {
	Title         string
	Description   string
	Keywords      string
	OGTitle       string
	OGDescription string
	OGImage       string
	Canonical     string
	JSONLD        []any
}

// Collector holds the metadata of the page being rendered. One collector
// is attached to each request.
type Collector struct {
	defaults Metadata
	page     Metadata
	mu       sync.Mutex
	set      bool
}

// NewCollector creates a Collector. defaults.JSONLD is emitted on every
// page before the page's own entries; the other defaults apply only to
// fields the page leaves empty.
func NewCollector(defaults Metadata) *Collector {
	return &Collector{defaults: defaults}
}

// Set replaces the page metadata. The last call wins.
func (c *Collector) Set(m Metadata) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.page = m
	c.set = true
}

// Metadata returns the metadata to render with every fallback applied.
func (c *Collector) Metadata() Metadata {
	c.mu.Lock()
	page, set := c.page, c.set
	c.mu.Unlock()

	d := c.defaults
	m := d
	if set {
		m = page
		m.Title = or(page.Title, d.Title)
		m.Description = or(page.Description, d.Description)
		m.Keywords = or(page.Keywords, d.Keywords)
		m.OGImage = or(page.OGImage, d.OGImage)
		m.Canonical = or(page.Canonical, d.Canonical)
		m.JSONLD = append(append([]any{}, d.JSONLD...), page.JSONLD...)
	}
	m.OGTitle = or(m.OGTitle, m.Title)
	m.OGDescription = or(m.OGDescription, m.Description)
	return m
}

func or(v, fallback string) string {
	if v != "" {
		return v
	}
	return fallback
}

type collectorKey struct{}

// WithCollector attaches c to ctx.
func WithCollector(ctx context.Context, c *Collector) context.Context {
	return context.WithValue(ctx, collectorKey{}, c)
}

// FromContext returns the collector attached to ctx, if any.
func FromContext(ctx context.Context) (*Collector, bool) {
	c, ok := ctx.Value(collectorKey{}).(*Collector)
	return c, ok
}

// SetPageMetadata records m for the current page. Without a collector in
// ctx it does nothing.
func SetPageMetadata(ctx context.Context, m Metadata) {
	if c, ok := FromContext(ctx); ok {
		c.Set(m)
	}
}
