package seo_test

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itopia/site/pkg/seo"
)

func render(t *testing.T, ctx context.Context, fallback seo.Metadata) string {
	t.Helper()
	var b strings.Builder
	require.NoError(t, seo.Head(fallback).Render(ctx, &b))
	return b.String()
}

func TestSetPageMetadata(t *testing.T) {
	t.Parallel()

	t.Run("no collector is a no-op", func(t *testing.T) {
		t.Parallel()
		assert.NotPanics(t, func() {
			seo.SetPageMetadata(context.Background(), seo.Metadata{Title: "x"})
		})
	})

	t.Run("last write wins", func(t *testing.T) {
		t.Parallel()

		c := seo.NewCollector(seo.Metadata{Title: "ITopIA"})
		ctx := seo.WithCollector(context.Background(), c)

		seo.SetPageMetadata(ctx, seo.Metadata{Title: "Primero", Description: "uno"})
		seo.SetPageMetadata(ctx, seo.Metadata{Title: "Segundo"})

		m := c.Metadata()
		assert.Equal(t, "Segundo", m.Title)
		assert.Empty(t, m.Description)
	})

	t.Run("idempotent", func(t *testing.T) {
		t.Parallel()

		c := seo.NewCollector(seo.Metadata{})
		ctx := seo.WithCollector(context.Background(), c)
		m := seo.Metadata{Title: "Contacto", Description: "d"}
		seo.SetPageMetadata(ctx, m)
		first := c.Metadata()
		seo.SetPageMetadata(ctx, m)
		assert.Equal(t, first, c.Metadata())
	})

	t.Run("concurrent writers", func(t *testing.T) {
		t.Parallel()

		c := seo.NewCollector(seo.Metadata{})
		ctx := seo.WithCollector(context.Background(), c)
		var wg sync.WaitGroup
		for range 16 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				seo.SetPageMetadata(ctx, seo.Metadata{Title: "x"})
			}()
		}
		wg.Wait()
		assert.Equal(t, "x", c.Metadata().Title)
	})
}

func TestCollector_Metadata(t *testing.T) {
	t.Parallel()

	org := seo.NewOrganization("ITopIA", "d", "https://itopia.dev")
	c := seo.NewCollector(seo.Metadata{
		Title:     "ITopIA",
		OGImage:   "https://itopia.dev/og.png",
		Canonical: "https://itopia.dev/",
		JSONLD:    []any{org},
	})

	t.Run("defaults before any set", func(t *testing.T) {
		m := c.Metadata()
		assert.Equal(t, "ITopIA", m.OGTitle)
		assert.Len(t, m.JSONLD, 1)
	})

	svc := seo.NewService("Soporte", "s")
	c.Set(seo.Metadata{Title: "Servicios", Description: "desc", JSONLD: []any{svc}})
	m := c.Metadata()
	assert.Equal(t, "Servicios", m.OGTitle, "og:title falls back to title")
	assert.Equal(t, "desc", m.OGDescription, "og:description falls back to description")
	assert.Equal(t, "https://itopia.dev/og.png", m.OGImage)
	assert.Equal(t, []any{org, svc}, m.JSONLD)
}

func TestHead(t *testing.T) {
	t.Parallel()

	t.Run("renders collector metadata", func(t *testing.T) {
		t.Parallel()

		c := seo.NewCollector(seo.Metadata{JSONLD: []any{seo.NewOrganization("ITopIA", "", "")}})
		c.Set(seo.Metadata{
			Title:       "Contacto & más",
			Description: `Consulta "gratuita"`,
			Keywords:    "it, ia",
			OGTitle:     "OG",
			Canonical:   "https://itopia.dev/contact",
		})
		out := render(t, seo.WithCollector(context.Background(), c), seo.Metadata{})

		assert.Contains(t, out, "<title>Contacto &amp; más</title>")
		assert.Contains(t, out, `<meta name="description" content="Consulta &#34;gratuita&#34;">`)
		assert.Contains(t, out, `<meta name="keywords" content="it, ia">`)
		assert.Contains(t, out, `<meta property="og:title" content="OG">`)
		assert.Contains(t, out, `<meta property="og:description" content="Consulta &#34;gratuita&#34;">`)
		assert.Contains(t, out, `<link rel="canonical" href="https://itopia.dev/contact">`)
		assert.Contains(t, out, `<script type="application/ld+json">{"@context":"https://schema.org","@type":"Organization","name":"ITopIA"}</script>`)
		assert.NotContains(t, out, "og:image")
	})

	t.Run("json-ld cannot break out of the script", func(t *testing.T) {
		t.Parallel()

		c := seo.NewCollector(seo.Metadata{})
		c.Set(seo.Metadata{Title: "t", JSONLD: []any{map[string]string{"name": "</script><script>alert(1)</script>"}}})
		out := render(t, seo.WithCollector(context.Background(), c), seo.Metadata{})
		assert.Equal(t, 1, strings.Count(out, "</script>"))
	})

	t.Run("fallback without collector", func(t *testing.T) {
		t.Parallel()

		out := render(t, context.Background(), seo.Metadata{Title: "ITopIA"})
		assert.Contains(t, out, "<title>ITopIA</title>")
		assert.Contains(t, out, `<meta property="og:title" content="ITopIA">`)
	})

	t.Run("unencodable json-ld", func(t *testing.T) {
		t.Parallel()

		c := seo.NewCollector(seo.Metadata{JSONLD: []any{make(chan int)}})
		var b strings.Builder
		require.Error(t, seo.Head(seo.Metadata{}).Render(seo.WithCollector(context.Background(), c), &b))
	})
}

func TestNewOfferCatalog(t *testing.T) {
	t.Parallel()

	cat := seo.NewOfferCatalog("Servicios IT e IA", seo.NewService("Soporte IT", "24/7"))
	require.Len(t, cat.ItemListElement, 1)
	assert.Equal(t, "Offer", cat.ItemListElement[0].Type)
	assert.Empty(t, cat.ItemListElement[0].ItemOffered.Context)
	assert.Equal(t, "Soporte IT", cat.ItemListElement[0].ItemOffered.Name)
}
