package content_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itopia/site/internal/content"
)

func TestPageMeta(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path      string
		title     string
		canonical string
		jsonld    int
	}{
		{path: content.PathHome, title: content.HomeMeta.Title, canonical: "https://itopia.dev/"},
		{path: content.PathAbout, title: content.AboutMeta.Title, canonical: "https://itopia.dev/about"},
		{path: content.PathServices, title: content.ServicesMeta.Title, canonical: "https://itopia.dev/services", jsonld: 1},
		{path: content.PathContact, title: content.ContactMeta.Title, canonical: "https://itopia.dev/contact"},
		{path: "/nope", title: content.NotFoundMeta.Title},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()

			m := content.PageMeta("https://itopia.dev/", tt.path)
			assert.Equal(t, tt.title, m.Title)
			assert.Equal(t, tt.canonical, m.Canonical)
			assert.Len(t, m.JSONLD, tt.jsonld)
		})
	}

	t.Run("no base url", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, content.PageMeta("", content.PathAbout).Canonical)
	})
}

func TestDefaults(t *testing.T) {
	t.Parallel()

	m := content.Defaults("https://itopia.dev")
	assert.Empty(t, m.OGTitle)
	assert.Equal(t, "https://itopia.dev/static/og.png", m.OGImage)
	require.Len(t, m.JSONLD, 1)

	data, err := json.Marshal(m.JSONLD[0])
	require.NoError(t, err)

	var org map[string]any
	require.NoError(t, json.Unmarshal(data, &org))
	assert.Equal(t, "https://schema.org", org["@context"])
	assert.Equal(t, "Organization", org["@type"])
	assert.Equal(t, "https://itopia.dev/static/favicon.ico", org["logo"])
	assert.Len(t, org["serviceType"], 5)
}

func TestServiceCatalog(t *testing.T) {
	t.Parallel()

	svc := content.ServiceCatalog()
	require.NotNil(t, svc.HasOfferCatalog)
	assert.Len(t, svc.HasOfferCatalog.ItemListElement, 3)
	assert.Empty(t, svc.Provider.Context)
}

func TestCatalogs(t *testing.T) {
	t.Parallel()

	assert.Len(t, content.Nav, 4)
	assert.Len(t, content.Services, 6)
	assert.Len(t, content.HomeServices, 3)
	assert.Len(t, content.Values, 4)
	for _, s := range content.Services {
		assert.Len(t, s.Features, 4, s.Title)
	}
}
