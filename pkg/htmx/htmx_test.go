package htmx_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itopia/site/pkg/htmx"
)

func TestRequestHelpers(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodPost, "/contact", nil)
	assert.False(t, htmx.IsHTMX(r))
	assert.False(t, htmx.IsBoosted(r))

	r.Header.Set(htmx.HeaderRequest, "true")
	r.Header.Set(htmx.HeaderBoosted, "true")
	r.Header.Set(htmx.HeaderTarget, "contact-form")
	assert.True(t, htmx.IsHTMX(r))
	assert.True(t, htmx.IsBoosted(r))
	assert.Equal(t, "contact-form", htmx.Target(r))
}

func TestRedirect(t *testing.T) {
	t.Parallel()

	t.Run("htmx", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest(http.MethodPost, "/contact", nil)
		r.Header.Set(htmx.HeaderRequest, "true")
		w := httptest.NewRecorder()
		htmx.Redirect(w, r, "/contact", http.StatusSeeOther)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "/contact", w.Header().Get(htmx.HeaderRedirect))
	})

	t.Run("plain", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest(http.MethodPost, "/contact", nil)
		w := httptest.NewRecorder()
		htmx.Redirect(w, r, "/contact", http.StatusSeeOther)

		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/contact", w.Header().Get("Location"))
	})
}

func TestResponse_Apply(t *testing.T) {
	t.Parallel()

	t.Run("plain triggers", func(t *testing.T) {
		t.Parallel()

		w := httptest.NewRecorder()
		require.NoError(t, htmx.NewResponse(
			htmx.WithTrigger("reset"),
			htmx.WithTrigger("focus"),
			htmx.WithRetarget("#form"),
			htmx.WithReswap(htmx.SwapOuterHTML),
			htmx.WithPushURL("/contact"),
		).Apply(w))

		assert.Equal(t, "reset, focus", w.Header().Get(htmx.HeaderTrigger))
		assert.Equal(t, "#form", w.Header().Get(htmx.HeaderRetarget))
		assert.Equal(t, "outerHTML", w.Header().Get(htmx.HeaderReswap))
		assert.Equal(t, "/contact", w.Header().Get(htmx.HeaderPushURL))
	})

	t.Run("event with detail", func(t *testing.T) {
		t.Parallel()

		w := httptest.NewRecorder()
		require.NoError(t, htmx.NewResponse(
			htmx.WithTrigger("reset"),
			htmx.WithEvent("toast", map[string]string{"kind": "sent"}),
		).Apply(w))

		assert.JSONEq(t, `{"reset":null,"toast":{"kind":"sent"}}`, w.Header().Get(htmx.HeaderTrigger))
	})

	t.Run("non-ascii detail is escaped", func(t *testing.T) {
		t.Parallel()

		w := httptest.NewRecorder()
		require.NoError(t, htmx.NewResponse(
			htmx.WithEvent("toast", map[string]string{"title": "¡Mensaje enviado! 🚀"}),
		).Apply(w))

		v := w.Header().Get(htmx.HeaderTrigger)
		assert.Equal(t, `{"toast":{"title":"\u00a1Mensaje enviado! \ud83d\ude80"}}`, v)

		var got map[string]map[string]string
		require.NoError(t, json.Unmarshal([]byte(v), &got))
		assert.Equal(t, "¡Mensaje enviado! 🚀", got["toast"]["title"])
	})

	t.Run("nil response", func(t *testing.T) {
		t.Parallel()

		var resp *htmx.Response
		w := httptest.NewRecorder()
		require.NoError(t, resp.Apply(w))
		require.NoError(t, resp.RenderOOB(context.Background(), w))
		assert.Empty(t, w.Header())
	})

	t.Run("unencodable detail", func(t *testing.T) {
		t.Parallel()

		err := htmx.NewResponse(htmx.WithEvent("bad", make(chan int))).Apply(httptest.NewRecorder())
		require.Error(t, err)
	})
}

type fragment string

func (f fragment) Render(_ context.Context, w io.Writer) error {
	_, err := io.WriteString(w, string(f))
	return err
}

func TestResponse_RenderOOB(t *testing.T) {
	t.Parallel()

	var b strings.Builder
	resp := htmx.NewResponse(htmx.WithOOB(fragment(`<div id="a" hx-swap-oob="true"></div>`), fragment(`<div id="b"></div>`)))
	require.NoError(t, resp.RenderOOB(context.Background(), &b))
	assert.Equal(t, `<div id="a" hx-swap-oob="true"></div><div id="b"></div>`, b.String())
}
