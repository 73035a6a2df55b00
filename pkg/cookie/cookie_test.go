package cookie_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itopia/site/pkg/cookie"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func newManager(t *testing.T, opts ...cookie.Option) *cookie.Manager {
	t.Helper()
	m, err := cookie.New(testSecret, opts...)
	require.NoError(t, err)
	return m
}

// roundTrip returns a request carrying every cookie set on w.
func roundTrip(w *httptest.ResponseRecorder) *http.Request {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range w.Result().Cookies() {
		r.AddCookie(c)
	}
	return r
}

func TestNew(t *testing.T) {
	t.Parallel()

	_, err := cookie.New("short")
	require.ErrorIs(t, err, cookie.ErrBadSecret)

	m, err := cookie.New(testSecret)
	require.NoError(t, err)
	require.NotNil(t, m)
}

func TestPlain(t *testing.T) {
	t.Parallel()

	m := newManager(t)

	_, err := m.Get(httptest.NewRequest(http.MethodGet, "/", nil), "lang")
	require.ErrorIs(t, err, cookie.ErrNotFound)

	w := httptest.NewRecorder()
	m.Set(w, "lang", "en", 3600)
	got, err := m.Get(roundTrip(w), "lang")
	require.NoError(t, err)
	assert.Equal(t, "en", got)

	w = httptest.NewRecorder()
	m.Delete(w, "lang")
	assert.Equal(t, -1, w.Result().Cookies()[0].MaxAge)
}

func TestSigned(t *testing.T) {
	t.Parallel()

	m := newManager(t)

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()

		w := httptest.NewRecorder()
		m.SetSigned(w, "vid", "visitor-1", 3600)
		got, err := m.GetSigned(roundTrip(w), "vid")
		require.NoError(t, err)
		assert.Equal(t, "visitor-1", got)
	})

	t.Run("tampered value", func(t *testing.T) {
		t.Parallel()

		w := httptest.NewRecorder()
		m.SetSigned(w, "vid", "visitor-1", 3600)
		c := w.Result().Cookies()[0]
		_, sig, _ := strings.Cut(c.Value, ".")

		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.AddCookie(&http.Cookie{Name: "vid", Value: "dmlzaXRvci0y." + sig})
		_, err := m.GetSigned(r, "vid")
		require.ErrorIs(t, err, cookie.ErrBadSig)
	})

	t.Run("signature bound to name", func(t *testing.T) {
		t.Parallel()

		w := httptest.NewRecorder()
		m.SetSigned(w, "vid", "visitor-1", 3600)
		c := w.Result().Cookies()[0]

		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.AddCookie(&http.Cookie{Name: "other", Value: c.Value})
		_, err := m.GetSigned(r, "other")
		require.ErrorIs(t, err, cookie.ErrBadSig)
	})

	t.Run("malformed", func(t *testing.T) {
		t.Parallel()

		for _, v := range []string{"nodot", "!!!.abc", "YQ.!!!"} {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			r.AddCookie(&http.Cookie{Name: "vid", Value: v})
			_, err := m.GetSigned(r, "vid")
			require.ErrorIs(t, err, cookie.ErrBadSig, v)
		}
	})

	t.Run("other secret rejects", func(t *testing.T) {
		t.Parallel()

		w := httptest.NewRecorder()
		m.SetSigned(w, "vid", "visitor-1", 3600)

		other, err := cookie.New(strings.Repeat("x", 32))
		require.NoError(t, err)
		_, err = other.GetSigned(roundTrip(w), "vid")
		require.ErrorIs(t, err, cookie.ErrBadSig)
	})
}

func TestEncrypted(t *testing.T) {
	t.Parallel()

	m := newManager(t)

	w := httptest.NewRecorder()
	require.NoError(t, m.SetEncrypted(w, "secret", "hola", 0))
	c := w.Result().Cookies()[0]
	assert.NotContains(t, c.Value, "hola")

	got, err := m.GetEncrypted(roundTrip(w), "secret")
	require.NoError(t, err)
	assert.Equal(t, "hola", got)

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(&http.Cookie{Name: "renamed", Value: c.Value})
	_, err = m.GetEncrypted(r, "renamed")
	require.ErrorIs(t, err, cookie.ErrDecrypt)

	r = httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(&http.Cookie{Name: "secret", Value: "c2hvcnQ"})
	_, err = m.GetEncrypted(r, "secret")
	require.ErrorIs(t, err, cookie.ErrDecrypt)
}

func TestFlash(t *testing.T) {
	t.Parallel()

	m := newManager(t)

	type toast struct {
		Kind  string `json:"kind"`
		Title string `json:"title"`
	}

	w := httptest.NewRecorder()
	require.NoError(t, m.SetFlash(w, "toast", toast{Kind: "sent", Title: "¡Mensaje enviado!"}))
	set := w.Result().Cookies()
	require.Len(t, set, 1)
	assert.Equal(t, "flash_toast", set[0].Name)

	w2 := httptest.NewRecorder()
	var got toast
	require.NoError(t, m.Flash(w2, roundTrip(w), "toast", &got))
	assert.Equal(t, toast{Kind: "sent", Title: "¡Mensaje enviado!"}, got)

	deleted := w2.Result().Cookies()
	require.Len(t, deleted, 1)
	assert.Equal(t, -1, deleted[0].MaxAge)

	err := m.Flash(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil), "toast", &got)
	require.ErrorIs(t, err, cookie.ErrNotFound)
}

func TestAttributes(t *testing.T) {
	t.Parallel()

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()

		w := httptest.NewRecorder()
		newManager(t).Set(w, "a", "b", 60)
		c := w.Result().Cookies()[0]
		assert.Equal(t, "/", c.Path)
		assert.True(t, c.HttpOnly)
		assert.False(t, c.Secure)
		assert.Equal(t, http.SameSiteLaxMode, c.SameSite)
	})

	t.Run("options", func(t *testing.T) {
		t.Parallel()

		w := httptest.NewRecorder()
		newManager(t,
			cookie.WithDomain("itopia.dev"),
			cookie.WithPath("/contact"),
			cookie.WithSecure(true),
			cookie.WithSameSite(http.SameSiteStrictMode),
		).Set(w, "a", "b", 60)
		c := w.Result().Cookies()[0]
		assert.Equal(t, "itopia.dev", c.Domain)
		assert.Equal(t, "/contact", c.Path)
		assert.True(t, c.Secure)
		assert.Equal(t, http.SameSiteStrictMode, c.SameSite)
	})
}
