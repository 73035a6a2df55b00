package middlewares_test

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itopia/site/internal"
	"github.com/itopia/site/middlewares"
)

func visitorCookie(t *testing.T, resp *http.Response) *http.Cookie {
	t.Helper()
	for _, ck := range resp.Cookies() {
		if ck.Name == middlewares.VisitorCookie {
			return ck
		}
	}
	return nil
}

func TestVisitor(t *testing.T) {
	t.Parallel()

	echo := func(c internal.Context) error {
		return c.String(http.StatusOK, middlewares.GetVisitorID(c))
	}

	t.Run("issues a new id", func(t *testing.T) {
		t.Parallel()

		w := newHarness(t, echo, middlewares.Visitor(0)).do(get())
		id := w.Body.String()
		require.NoError(t, uuid.Validate(id))

		ck := visitorCookie(t, w.Result())
		require.NotNil(t, ck)
		assert.Equal(t, middlewares.DefaultVisitorMaxAge, ck.MaxAge)
		assert.NotEqual(t, id, ck.Value, "cookie is signed")
	})

	t.Run("returning visitor keeps id", func(t *testing.T) {
		t.Parallel()

		hs := newHarness(t, echo, middlewares.Visitor(3600))
		first := hs.do(get())
		ck := visitorCookie(t, first.Result())
		require.NotNil(t, ck)
		assert.Equal(t, 3600, ck.MaxAge)

		req := get()
		req.AddCookie(ck)
		second := hs.do(req)
		assert.Equal(t, first.Body.String(), second.Body.String())
		assert.Nil(t, visitorCookie(t, second.Result()), "no new cookie")
	})

	t.Run("tampered cookie is replaced", func(t *testing.T) {
		t.Parallel()

		req := get()
		req.AddCookie(&http.Cookie{Name: middlewares.VisitorCookie, Value: uuid.NewString()})
		w := newHarness(t, echo, middlewares.Visitor(0)).do(req)

		require.NoError(t, uuid.Validate(w.Body.String()))
		assert.NotNil(t, visitorCookie(t, w.Result()))
	})

	t.Run("no middleware", func(t *testing.T) {
		t.Parallel()

		w := newHarness(t, echo).do(get())
		assert.Empty(t, w.Body.String())
	})
}
