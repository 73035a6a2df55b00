package middlewares_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itopia/site/internal"
	"github.com/itopia/site/middlewares"
)

func TestRecover(t *testing.T) {
	t.Parallel()

	t.Run("panic becomes PanicError", func(t *testing.T) {
		t.Parallel()

		hs := newHarness(t, func(c internal.Context) error {
			panic("boom")
		}, middlewares.Recover())

		w := hs.do(get())
		assert.Equal(t, http.StatusInternalServerError, w.Code)

		pe, ok := middlewares.AsPanicError(hs.err())
		require.True(t, ok)
		assert.Equal(t, "boom", pe.Value)
		assert.NotEmpty(t, pe.Stack)
		assert.Equal(t, "panic: boom", pe.Error())
		assert.Contains(t, hs.logs.String(), "panic recovered")
	})

	t.Run("stack disabled", func(t *testing.T) {
		t.Parallel()

		hs := newHarness(t, func(c internal.Context) error {
			panic(errors.New("kaput"))
		}, middlewares.Recover(middlewares.WithRecoverDisablePrintStack()))

		hs.do(get())
		pe, ok := middlewares.AsPanicError(hs.err())
		require.True(t, ok)
		assert.Nil(t, pe.Stack)
		assert.NotContains(t, hs.logs.String(), `"stack"`)
	})

	t.Run("stack size", func(t *testing.T) {
		t.Parallel()

		hs := newHarness(t, func(c internal.Context) error {
			panic("small")
		}, middlewares.Recover(middlewares.WithRecoverStackSize(64)))

		hs.do(get())
		pe, ok := middlewares.AsPanicError(hs.err())
		require.True(t, ok)
		assert.LessOrEqual(t, len(pe.Stack), 64)
	})

	t.Run("errors pass through", func(t *testing.T) {
		t.Parallel()

		sentinel := errors.New("plain")
		hs := newHarness(t, func(c internal.Context) error {
			return sentinel
		}, middlewares.Recover())

		hs.do(get())
		err := hs.err()
		require.ErrorIs(t, err, sentinel)
		_, ok := middlewares.AsPanicError(err)
		assert.False(t, ok)
	})

	t.Run("no panic", func(t *testing.T) {
		t.Parallel()

		hs := newHarness(t, func(c internal.Context) error {
			return c.String(http.StatusOK, "ok")
		}, middlewares.Recover())

		w := hs.do(get())
		assert.Equal(t, "ok", w.Body.String())
		assert.NoError(t, hs.err())
	})
}
