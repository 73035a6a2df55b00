package middlewares_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itopia/site/internal"
	"github.com/itopia/site/middlewares"
)

func TestTimeout(t *testing.T) {
	t.Parallel()

	t.Run("slow handler", func(t *testing.T) {
		t.Parallel()

		release := make(chan struct{})
		t.Cleanup(func() { close(release) })

		hs := newHarness(t, func(c internal.Context) error {
			<-release
			return nil
		}, middlewares.Timeout(20*time.Millisecond))

		hs.do(get())
		te, ok := middlewares.AsTimeoutError(hs.err())
		require.True(t, ok)
		assert.Equal(t, 20*time.Millisecond, te.Duration)
		assert.Equal(t, "request timeout after 20ms", te.Error())
	})

	t.Run("deadline reaches the handler", func(t *testing.T) {
		t.Parallel()

		hs := newHarness(t, func(c internal.Context) error {
			_, ok := c.Deadline()
			if !ok {
				return c.String(http.StatusOK, "no deadline")
			}
			return c.String(http.StatusOK, "deadline")
		}, middlewares.Timeout(time.Second))

		w := hs.do(get())
		assert.Equal(t, "deadline", w.Body.String())
	})

	t.Run("default timeout", func(t *testing.T) {
		t.Parallel()

		hs := newHarness(t, func(c internal.Context) error {
			d, _ := c.Deadline()
			if time.Until(d) > middlewares.DefaultTimeout-time.Second {
				return c.String(http.StatusOK, "default")
			}
			return c.String(http.StatusOK, "other")
		}, middlewares.Timeout(0))

		w := hs.do(get())
		assert.Equal(t, "default", w.Body.String())
	})
}
