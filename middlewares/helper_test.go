package middlewares_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/itopia/site/internal"
	"github.com/itopia/site/pkg/cookie"
)

type routes func(r internal.Router)

func (f routes) Routes(r internal.Router) { f(r) }

// safeBuffer is a bytes.Buffer usable from concurrent handlers.
type safeBuffer struct {
	buf bytes.Buffer
	mu  sync.Mutex
}

func (b *safeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *safeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

type harness struct {
	app    *internal.App
	logs   *safeBuffer
	errors chan error
}

// newHarness mounts h at GET / behind mw. Handler errors are captured and
// answered with a 500.
func newHarness(t *testing.T, h internal.HandlerFunc, mw ...internal.Middleware) *harness {
	t.Helper()

	m, err := cookie.New(strings.Repeat("s", cookie.MinSecretLength))
	require.NoError(t, err)

	hs := &harness{logs: &safeBuffer{}, errors: make(chan error, 1)}
	hs.app = internal.New(
		internal.WithLogger(slog.New(slog.NewJSONHandler(hs.logs, &slog.HandlerOptions{Level: slog.LevelDebug}))),
		internal.WithCookieManager(m),
		internal.WithMiddleware(mw...),
		internal.WithHandlers(routes(func(r internal.Router) {
			r.GET("/", h)
		})),
		internal.WithErrorHandler(func(c internal.Context, err error) error {
			hs.errors <- err
			return c.NoContent(http.StatusInternalServerError)
		}),
	)
	return hs
}

func (hs *harness) do(req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	hs.app.ServeHTTP(w, req)
	return w
}

// err returns the error passed to the error handler, or nil.
func (hs *harness) err() error {
	select {
	case err := <-hs.errors:
		return err
	default:
		return nil
	}
}

func get() *http.Request {
	return httptest.NewRequest(http.MethodGet, "/", nil)
}
