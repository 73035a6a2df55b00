package site_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	site "github.com/itopia/site"
	"github.com/itopia/site/pkg/contact"
	"github.com/itopia/site/pkg/cookie"
	"github.com/itopia/site/pkg/form"
	"github.com/itopia/site/pkg/mailer/resend"
)

var secret = strings.Repeat("k", cookie.MinSecretLength)

func testConfig() site.Config {
	return site.Config{
		Addr:            ":0",
		BaseURL:         "http://localhost:8080",
		CookieSecret:    secret,
		Dispatcher:      site.DispatcherEmailJS,
		DefaultLanguage: "es",
		RequestTimeout:  5 * time.Second,
		ShutdownTimeout: time.Second,
		Form:            form.Config{RedisPrefix: "test:", IdleTTL: time.Minute, DraftTTL: time.Hour},
	}
}

func TestLoadConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("COOKIE_SECRET", secret)

		cfg, err := site.LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, ":8080", cfg.Addr)
		assert.Equal(t, site.DispatcherEmailJS, cfg.Dispatcher)
		assert.Equal(t, "es", cfg.DefaultLanguage)
		assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
		assert.Equal(t, "https://api.emailjs.com", cfg.EmailJS.Endpoint)
		assert.Equal(t, "contacto.itopia@gmail.com", cfg.Inbox.To)
		assert.Equal(t, 30*time.Minute, cfg.Form.IdleTTL)
		assert.False(t, cfg.Redis.Enabled())
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("COOKIE_SECRET", secret)
		t.Setenv("HTTP_ADDR", ":9090")
		t.Setenv("CONTACT_DISPATCHER", "resend")
		t.Setenv("REDIS_URL", "redis://localhost:6379/0")
		t.Setenv("FORM_IDLE_TTL", "5m")

		cfg, err := site.LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, ":9090", cfg.Addr)
		assert.Equal(t, site.DispatcherResend, cfg.Dispatcher)
		assert.True(t, cfg.Redis.Enabled())
		assert.Equal(t, 5*time.Minute, cfg.Form.IdleTTL)
	})

	t.Run("short secret", func(t *testing.T) {
		t.Setenv("COOKIE_SECRET", "short")

		_, err := site.LoadConfig()
		require.ErrorIs(t, err, site.ErrInvalidConfig)
	})

	t.Run("malformed duration", func(t *testing.T) {
		t.Setenv("COOKIE_SECRET", secret)
		t.Setenv("REQUEST_TIMEOUT", "soon")

		_, err := site.LoadConfig()
		require.ErrorIs(t, err, site.ErrInvalidConfig)
	})
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*site.Config)
		wantErr error
	}{
		{name: "valid", mutate: func(*site.Config) {}},
		{name: "resend", mutate: func(c *site.Config) { c.Dispatcher = site.DispatcherResend }},
		{name: "short secret", mutate: func(c *site.Config) { c.CookieSecret = "x" }, wantErr: site.ErrInvalidConfig},
		{name: "unknown dispatcher", mutate: func(c *site.Config) { c.Dispatcher = "smtp" }, wantErr: site.ErrUnknownDispatcher},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := testConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
			require.ErrorIs(t, err, site.ErrInvalidConfig)
		})
	}
}

func TestNew_DispatcherCredentials(t *testing.T) {
	t.Parallel()

	t.Run("emailjs without keys", func(t *testing.T) {
		t.Parallel()

		_, err := site.New(context.Background(), testConfig(), nil)
		require.ErrorIs(t, err, site.ErrInvalidConfig)
	})

	t.Run("resend without api key", func(t *testing.T) {
		t.Parallel()

		cfg := testConfig()
		cfg.Dispatcher = site.DispatcherResend
		_, err := site.New(context.Background(), cfg, nil)
		require.ErrorIs(t, err, site.ErrInvalidConfig)
		require.ErrorIs(t, err, resend.ErrMissingAPIKey)
	})

	t.Run("resend configured", func(t *testing.T) {
		t.Parallel()

		cfg := testConfig()
		cfg.Dispatcher = site.DispatcherResend
		cfg.Resend = resend.Config{APIKey: "re_test", SenderEmail: "web@itopia.example", SenderName: "ITopIA"}
		s, err := site.New(context.Background(), cfg, nil)
		require.NoError(t, err)
		require.NoError(t, s.Close(context.Background()))
	})
}

type inbox struct {
	mu     sync.Mutex
	delay  time.Duration
	drafts []contact.Draft
}

func (i *inbox) Submit(_ context.Context, d contact.Draft) error {
	time.Sleep(i.delay)
	i.mu.Lock()
	defer i.mu.Unlock()
	i.drafts = append(i.drafts, d)
	return nil
}

func (i *inbox) received() []contact.Draft {
	i.mu.Lock()
	defer i.mu.Unlock()
	return append([]contact.Draft(nil), i.drafts...)
}

func TestServer(t *testing.T) {
	t.Parallel()

	box := &inbox{}
	s, err := site.New(context.Background(), testConfig(), nil, site.WithDispatcher(box))
	require.NoError(t, err)

	srv := httptest.NewServer(s.Handler())
	t.Cleanup(srv.Close)
	t.Cleanup(func() { assert.NoError(t, s.Close(context.Background())) })

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	client := &http.Client{
		Jar: jar,
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}

	get := func(t *testing.T, path string) (*http.Response, string) {
		t.Helper()
		resp, err := client.Get(srv.URL + path)
		require.NoError(t, err)
		defer resp.Body.Close()
		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		return resp, string(body)
	}

	tests := []struct {
		path   string
		status int
		want   string
	}{
		{path: "/", status: http.StatusOK, want: "ITopIA"},
		{path: "/about", status: http.StatusOK, want: `<main id="main">`},
		{path: "/services", status: http.StatusOK, want: "application/ld+json"},
		{path: "/contact", status: http.StatusOK, want: `id="contact-form"`},
		{path: "/static/css/site.css", status: http.StatusOK},
		{path: "/health/live", status: http.StatusOK},
		{path: "/health/ready", status: http.StatusOK},
		{path: "/missing", status: http.StatusNotFound},
	}
	for _, tt := range tests {
		resp, body := get(t, tt.path)
		assert.Equal(t, tt.status, resp.StatusCode, tt.path)
		if tt.want != "" {
			assert.Contains(t, body, tt.want, tt.path)
		}
	}

	resp, _ := get(t, "/")
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))

	values := url.Values{
		"name":    {"Ana"},
		"email":   {"ana@example.com"},
		"service": {"ia"},
		"message": {"Necesito un chatbot"},
	}
	resp, err = client.PostForm(srv.URL+"/contact", values)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/contact", resp.Header.Get("Location"))

	got := box.received()
	require.Len(t, got, 1)
	assert.Equal(t, "Ana", got[0].Name)
	assert.Equal(t, "ana@example.com", got[0].Email)

	_, body := get(t, "/contact")
	assert.Contains(t, body, "¡Mensaje enviado!")
}

func TestServer_SlowDispatchOutlivesRequestTimeout(t *testing.T) {
	t.Parallel()

	box := &inbox{delay: 300 * time.Millisecond}
	cfg := testConfig()
	cfg.RequestTimeout = 50 * time.Millisecond
	s, err := site.New(context.Background(), cfg, nil, site.WithDispatcher(box))
	require.NoError(t, err)

	srv := httptest.NewServer(s.Handler())
	t.Cleanup(srv.Close)
	t.Cleanup(func() { assert.NoError(t, s.Close(context.Background())) })

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	client := &http.Client{Jar: jar}

	resp, err := client.Get(srv.URL + "/contact")
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	require.Equal(t, http.StatusOK, resp.StatusCode)

	tests := []struct {
		name string
		htmx bool
	}{
		{name: "htmx", htmx: true},
		{name: "plain", htmx: false},
	}
	for i, tt := range tests {
		values := url.Values{
			"name":    {"Ana"},
			"email":   {"ana@example.com"},
			"service": {"ia"},
			"message": {"Necesito un chatbot"},
		}
		req, err := http.NewRequest(http.MethodPost, srv.URL+"/contact", strings.NewReader(values.Encode()))
		require.NoError(t, err, tt.name)
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		if tt.htmx {
			req.Header.Set("HX-Request", "true")
		}

		resp, err := client.Do(req)
		require.NoError(t, err, tt.name)
		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err, tt.name)
		require.NoError(t, resp.Body.Close())

		assert.Equal(t, http.StatusOK, resp.StatusCode, tt.name)
		assert.Contains(t, string(body), "¡Mensaje enviado!", tt.name)
		if tt.htmx {
			var trigger map[string]map[string]string
			require.NoError(t, json.Unmarshal([]byte(resp.Header.Get("HX-Trigger")), &trigger))
			assert.Equal(t, "success", trigger["toast"]["kind"])
			assert.Equal(t, "¡Mensaje enviado!", trigger["toast"]["title"])
		}
		assert.Len(t, box.received(), i+1, tt.name)
	}
}
