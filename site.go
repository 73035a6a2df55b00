package site

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/itopia/site/internal"
	"github.com/itopia/site/internal/content"
	"github.com/itopia/site/internal/handlers"
	"github.com/itopia/site/middlewares"
	"github.com/itopia/site/pkg/contact"
	"github.com/itopia/site/pkg/contact/maildispatch"
	"github.com/itopia/site/pkg/cookie"
	"github.com/itopia/site/pkg/emailjs"
	"github.com/itopia/site/pkg/form"
	"github.com/itopia/site/pkg/i18n"
	"github.com/itopia/site/pkg/logger"
	"github.com/itopia/site/pkg/mailer/resend"
	"github.com/itopia/site/pkg/redis"
	"github.com/itopia/site/web"
)

// flushTimeout bounds the wait for buffered Sentry events on shutdown.
const flushTimeout = 2 * time.Second

// Server is the assembled site.
type Server struct {
	app      *internal.App
	forms    *form.Registry
	logger   *slog.Logger
	shutdown []func(context.Context) error
	cfg      Config
}

// New builds the site from cfg. It connects to Redis when configured, so
// ctx bounds the connection attempts.
func New(ctx context.Context, cfg Config, log *slog.Logger, opts ...Option) (*Server, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = logger.Discard()
	}
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	baseURL := strings.TrimRight(cfg.BaseURL, "/")

	locales, err := fs.Sub(web.Locales, "locales")
	if err != nil {
		return nil, err
	}
	bundle, err := i18n.Load(locales, cfg.DefaultLanguage, i18n.WithMissingKeyHandler(func(lang, key string) {
		log.Warn("missing translation", slog.String("lang", lang), slog.String("key", key))
	}))
	if err != nil {
		return nil, fmt.Errorf("site: load translations: %w", err)
	}

	cookies, err := cookie.New(cfg.CookieSecret, cookie.WithSecure(strings.HasPrefix(baseURL, "https://")))
	if err != nil {
		return nil, errors.Join(ErrInvalidConfig, err)
	}

	dispatcher := o.dispatcher
	if dispatcher == nil {
		if dispatcher, err = newDispatcher(cfg); err != nil {
			return nil, err
		}
	}

	s := &Server{logger: log, cfg: cfg}

	var checks []internal.HealthOption
	client := o.redis
	if client == nil && cfg.Redis.Enabled() {
		if client, err = redis.Open(ctx, cfg.Redis); err != nil {
			return nil, fmt.Errorf("site: connect redis: %w", err)
		}
		s.shutdown = append(s.shutdown, redis.Shutdown(client))
	}

	var store form.Store
	if client != nil {
		store = form.NewRedisStore(client, cfg.Form.RedisPrefix, cfg.Form.DraftTTL)
		checks = append(checks, internal.WithReadinessCheck("redis", redis.Healthcheck(client)))
	} else {
		mem := form.NewMemoryStore(cfg.Form.DraftTTL, time.Minute)
		store = mem
		s.shutdown = append(s.shutdown, func(context.Context) error { return mem.Close() })
	}

	s.forms = form.NewRegistry(dispatcher,
		form.WithStore(store),
		form.WithLogger(log),
		form.WithIdleTTL(cfg.Form.IdleTTL),
	)
	// The registry goes first so no holder touches a closed store.
	s.shutdown = append([]func(context.Context) error{
		func(context.Context) error { return s.forms.Close() },
	}, s.shutdown...)

	timeout := middlewares.Timeout(cfg.RequestTimeout)
	s.app = internal.New(
		internal.WithLogger(log),
		internal.WithCookieManager(cookies),
		internal.WithMiddleware(
			middlewares.RequestID(),
			middlewares.AccessLog(),
			// The error pages need the translator and the SEO collector,
			// so both sit outside Recover.
			middlewares.I18n(bundle),
			middlewares.SEO(content.Defaults(baseURL)),
			middlewares.Recover(),
			middlewares.Visitor(middlewares.DefaultVisitorMaxAge),
		),
		internal.WithStaticFiles("/static/", web.Static, "static"),
		internal.WithHealthChecks(checks...),
		internal.WithErrorHandler(handlers.Errors()),
		internal.WithNotFoundHandler(handlers.NotFound),
		internal.WithMethodNotAllowedHandler(handlers.MethodNotAllowed),
		internal.WithHandlers(
			handlers.NewPages(baseURL, bundle.Languages(), timeout),
			handlers.NewContact(s.forms, baseURL, timeout),
		),
	)

	log.Info("site configured",
		slog.String("dispatcher", dispatcherName(cfg, o)),
		slog.Bool("redis", client != nil),
		slog.String("base_url", baseURL),
	)
	return s, nil
}

func newDispatcher(cfg Config) (contact.Dispatcher, error) {
	switch cfg.Dispatcher {
	case DispatcherEmailJS:
		c, err := emailjs.New(cfg.EmailJS)
		if err != nil {
			return nil, errors.Join(ErrInvalidConfig, err)
		}
		return c, nil
	case DispatcherResend:
		sender, err := resend.New(cfg.Resend)
		if err != nil {
			return nil, errors.Join(ErrInvalidConfig, err)
		}
		return maildispatch.New(sender, cfg.Inbox), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownDispatcher, cfg.Dispatcher)
}

func dispatcherName(cfg Config, o *options) string {
	if o.dispatcher != nil {
		return "custom"
	}
	return cfg.Dispatcher
}

// Handler returns the site as an http.Handler.
func (s *Server) Handler() http.Handler { return s.app }

// Run serves on cfg.Addr until ctx is done or SIGINT/SIGTERM arrives, then
// shuts down gracefully and releases every resource.
func (s *Server) Run(ctx context.Context) error {
	return s.app.Run(s.cfg.Addr,
		internal.WithContext(ctx),
		internal.Logger(s.logger),
		internal.ShutdownTimeout(s.cfg.ShutdownTimeout),
		internal.ShutdownHook(s.Close),
		internal.ShutdownHook(logger.Flush(flushTimeout)),
	)
}

// Close stops the form registry and releases the draft store. Run calls
// it on shutdown; callers that only use Handler call it themselves.
func (s *Server) Close(ctx context.Context) error {
	var errs []error
	for _, fn := range s.shutdown {
		if err := fn(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	s.shutdown = nil
	return errors.Join(errs...)
}
