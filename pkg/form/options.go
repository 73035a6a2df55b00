package form

import (
	"log/slog"
	"time"
)

// Option configures a Holder or a Registry.
type Option func(*options)

type options struct {
	store           Store
	logger          *slog.Logger
	idleTTL         time.Duration
	cleanupInterval time.Duration
}

func defaultOptions() *options {
	return &options{
		store:           nopStore{},
		logger:          slog.New(slog.DiscardHandler),
		idleTTL:         30 * time.Minute,
		cleanupInterval: time.Minute,
	}
}

func applyOptions(opts []Option) *options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithStore sets where drafts are autosaved. Default: no persistence.
func WithStore(s Store) Option {
	return func(o *options) {
		if s != nil {
			o.store = s
		}
	}
}

// WithLogger sets the logger for dispatch and store failures.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithIdleTTL sets how long an untouched holder stays in a Registry.
// Default: 30 minutes.
func WithIdleTTL(d time.Duration) Option {
	return func(o *options) { o.idleTTL = d }
}

// WithCleanupInterval sets how often a Registry evicts idle holders.
// Zero disables the janitor. Default: 1 minute.
func WithCleanupInterval(d time.Duration) Option {
	return func(o *options) { o.cleanupInterval = d }
}
