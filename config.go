package site

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/itopia/site/pkg/contact/maildispatch"
	"github.com/itopia/site/pkg/cookie"
	"github.com/itopia/site/pkg/emailjs"
	"github.com/itopia/site/pkg/form"
	"github.com/itopia/site/pkg/logger"
	"github.com/itopia/site/pkg/mailer/resend"
	"github.com/itopia/site/pkg/redis"
)

// Contact dispatcher names accepted by CONTACT_DISPATCHER.
const (
	DispatcherEmailJS = "emailjs"
	DispatcherResend  = "resend"
)

// Config is the whole site configuration, read from the environment.
type Config struct {
	Addr            string        `env:"HTTP_ADDR" envDefault:":8080"`
	BaseURL         string        `env:"BASE_URL" envDefault:"http://localhost:8080"`
	CookieSecret    string        `env:"COOKIE_SECRET,required"`
	Dispatcher      string        `env:"CONTACT_DISPATCHER" envDefault:"emailjs"`
	DefaultLanguage string        `env:"DEFAULT_LANGUAGE" envDefault:"es"`
	RequestTimeout  time.Duration `env:"REQUEST_TIMEOUT" envDefault:"30s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"30s"`

	Logger  logger.Config
	EmailJS emailjs.Config
	Resend  resend.Config
	Inbox   maildispatch.Config
	Form    form.Config
	Redis   redis.Config
}

// LoadConfig parses the environment into a Config and validates it.
func LoadConfig() (Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, errors.Join(ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the values the environment parser cannot. Provider
// credentials are checked when the dispatcher is built.
func (c Config) Validate() error {
	if len(c.CookieSecret) < cookie.MinSecretLength {
		return fmt.Errorf("%w: COOKIE_SECRET must be at least %d bytes", ErrInvalidConfig, cookie.MinSecretLength)
	}
	switch c.Dispatcher {
	case DispatcherEmailJS, DispatcherResend:
	default:
		return fmt.Errorf("%w: %w: %q", ErrInvalidConfig, ErrUnknownDispatcher, c.Dispatcher)
	}
	return nil
}
