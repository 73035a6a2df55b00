package emailjs

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/itopia/site/pkg/contact"
)

const (
	sendPath     = "/api/v1.0/email/send"
	maxErrorBody = 1 << 10
)

// Client sends templated emails through the EmailJS REST API.
type Client struct {
	rest   *resty.Client
	config Config
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets the HTTP client requests go through.
// The default client has no timeout of its own.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.rest = newRest(resty.NewWithClient(hc))
		}
	}
}

// New creates a Client. It returns ErrMissingCredentials when any of the
// three required identifiers is empty.
func New(cfg Config, opts ...Option) (*Client, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if cfg.Endpoint == "" {
		cfg.Endpoint = DefaultEndpoint
	}
	cfg.Endpoint = strings.TrimRight(cfg.Endpoint, "/")

	c := &Client{
		rest:   newRest(resty.New()),
		config: cfg,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// newRest makes exactly one attempt per request.
func newRest(r *resty.Client) *resty.Client {
	return r.
		SetRetryCount(0).
		SetHeader("Content-Type", "application/json")
}

type sendRequest struct {
	ServiceID      string            `json:"service_id"`
	TemplateID     string            `json:"template_id"`
	UserID         string            `json:"user_id"`
	TemplateParams map[string]string `json:"template_params"`
	AccessToken    string            `json:"accessToken,omitempty"`
}

// Send performs a single send request with the given template parameters.
// Any 2xx answer counts as accepted; other statuses return *APIError.
func (c *Client) Send(ctx context.Context, params map[string]string) error {
	resp, err := c.rest.R().
		SetContext(ctx).
		SetBody(sendRequest{
			ServiceID:      c.config.ServiceID,
			TemplateID:     c.config.TemplateID,
			UserID:         c.config.PublicKey,
			TemplateParams: params,
			AccessToken:    c.config.PrivateKey,
		}).
		Post(c.config.Endpoint + sendPath)
	if err != nil {
		return errors.Join(ErrRequestFailed, err)
	}
	if resp.IsSuccess() {
		return nil
	}

	// EmailJS explains failures in a plain-text body.
	msg := strings.TrimSpace(resp.String())
	if len(msg) > maxErrorBody {
		msg = msg[:maxErrorBody]
	}
	return &APIError{StatusCode: resp.StatusCode(), Body: msg}
}

// Submit implements contact.Dispatcher.
func (c *Client) Submit(ctx context.Context, d contact.Draft) error {
	if err := c.Send(ctx, contact.NewTemplateParams(d).Map()); err != nil {
		return contact.NewDispatchError(err)
	}
	return nil
}

var _ contact.Dispatcher = (*Client)(nil)
