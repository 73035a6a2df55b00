package site

import (
	goredis "github.com/redis/go-redis/v9"

	"github.com/itopia/site/pkg/contact"
)

// Option customizes New.
type Option func(*options)

type options struct {
	dispatcher contact.Dispatcher
	redis      goredis.UniversalClient
}

// WithDispatcher replaces the dispatcher selected by CONTACT_DISPATCHER.
func WithDispatcher(d contact.Dispatcher) Option {
	return func(o *options) { o.dispatcher = d }
}

// WithRedis stores drafts in client instead of connecting to REDIS_URL.
// The caller keeps ownership of client.
func WithRedis(client goredis.UniversalClient) Option {
	return func(o *options) { o.redis = client }
}
