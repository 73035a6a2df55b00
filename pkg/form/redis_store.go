package form

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/itopia/site/pkg/contact"
)

// DefaultRedisPrefix namespaces draft keys.
const DefaultRedisPrefix = "itopia:draft:"

// RedisStore keeps drafts in Redis as JSON under prefix+id.
// The client lifecycle belongs to the caller.
type RedisStore struct {
	client redis.UniversalClient
	prefix string
	ttl    time.Duration
}

// NewRedisStore creates a RedisStore. An empty prefix uses DefaultRedisPrefix;
// a non-positive ttl stores drafts without expiry.
func NewRedisStore(client redis.UniversalClient, prefix string, ttl time.Duration) *RedisStore {
	if prefix == "" {
		prefix = DefaultRedisPrefix
	}
	return &RedisStore{client: client, prefix: prefix, ttl: max(ttl, 0)}
}

// Load implements Store.
func (s *RedisStore) Load(ctx context.Context, id string) (contact.Draft, error) {
	data, err := s.client.Get(ctx, s.key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return contact.Draft{}, ErrDraftNotFound
		}
		return contact.Draft{}, errors.Join(ErrStoreFailed, err)
	}

	var d contact.Draft
	if err := json.Unmarshal(data, &d); err != nil {
		return contact.Draft{}, errors.Join(ErrStoreFailed, err)
	}
	return d, nil
}

// Save implements Store.
func (s *RedisStore) Save(ctx context.Context, id string, d contact.Draft) error {
	data, err := json.Marshal(d)
	if err != nil {
		return errors.Join(ErrStoreFailed, err)
	}
	if err := s.client.Set(ctx, s.key(id), data, s.ttl).Err(); err != nil {
		return errors.Join(ErrStoreFailed, err)
	}
	return nil
}

// Delete implements Store.
func (s *RedisStore) Delete(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, s.key(id)).Err(); err != nil {
		return errors.Join(ErrStoreFailed, err)
	}
	return nil
}

func (s *RedisStore) key(id string) string { return s.prefix + id }

var (
	_ Store = (*MemoryStore)(nil)
	_ Store = (*RedisStore)(nil)
)
