package form

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/itopia/site/pkg/contact"
)

// Registry maps visitor ids to their Holder. Holders are created on first
// use, seeded from the Store, and evicted after the idle TTL unless a
// submission is in flight.
type Registry struct {
	dispatcher contact.Dispatcher
	opts       *options
	holders    map[string]*Holder
	done       chan struct{}
	group      singleflight.Group
	mu         sync.RWMutex
	closed     bool
}

// NewRegistry creates a Registry and starts its janitor.
//
// Example:
//
//	reg := form.NewRegistry(dispatcher,
//	    form.WithStore(form.NewMemoryStore(24*time.Hour, time.Minute)),
//	    form.WithIdleTTL(30*time.Minute),
//	)
//	defer reg.Close()
func NewRegistry(d contact.Dispatcher, opts ...Option) *Registry {
	r := &Registry{
		dispatcher: d,
		opts:       applyOptions(opts),
		holders:    make(map[string]*Holder),
		done:       make(chan struct{}),
	}
	if r.opts.cleanupInterval > 0 && r.opts.idleTTL > 0 {
		go r.janitor()
	}
	return r
}

// Holder returns the holder for id, creating it when absent.
// Concurrent first calls for the same id share one holder.
func (r *Registry) Holder(ctx context.Context, id string) (*Holder, error) {
	if h, ok := r.lookup(id); ok {
		h.touch()
		return h, nil
	}

	v, err, _ := r.group.Do(id, func() (any, error) {
		if h, ok := r.lookup(id); ok {
			return h, nil
		}

		draft, err := r.opts.store.Load(ctx, id)
		if err != nil && !errors.Is(err, ErrDraftNotFound) {
			r.opts.logger.WarnContext(ctx, "draft restore failed",
				slog.String("form_id", id),
				slog.String("error", err.Error()),
			)
		}
		h := newHolder(id, draft, r.dispatcher, r.opts)

		r.mu.Lock()
		defer r.mu.Unlock()
		if r.closed {
			return nil, ErrClosed
		}
		r.holders[id] = h
		return h, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Holder), nil
}

// Len returns the number of live holders.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.holders)
}

// Close stops the janitor. Holders obtained earlier keep working.
func (r *Registry) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return nil
	}
	r.closed = true
	close(r.done)
	return nil
}

func (r *Registry) lookup(id string) (*Holder, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	h, ok := r.holders[id]
	return h, ok
}

func (r *Registry) janitor() {
	ticker := time.NewTicker(r.opts.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-r.done:
			return
		case now := <-ticker.C:
			r.evictIdle(now)
		}
	}
}

// evictIdle drops holders untouched for longer than the idle TTL.
// The draft itself survives in the Store.
func (r *Registry) evictIdle(now time.Time) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := 0
	for id, h := range r.holders {
		if h.idleSince(now) > r.opts.idleTTL && !h.InFlight() {
			delete(r.holders, id)
			n++
		}
	}
	return n
}
