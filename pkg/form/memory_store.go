package form

import (
	"context"
	"sync"
	"time"

	"github.com/itopia/site/pkg/contact"
)

type memoryEntry struct {
	expiresAt time.Time
	draft     contact.Draft
}

// MemoryStore keeps drafts in process memory with a fixed TTL.
// A background janitor drops expired drafts until Close is called.
type MemoryStore struct {
	items  map[string]memoryEntry
	done   chan struct{}
	ttl    time.Duration
	mu     sync.Mutex
	closed bool
}

// NewMemoryStore creates a MemoryStore. A non-positive ttl keeps drafts
// forever; a non-positive cleanup interval disables the janitor.
func NewMemoryStore(ttl, cleanupInterval time.Duration) *MemoryStore {
	s := &MemoryStore{
		items: make(map[string]memoryEntry),
		done:  make(chan struct{}),
		ttl:   ttl,
	}
	if cleanupInterval > 0 {
		go s.janitor(cleanupInterval)
	}
	return s
}

// Load implements Store.
func (s *MemoryStore) Load(_ context.Context, id string) (contact.Draft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.items[id]
	if !ok {
		return contact.Draft{}, ErrDraftNotFound
	}
	if e.expired(time.Now()) {
		delete(s.items, id)
		return contact.Draft{}, ErrDraftNotFound
	}
	return e.draft, nil
}

// Save implements Store. Each save restarts the TTL.
func (s *MemoryStore) Save(_ context.Context, id string, d contact.Draft) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrClosed
	}
	e := memoryEntry{draft: d}
	if s.ttl > 0 {
		e.expiresAt = time.Now().Add(s.ttl)
	}
	s.items[id] = e
	return nil
}

// Delete implements Store.
func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, id)
	return nil
}

// Len returns the number of stored drafts, expired ones included.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// Close stops the janitor. It is idempotent.
func (s *MemoryStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true
	close(s.done)
	return nil
}

func (s *MemoryStore) janitor(every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-s.done:
			return
		case now := <-ticker.C:
			s.deleteExpired(now)
		}
	}
}

func (s *MemoryStore) deleteExpired(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, e := range s.items {
		if e.expired(now) {
			delete(s.items, id)
		}
	}
}

func (e memoryEntry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && now.After(e.expiresAt)
}
