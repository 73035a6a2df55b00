package form

import (
	"context"

	"github.com/itopia/site/pkg/contact"
)

// Store persists drafts between requests and across replicas.
// Load returns ErrDraftNotFound for unknown or expired ids.
type Store interface {
	Load(ctx context.Context, id string) (contact.Draft, error)
	Save(ctx context.Context, id string, d contact.Draft) error
	Delete(ctx context.Context, id string) error
}

type nopStore struct{}

func (nopStore) Load(context.Context, string) (contact.Draft, error) {
	return contact.Draft{}, ErrDraftNotFound
}
func (nopStore) Save(context.Context, string, contact.Draft) error { return nil }
func (nopStore) Delete(context.Context, string) error              { return nil }
