package form

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/itopia/site/pkg/contact"
)

// Holder owns one visitor's contact draft and the in-flight flag of its
// pending submission. All methods are safe for concurrent use.
type Holder struct {
	dispatcher contact.Dispatcher
	store      Store
	logger     *slog.Logger
	id         string
	draft      contact.Draft
	lastSeen   atomic.Int64
	mu         sync.Mutex
	inFlight   bool
}

// NewHolder creates a Holder for the given id, starting from an empty draft.
// The id keys the draft in the configured Store.
func NewHolder(id string, d contact.Dispatcher, opts ...Option) *Holder {
	return newHolder(id, contact.Draft{}, d, applyOptions(opts))
}

func newHolder(id string, draft contact.Draft, d contact.Dispatcher, o *options) *Holder {
	h := &Holder{
		dispatcher: d,
		store:      o.store,
		logger:     o.logger,
		id:         id,
		draft:      draft,
	}
	h.touch()
	return h
}

// ID returns the key the holder was created with.
func (h *Holder) ID() string { return h.id }

// Draft returns a copy of the current draft.
func (h *Holder) Draft() contact.Draft {
	h.touch()
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.draft
}

// InFlight reports whether a submission is outstanding.
func (h *Holder) InFlight() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.inFlight
}

// Update overwrites a single field. Other fields are left untouched.
// Autosave failures are logged and never returned.
func (h *Holder) Update(ctx context.Context, field contact.Field, value string) error {
	h.touch()

	h.mu.Lock()
	if err := h.draft.Set(field, value); err != nil {
		h.mu.Unlock()
		return err
	}
	snapshot := h.draft
	h.mu.Unlock()

	h.save(ctx, snapshot)
	return nil
}

// Submit validates the draft and, when it passes, dispatches it.
//
// Exactly one notice is sent to n (which may be nil) per call:
//   - NoticeInvalid with the *contact.ValidationError when validation fails;
//   - NoticeBusy with ErrInFlight when a dispatch is already outstanding;
//   - NoticeSent after a successful dispatch, once the draft is cleared;
//   - NoticeFailed with the *contact.DispatchError otherwise. The draft is kept.
//
// The dispatch ignores ctx cancellation and always runs to completion.
func (h *Holder) Submit(ctx context.Context, n Notifier) error {
	h.touch()
	if n == nil {
		n = NotifierFunc(func(context.Context, Notice) {})
	}

	h.mu.Lock()
	snapshot := h.draft
	if err := contact.Validate(snapshot); err != nil {
		h.mu.Unlock()
		n.Notify(ctx, Notice{Kind: NoticeInvalid, Err: err})
		return err
	}
	if h.inFlight {
		h.mu.Unlock()
		n.Notify(ctx, Notice{Kind: NoticeBusy, Err: ErrInFlight})
		return ErrInFlight
	}
	h.inFlight = true
	h.mu.Unlock()

	err := h.dispatch(context.WithoutCancel(ctx), snapshot)
	if err != nil {
		h.logger.ErrorContext(ctx, "contact submission failed",
			slog.String("form_id", h.id),
			slog.String("error", err.Error()),
		)
		n.Notify(ctx, Notice{Kind: NoticeFailed, Err: err})
		return err
	}

	h.remove(ctx)
	n.Notify(ctx, Notice{Kind: NoticeSent})
	return nil
}

func (h *Holder) dispatch(ctx context.Context, d contact.Draft) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = contact.NewDispatchError(errors.New("dispatcher panicked"))
		}

		h.mu.Lock()
		h.inFlight = false
		if err == nil {
			h.draft = contact.Draft{}
		}
		h.mu.Unlock()
	}()

	if err := h.dispatcher.Submit(ctx, d); err != nil {
		return contact.NewDispatchError(err)
	}
	return nil
}

func (h *Holder) save(ctx context.Context, d contact.Draft) {
	var err error
	if d.IsZero() {
		err = h.store.Delete(ctx, h.id)
	} else {
		err = h.store.Save(ctx, h.id, d)
	}
	if err != nil {
		h.logger.WarnContext(ctx, "draft autosave failed",
			slog.String("form_id", h.id),
			slog.String("error", err.Error()),
		)
	}
}

func (h *Holder) remove(ctx context.Context) {
	if err := h.store.Delete(context.WithoutCancel(ctx), h.id); err != nil {
		h.logger.WarnContext(ctx, "draft cleanup failed",
			slog.String("form_id", h.id),
			slog.String("error", err.Error()),
		)
	}
}

func (h *Holder) touch() { h.lastSeen.Store(time.Now().UnixNano()) }

func (h *Holder) idleSince(now time.Time) time.Duration {
	return now.Sub(time.Unix(0, h.lastSeen.Load()))
}
