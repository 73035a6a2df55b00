package form_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itopia/site/pkg/contact"
	"github.com/itopia/site/pkg/form"
)

type recorder struct {
	notices []form.Notice
	mu      sync.Mutex
}

func (r *recorder) Notify(_ context.Context, n form.Notice) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notices = append(r.notices, n)
}

func (r *recorder) kinds() []form.NoticeKind {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]form.NoticeKind, 0, len(r.notices))
	for _, n := range r.notices {
		out = append(out, n.Kind)
	}
	return out
}

func fill(t *testing.T, h *form.Holder, values map[contact.Field]string) {
	t.Helper()
	for f, v := range values {
		require.NoError(t, h.Update(context.Background(), f, v))
	}
}

func validDraft() map[contact.Field]string {
	return map[contact.Field]string{
		contact.FieldName:    "Ana",
		contact.FieldEmail:   "ana@x.com",
		contact.FieldMessage: "Hola",
	}
}

func TestHolder_Update(t *testing.T) {
	t.Parallel()

	h := form.NewHolder("v1", contact.DispatcherFunc(func(context.Context, contact.Draft) error { return nil }))
	ctx := context.Background()

	require.NoError(t, h.Update(ctx, contact.FieldName, "Ana"))
	require.NoError(t, h.Update(ctx, contact.FieldCompany, "Acme"))
	require.NoError(t, h.Update(ctx, contact.FieldName, "Ana María"))

	d := h.Draft()
	assert.Equal(t, "Ana María", d.Name)
	assert.Equal(t, "Acme", d.Company)
	assert.Empty(t, d.Email)

	err := h.Update(ctx, contact.Field("age"), "30")
	require.ErrorIs(t, err, contact.ErrUnknownField)

	err = h.Update(ctx, contact.FieldService, "catering")
	require.ErrorIs(t, err, contact.ErrUnknownService)
	assert.Equal(t, contact.ServiceNone, h.Draft().Service)
}

func TestHolder_Submit(t *testing.T) {
	t.Parallel()

	t.Run("valid draft is dispatched once and reset", func(t *testing.T) {
		t.Parallel()

		var got []contact.Draft
		h := form.NewHolder("v1", contact.DispatcherFunc(func(_ context.Context, d contact.Draft) error {
			got = append(got, d)
			return nil
		}))
		fill(t, h, validDraft())

		rec := &recorder{}
		require.NoError(t, h.Submit(context.Background(), rec))

		require.Len(t, got, 1)
		assert.Equal(t, contact.Draft{Name: "Ana", Email: "ana@x.com", Message: "Hola"}, got[0])
		assert.True(t, h.Draft().IsZero())
		assert.False(t, h.InFlight())
		assert.Equal(t, []form.NoticeKind{form.NoticeSent}, rec.kinds())
	})

	t.Run("missing fields never reach the dispatcher", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int32
		h := form.NewHolder("v1", contact.DispatcherFunc(func(context.Context, contact.Draft) error {
			calls.Add(1)
			return nil
		}))
		fill(t, h, map[contact.Field]string{contact.FieldName: "Ana", contact.FieldEmail: "ana@x.com"})

		rec := &recorder{}
		err := h.Submit(context.Background(), rec)
		require.ErrorIs(t, err, contact.ErrMissingRequired)

		assert.Zero(t, calls.Load())
		assert.Equal(t, "Ana", h.Draft().Name)
		assert.False(t, h.InFlight())
		require.Equal(t, []form.NoticeKind{form.NoticeInvalid}, rec.kinds())
		assert.ErrorIs(t, rec.notices[0].Err, contact.ErrMissingRequired)
	})

	t.Run("invalid email is reported", func(t *testing.T) {
		t.Parallel()

		h := form.NewHolder("v1", contact.DispatcherFunc(func(context.Context, contact.Draft) error {
			t.Fatal("dispatcher must not be called")
			return nil
		}))
		values := validDraft()
		values[contact.FieldEmail] = "not-an-email"
		fill(t, h, values)

		err := h.Submit(context.Background(), nil)
		require.ErrorIs(t, err, contact.ErrInvalidEmail)
	})

	t.Run("dispatch failure keeps the draft", func(t *testing.T) {
		t.Parallel()

		boom := errors.New("503")
		var fail atomic.Bool
		fail.Store(true)
		h := form.NewHolder("v1", contact.DispatcherFunc(func(context.Context, contact.Draft) error {
			if fail.Load() {
				return boom
			}
			return nil
		}))
		fill(t, h, validDraft())

		rec := &recorder{}
		err := h.Submit(context.Background(), rec)
		require.True(t, contact.IsDispatchError(err))
		require.ErrorIs(t, err, boom)

		assert.Equal(t, "Ana", h.Draft().Name)
		assert.False(t, h.InFlight())
		assert.Equal(t, []form.NoticeKind{form.NoticeFailed}, rec.kinds())

		fail.Store(false)
		require.NoError(t, h.Submit(context.Background(), rec))
		assert.True(t, h.Draft().IsZero())
		assert.Equal(t, []form.NoticeKind{form.NoticeFailed, form.NoticeSent}, rec.kinds())
	})

	t.Run("dispatcher panic clears the flag", func(t *testing.T) {
		t.Parallel()

		h := form.NewHolder("v1", contact.DispatcherFunc(func(context.Context, contact.Draft) error {
			panic("boom")
		}))
		fill(t, h, validDraft())

		err := h.Submit(context.Background(), nil)
		require.True(t, contact.IsDispatchError(err))
		assert.False(t, h.InFlight())
		assert.Equal(t, "Ana", h.Draft().Name)
	})

	t.Run("second submit while in flight is rejected", func(t *testing.T) {
		t.Parallel()

		started := make(chan struct{})
		release := make(chan struct{})
		var calls atomic.Int32
		h := form.NewHolder("v1", contact.DispatcherFunc(func(context.Context, contact.Draft) error {
			calls.Add(1)
			close(started)
			<-release
			return nil
		}))
		fill(t, h, validDraft())

		errc := make(chan error, 1)
		go func() { errc <- h.Submit(context.Background(), nil) }()
		<-started

		assert.True(t, h.InFlight())

		rec := &recorder{}
		err := h.Submit(context.Background(), rec)
		require.ErrorIs(t, err, form.ErrInFlight)
		assert.Equal(t, []form.NoticeKind{form.NoticeBusy}, rec.kinds())

		close(release)
		require.NoError(t, <-errc)
		assert.Equal(t, int32(1), calls.Load())
		assert.False(t, h.InFlight())
	})

	t.Run("cancelled request still completes the dispatch", func(t *testing.T) {
		t.Parallel()

		var sawCancel atomic.Bool
		h := form.NewHolder("v1", contact.DispatcherFunc(func(ctx context.Context, _ contact.Draft) error {
			sawCancel.Store(ctx.Err() != nil)
			return nil
		}))
		fill(t, h, validDraft())

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		require.NoError(t, h.Submit(ctx, nil))
		assert.False(t, sawCancel.Load())
		assert.True(t, h.Draft().IsZero())
	})
}

func TestHolder_Autosave(t *testing.T) {
	t.Parallel()

	store := form.NewMemoryStore(time.Hour, 0)
	t.Cleanup(func() { _ = store.Close() })

	h := form.NewHolder("visitor-1", contact.DispatcherFunc(func(context.Context, contact.Draft) error { return nil }),
		form.WithStore(store))
	ctx := context.Background()

	fill(t, h, validDraft())
	saved, err := store.Load(ctx, "visitor-1")
	require.NoError(t, err)
	assert.Equal(t, "Ana", saved.Name)

	require.NoError(t, h.Submit(ctx, nil))
	_, err = store.Load(ctx, "visitor-1")
	require.ErrorIs(t, err, form.ErrDraftNotFound)

	require.NoError(t, h.Update(ctx, contact.FieldName, "Ana"))
	require.NoError(t, h.Update(ctx, contact.FieldName, ""))
	_, err = store.Load(ctx, "visitor-1")
	require.ErrorIs(t, err, form.ErrDraftNotFound, "clearing the last field drops the stored draft")
}

type failingStore struct{}

func (failingStore) Load(context.Context, string) (contact.Draft, error) {
	return contact.Draft{}, form.ErrStoreFailed
}
func (failingStore) Save(context.Context, string, contact.Draft) error { return form.ErrStoreFailed }
func (failingStore) Delete(context.Context, string) error              { return form.ErrStoreFailed }

func TestHolder_StoreFailuresAreNotFatal(t *testing.T) {
	t.Parallel()

	h := form.NewHolder("v1", contact.DispatcherFunc(func(context.Context, contact.Draft) error { return nil }),
		form.WithStore(failingStore{}))
	fill(t, h, validDraft())

	assert.Equal(t, "Ana", h.Draft().Name)
	require.NoError(t, h.Submit(context.Background(), nil))
	assert.True(t, h.Draft().IsZero())
}
