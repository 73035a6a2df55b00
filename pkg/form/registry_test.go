package form

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itopia/site/pkg/contact"
)

func nopDispatcher() contact.Dispatcher {
	return contact.DispatcherFunc(func(context.Context, contact.Draft) error { return nil })
}

func TestRegistry_Holder(t *testing.T) {
	t.Parallel()

	t.Run("same id returns the same holder", func(t *testing.T) {
		t.Parallel()

		r := NewRegistry(nopDispatcher(), WithCleanupInterval(0))
		t.Cleanup(func() { _ = r.Close() })

		const n = 32
		got := make([]*Holder, n)
		var wg sync.WaitGroup
		for i := range n {
			wg.Add(1)
			go func() {
				defer wg.Done()
				h, err := r.Holder(context.Background(), "visitor")
				assert.NoError(t, err)
				got[i] = h
			}()
		}
		wg.Wait()

		for _, h := range got {
			assert.Same(t, got[0], h)
		}
		assert.Equal(t, 1, r.Len())
	})

	t.Run("different ids are independent", func(t *testing.T) {
		t.Parallel()

		r := NewRegistry(nopDispatcher(), WithCleanupInterval(0))
		t.Cleanup(func() { _ = r.Close() })
		ctx := context.Background()

		a, err := r.Holder(ctx, "a")
		require.NoError(t, err)
		b, err := r.Holder(ctx, "b")
		require.NoError(t, err)
		require.NotSame(t, a, b)

		require.NoError(t, a.Update(ctx, contact.FieldName, "Ana"))
		assert.Empty(t, b.Draft().Name)
	})

	t.Run("draft is restored from the store", func(t *testing.T) {
		t.Parallel()

		store := NewMemoryStore(time.Hour, 0)
		ctx := context.Background()
		require.NoError(t, store.Save(ctx, "visitor", contact.Draft{Name: "Ana"}))

		r := NewRegistry(nopDispatcher(), WithStore(store), WithCleanupInterval(0))
		t.Cleanup(func() { _ = r.Close() })

		h, err := r.Holder(ctx, "visitor")
		require.NoError(t, err)
		assert.Equal(t, "Ana", h.Draft().Name)
	})

	t.Run("closed registry refuses new holders", func(t *testing.T) {
		t.Parallel()

		r := NewRegistry(nopDispatcher())
		require.NoError(t, r.Close())
		require.NoError(t, r.Close())

		_, err := r.Holder(context.Background(), "late")
		require.ErrorIs(t, err, ErrClosed)
	})
}

func TestRegistry_evictIdle(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	started := make(chan struct{})
	busy := contact.DispatcherFunc(func(context.Context, contact.Draft) error {
		close(started)
		<-release
		return nil
	})

	r := NewRegistry(busy, WithIdleTTL(time.Minute), WithCleanupInterval(0))
	t.Cleanup(func() { _ = r.Close() })
	ctx := context.Background()

	idle, err := r.Holder(ctx, "idle")
	require.NoError(t, err)
	sending, err := r.Holder(ctx, "sending")
	require.NoError(t, err)
	for f, v := range map[contact.Field]string{
		contact.FieldName: "Ana", contact.FieldEmail: "ana@x.com", contact.FieldMessage: "Hola",
	} {
		require.NoError(t, sending.Update(ctx, f, v))
	}

	done := make(chan error, 1)
	go func() { done <- sending.Submit(ctx, nil) }()
	<-started

	later := time.Now().Add(2 * time.Minute)
	assert.Equal(t, 1, r.evictIdle(later))
	assert.Equal(t, 1, r.Len())

	h, ok := r.lookup("sending")
	require.True(t, ok)
	assert.Same(t, sending, h)
	_, ok = r.lookup("idle")
	assert.False(t, ok)

	close(release)
	require.NoError(t, <-done)

	assert.Equal(t, 1, r.evictIdle(time.Now().Add(2*time.Minute)))
	assert.Zero(t, r.Len())

	fresh, err := r.Holder(ctx, "idle")
	require.NoError(t, err)
	assert.NotSame(t, idle, fresh)
}

func TestRegistry_janitor(t *testing.T) {
	t.Parallel()

	r := NewRegistry(nopDispatcher(), WithIdleTTL(time.Millisecond), WithCleanupInterval(5*time.Millisecond))
	t.Cleanup(func() { _ = r.Close() })

	_, err := r.Holder(context.Background(), "v")
	require.NoError(t, err)

	require.Eventually(t, func() bool { return r.Len() == 0 }, time.Second, 5*time.Millisecond)
}
