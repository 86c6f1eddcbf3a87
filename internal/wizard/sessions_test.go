package wizard

import (
	"context"
	"errors"
	"testing"
	"time"

	stderrors "valuemed-backend/internal/common/errors"
	"valuemed-backend/internal/common/metrics"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redismock/v9"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedisStore(t *testing.T, ttl time.Duration) (SessionStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRedisStore(client, ttl), mr
}

func TestRedisStore_CreateGetSave(t *testing.T) {
	store, _ := newTestRedisStore(t, time.Hour)
	ctx := context.Background()

	session, err := store.Create(ctx, NewState())
	require.NoError(t, err)
	require.NotEmpty(t, session.ID)

	got, err := store.Get(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, session.ID, got.ID)
	assert.Equal(t, StepBasics, got.State.CurrentStep)

	got.State.Basics.City = "Chennai"
	got.State.CurrentStep = StepScope
	require.NoError(t, store.Save(ctx, got))

	reloaded, err := store.Get(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, "Chennai", reloaded.State.Basics.City)
	assert.Equal(t, StepScope, reloaded.State.CurrentStep)
}

func TestRedisStore_MissingSession(t *testing.T) {
	store, _ := newTestRedisStore(t, time.Hour)

	_, err := store.Get(context.Background(), "no-such-id")
	require.Error(t, err)

	stdErr, ok := err.(*stderrors.StandardError)
	require.True(t, ok)
	assert.Equal(t, stderrors.ErrCodeSessionNotFound, stdErr.Code)
}

func TestRedisStore_TTLExpiry(t *testing.T) {
	store, mr := newTestRedisStore(t, time.Minute)
	ctx := context.Background()

	session, err := store.Create(ctx, NewState())
	require.NoError(t, err)

	mr.FastForward(2 * time.Minute)

	_, err = store.Get(ctx, session.ID)
	require.Error(t, err)
	stdErr, ok := err.(*stderrors.StandardError)
	require.True(t, ok)
	assert.Equal(t, stderrors.ErrCodeSessionNotFound, stdErr.Code)
}

func TestRedisStore_Delete(t *testing.T) {
	store, _ := newTestRedisStore(t, time.Hour)
	ctx := context.Background()

	session, err := store.Create(ctx, NewState())
	require.NoError(t, err)

	require.NoError(t, store.Delete(ctx, session.ID))
	_, err = store.Get(ctx, session.ID)
	assert.Error(t, err)
}

func TestRedisStore_BackendFailures(t *testing.T) {
	t.Run("get propagates a store failure", func(t *testing.T) {
		client, redisMock := redismock.NewClientMock()
		store := NewRedisStore(client, time.Hour)

		redisMock.ExpectGet(sessionKeyPrefix + "abc").SetErr(errors.New("connection refused"))

		_, err := store.Get(context.Background(), "abc")
		require.Error(t, err)
		stdErr, ok := err.(*stderrors.StandardError)
		require.True(t, ok)
		assert.Equal(t, stderrors.ErrCodeSessionStoreFailed, stdErr.Code)
		assert.True(t, stdErr.Retryable)
		assert.NoError(t, redisMock.ExpectationsWereMet())
	})

	t.Run("get rejects a corrupt payload", func(t *testing.T) {
		client, redisMock := redismock.NewClientMock()
		store := NewRedisStore(client, time.Hour)

		redisMock.ExpectGet(sessionKeyPrefix + "abc").SetVal("{not json")

		_, err := store.Get(context.Background(), "abc")
		require.Error(t, err)
		stdErr, ok := err.(*stderrors.StandardError)
		require.True(t, ok)
		assert.Equal(t, stderrors.ErrCodeSessionStoreFailed, stdErr.Code)
	})

	t.Run("delete propagates a store failure", func(t *testing.T) {
		client, redisMock := redismock.NewClientMock()
		store := NewRedisStore(client, time.Hour)

		redisMock.ExpectDel(sessionKeyPrefix + "abc").SetErr(errors.New("connection refused"))

		err := store.Delete(context.Background(), "abc")
		require.Error(t, err)
		stdErr, ok := err.(*stderrors.StandardError)
		require.True(t, ok)
		assert.Equal(t, stderrors.ErrCodeSessionStoreFailed, stdErr.Code)
		assert.NoError(t, redisMock.ExpectationsWereMet())
	})
}

func TestMemoryStore_CreateGetSave(t *testing.T) {
	store := NewMemoryStore(time.Hour)
	ctx := context.Background()

	session, err := store.Create(ctx, NewState())
	require.NoError(t, err)

	session.State.Basics.Name = "A"
	require.NoError(t, store.Save(ctx, session))

	got, err := store.Get(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, "A", got.State.Basics.Name)

	// Mutating the returned copy must not leak into the store.
	got.State.Basics.Name = "B"
	again, err := store.Get(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, "A", again.State.Basics.Name)
}

func TestMemoryStore_Expiry(t *testing.T) {
	now := time.Now()
	store := &memoryStore{
		entries: make(map[string]memoryEntry),
		ttl:     time.Minute,
		now:     func() time.Time { return now },
	}
	ctx := context.Background()

	session, err := store.Create(ctx, NewState())
	require.NoError(t, err)

	now = now.Add(2 * time.Minute)

	_, err = store.Get(ctx, session.ID)
	require.Error(t, err)
	stdErr, ok := err.(*stderrors.StandardError)
	require.True(t, ok)
	assert.Equal(t, stderrors.ErrCodeSessionExpired, stdErr.Code)

	// A save refreshes the expiry.
	session2, err := store.Create(ctx, NewState())
	require.NoError(t, err)
	now = now.Add(30 * time.Second)
	require.NoError(t, store.Save(ctx, session2))
	now = now.Add(45 * time.Second)
	_, err = store.Get(ctx, session2.ID)
	assert.NoError(t, err)
}

func TestSessionGauge(t *testing.T) {
	t.Run("memory store balances create with lazy expiry", func(t *testing.T) {
		now := time.Now()
		store := &memoryStore{
			entries: make(map[string]memoryEntry),
			ttl:     time.Minute,
			now:     func() time.Time { return now },
		}
		ctx := context.Background()
		before := testutil.ToFloat64(metrics.WizardSessionsActive)

		session, err := store.Create(ctx, NewState())
		require.NoError(t, err)
		assert.Equal(t, before+1, testutil.ToFloat64(metrics.WizardSessionsActive))

		now = now.Add(2 * time.Minute)
		_, err = store.Get(ctx, session.ID)
		require.Error(t, err)
		assert.Equal(t, before, testutil.ToFloat64(metrics.WizardSessionsActive))
	})

	t.Run("redis store leaves the gauge alone", func(t *testing.T) {
		store, _ := newTestRedisStore(t, time.Hour)
		ctx := context.Background()
		before := testutil.ToFloat64(metrics.WizardSessionsActive)

		session, err := store.Create(ctx, NewState())
		require.NoError(t, err)
		require.NoError(t, store.Delete(ctx, session.ID))

		// Redis keys expire server-side where the process cannot see them,
		// so this store keeps no count at all rather than one that drifts.
		assert.Equal(t, before, testutil.ToFloat64(metrics.WizardSessionsActive))
	})
}

func TestMemoryStore_RejectedUpdateLeavesStoredScopeIntact(t *testing.T) {
	store := NewMemoryStore(time.Hour)
	ctx := context.Background()

	session, err := store.Create(ctx, NewState())
	require.NoError(t, err)
	session.State.Scope = []string{"Architecture", "Operations"}
	require.NoError(t, store.Save(ctx, session))

	// A toggle that succeeds followed by a field that fails validation:
	// the whole update errors and is never saved, so the stored session
	// must be untouched.
	loaded, err := store.Get(ctx, session.ID)
	require.NoError(t, err)
	engine := Restore(loaded.State, NewDefaultEstimator())
	err = engine.Apply(Update{ToggleScopeItem: "Architecture", Nav: "sideways"})
	require.Error(t, err)

	reloaded, err := store.Get(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Architecture", "Operations"}, reloaded.State.Scope)
}

func TestMemoryStore_Delete(t *testing.T) {
	store := NewMemoryStore(time.Hour)
	ctx := context.Background()

	session, err := store.Create(ctx, NewState())
	require.NoError(t, err)

	require.NoError(t, store.Delete(ctx, session.ID))
	require.NoError(t, store.Delete(ctx, session.ID), "delete is idempotent")

	_, err = store.Get(ctx, session.ID)
	assert.Error(t, err)
}
