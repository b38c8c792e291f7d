package repository_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripgenie-service/internal/domain/entity"
	domainRepo "tripgenie-service/internal/domain/repository"
	"tripgenie-service/internal/interface/repository"
)

func newSession(id string) *entity.PlanningSession {
	return &entity.PlanningSession{
		ID:                id,
		ActiveItineraryID: "it-1",
		Selections: map[string]entity.Selection{
			"it-1": {ActivitySelections: map[string]bool{"act-1": true}},
		},
		Status:    entity.SessionReady,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
}

func TestMemorySessionStore_PutGet(t *testing.T) {
	store := repository.NewMemorySessionStore(0, nil)
	defer store.Close()
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, newSession("s1")))

	got, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "s1", got.ID)
	assert.True(t, got.Selections["it-1"].ActivitySelections["act-1"])
}

func TestMemorySessionStore_GetUnknown(t *testing.T) {
	store := repository.NewMemorySessionStore(0, nil)
	defer store.Close()

	_, err := store.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, domainRepo.ErrSessionNotFound)
}

func TestMemorySessionStore_SnapshotsAreIsolated(t *testing.T) {
	store := repository.NewMemorySessionStore(0, nil)
	defer store.Close()
	ctx := context.Background()

	original := newSession("s1")
	require.NoError(t, store.Put(ctx, original))

	// Mutating the caller's copy must not reach the store.
	original.Status = entity.SessionFinalized
	original.Selections["it-1"].ActivitySelections["act-1"] = false

	got, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, entity.SessionReady, got.Status)
	assert.True(t, got.Selections["it-1"].ActivitySelections["act-1"])

	// Nor must mutating a returned snapshot.
	got.Selections["it-1"].ActivitySelections["act-1"] = false
	again, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.True(t, again.Selections["it-1"].ActivitySelections["act-1"])
}

func TestMemorySessionStore_UpdateAppliesMutation(t *testing.T) {
	store := repository.NewMemorySessionStore(0, nil)
	defer store.Close()
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, newSession("s1")))

	updated, err := store.Update(ctx, "s1", func(s *entity.PlanningSession) error {
		s.Status = entity.SessionFinalized
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, entity.SessionFinalized, updated.Status)

	got, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, entity.SessionFinalized, got.Status)
}

func TestMemorySessionStore_FailedMutationLeavesStateUntouched(t *testing.T) {
	store := repository.NewMemorySessionStore(0, nil)
	defer store.Close()
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, newSession("s1")))

	boom := errors.New("rejected")
	_, err := store.Update(ctx, "s1", func(s *entity.PlanningSession) error {
		s.Status = entity.SessionFinalized
		return boom
	})
	assert.ErrorIs(t, err, boom)

	got, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, entity.SessionReady, got.Status, "failed update must not persist")
}

func TestMemorySessionStore_ConcurrentUpdatesAllApply(t *testing.T) {
	store := repository.NewMemorySessionStore(0, nil)
	defer store.Close()
	ctx := context.Background()

	session := newSession("s1")
	session.Selections["it-1"] = entity.Selection{ActivitySelections: map[string]bool{}}
	require.NoError(t, store.Put(ctx, session))

	const writers = 20
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_, err := store.Update(ctx, "s1", func(s *entity.PlanningSession) error {
				sel := s.Selections["it-1"]
				sel.ActivitySelections[fmt.Sprintf("act-%d", n)] = true
				s.Selections["it-1"] = sel
				return nil
			})
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	got, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Len(t, got.Selections["it-1"].ActivitySelections, writers,
		"no concurrent update may be lost")
}

func TestMemorySessionStore_Delete(t *testing.T) {
	store := repository.NewMemorySessionStore(0, nil)
	defer store.Close()
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, newSession("s1")))
	require.NoError(t, store.Delete(ctx, "s1"))
	_, err := store.Get(ctx, "s1")
	assert.ErrorIs(t, err, domainRepo.ErrSessionNotFound)

	// Deleting again is not an error.
	assert.NoError(t, store.Delete(ctx, "s1"))
}

func TestMemorySessionStore_TTLExpiry(t *testing.T) {
	store := repository.NewMemorySessionStore(20*time.Millisecond, nil)
	defer store.Close()
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, newSession("s1")))

	_, err := store.Get(ctx, "s1")
	require.NoError(t, err)

	time.Sleep(40 * time.Millisecond)

	_, err = store.Get(ctx, "s1")
	assert.ErrorIs(t, err, domainRepo.ErrSessionNotFound)

	_, err = store.Update(ctx, "s1", func(s *entity.PlanningSession) error { return nil })
	assert.ErrorIs(t, err, domainRepo.ErrSessionNotFound)
}
