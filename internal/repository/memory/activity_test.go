package memory

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aidar/mergington-activities/internal/domain"
)

func newTestRepo(t *testing.T) *ActivityRepository {
	t.Helper()
	return NewActivityRepository(domain.DefaultCatalog())
}

func TestActivityRepository_List(t *testing.T) {
	repo := newTestRepo(t)

	catalog, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultCatalog().Names(), catalog.Names())
}

func TestActivityRepository_GetByName(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	activity, err := repo.GetByName(ctx, "Chess Club")
	require.NoError(t, err)
	assert.Equal(t, "Fridays, 3:30 PM - 5:00 PM", activity.Schedule)

	_, err = repo.GetByName(ctx, "chess club")
	assert.ErrorIs(t, err, domain.ErrActivityNotFound, "names are case-sensitive")
}

func TestActivityRepository_AddParticipant(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	size, err := repo.AddParticipant(ctx, "Chess Club", "new@mergington.edu")
	require.NoError(t, err)
	assert.Equal(t, 3, size)

	activity, err := repo.GetByName(ctx, "Chess Club")
	require.NoError(t, err)
	assert.Equal(t, []string{"michael@mergington.edu", "daniel@mergington.edu", "new@mergington.edu"}, activity.Participants)

	size, err = repo.AddParticipant(ctx, "Chess Club", "new@mergington.edu")
	assert.ErrorIs(t, err, domain.ErrAlreadySignedUp)
	assert.Equal(t, 3, size)

	_, err = repo.AddParticipant(ctx, "Underwater Basket Weaving", "new@mergington.edu")
	assert.ErrorIs(t, err, domain.ErrActivityNotFound)
}

func TestActivityRepository_AddParticipantIgnoresCapacity(t *testing.T) {
	snapshot := domain.NewCatalog()
	snapshot.Add("Tiny Club", domain.Activity{MaxParticipants: 1, Participants: []string{"a@mergington.edu"}})
	repo := NewActivityRepository(snapshot)

	_, err := repo.AddParticipant(context.Background(), "Tiny Club", "b@mergington.edu")
	require.NoError(t, err)

	activity, err := repo.GetByName(context.Background(), "Tiny Club")
	require.NoError(t, err)
	assert.Len(t, activity.Participants, 2)
}

func TestActivityRepository_RemoveParticipant(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	_, err := repo.AddParticipant(ctx, "Chess Club", "new@mergington.edu")
	require.NoError(t, err)
	size, err := repo.RemoveParticipant(ctx, "Chess Club", "daniel@mergington.edu")
	require.NoError(t, err)
	assert.Equal(t, 2, size)

	activity, err := repo.GetByName(ctx, "Chess Club")
	require.NoError(t, err)
	assert.Equal(t, []string{"michael@mergington.edu", "new@mergington.edu"}, activity.Participants)

	_, err = repo.RemoveParticipant(ctx, "Chess Club", "daniel@mergington.edu")
	assert.ErrorIs(t, err, domain.ErrParticipantNotFound)

	_, err = repo.RemoveParticipant(ctx, "Nope", "daniel@mergington.edu")
	assert.ErrorIs(t, err, domain.ErrActivityNotFound)
}

func TestActivityRepository_ReadsAreCopies(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	activity, err := repo.GetByName(ctx, "Chess Club")
	require.NoError(t, err)
	activity.Participants[0] = "hacker@example.com"

	catalog, err := repo.List(ctx)
	require.NoError(t, err)
	listed, _ := catalog.Get("Chess Club")
	listed.Participants[1] = "hacker@example.com"

	fresh, err := repo.GetByName(ctx, "Chess Club")
	require.NoError(t, err)
	assert.Equal(t, []string{"michael@mergington.edu", "daniel@mergington.edu"}, fresh.Participants)
}

func TestActivityRepository_SnapshotIsCopied(t *testing.T) {
	snapshot := domain.DefaultCatalog()
	repo := NewActivityRepository(snapshot)

	chess, _ := snapshot.Get("Chess Club")
	chess.Participants[0] = "changed@mergington.edu"

	activity, err := repo.GetByName(context.Background(), "Chess Club")
	require.NoError(t, err)
	assert.Equal(t, "michael@mergington.edu", activity.Participants[0])
}

func TestActivityRepository_Reset(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	_, err := repo.AddParticipant(ctx, "Chess Club", "new@mergington.edu")
	require.NoError(t, err)
	_, err = repo.RemoveParticipant(ctx, "Gym Class", "john@mergington.edu")
	require.NoError(t, err)

	require.NoError(t, repo.Reset(ctx))

	chess, err := repo.GetByName(ctx, "Chess Club")
	require.NoError(t, err)
	assert.NotContains(t, chess.Participants, "new@mergington.edu")

	gym, err := repo.GetByName(ctx, "Gym Class")
	require.NoError(t, err)
	assert.Contains(t, gym.Participants, "john@mergington.edu")

	// Reset всегда восстанавливает один и тот же снимок
	_, err = repo.AddParticipant(ctx, "Chess Club", "again@mergington.edu")
	require.NoError(t, err)
	require.NoError(t, repo.Reset(ctx))
	chess, err = repo.GetByName(ctx, "Chess Club")
	require.NoError(t, err)
	assert.Len(t, chess.Participants, 2)
}

func TestActivityRepository_NilSnapshot(t *testing.T) {
	repo := NewActivityRepository(nil)

	catalog, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, catalog.Len())
}

func TestActivityRepository_ConcurrentDuplicateSignup(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	const workers = 32
	var (
		wg        sync.WaitGroup
		succeeded atomic.Int32
		dupes     atomic.Int32
	)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.AddParticipant(ctx, "Math Club", "race@mergington.edu")
			switch {
			case err == nil:
				succeeded.Add(1)
			case errors.Is(err, domain.ErrAlreadySignedUp):
				dupes.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), succeeded.Load())
	assert.Equal(t, int32(workers-1), dupes.Load())

	activity, err := repo.GetByName(ctx, "Math Club")
	require.NoError(t, err)
	assert.Len(t, activity.Participants, 3)
}

func TestActivityRepository_ConcurrentSizesAreDistinct(t *testing.T) {
	repo := NewActivityRepository(domain.DefaultCatalog())
	ctx := context.Background()

	const workers = 20
	sizes := make(chan int, workers)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			size, err := repo.AddParticipant(ctx, "Art Club", fmt.Sprintf("student%d@mergington.edu", i))
			if err == nil {
				sizes <- size
			}
		}(i)
	}
	wg.Wait()
	close(sizes)

	// Каждая запись видит свой размер списка, максимум совпадает с итоговым
	seen := make(map[int]bool)
	maxSize := 0
	for size := range sizes {
		assert.False(t, seen[size], "size %d reported twice", size)
		seen[size] = true
		maxSize = max(maxSize, size)
	}
	assert.Len(t, seen, workers)

	activity, err := repo.GetByName(ctx, "Art Club")
	require.NoError(t, err)
	assert.Equal(t, len(activity.Participants), maxSize)
	assert.Equal(t, 2+workers, maxSize)
}
