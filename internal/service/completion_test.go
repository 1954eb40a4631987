package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/FaisalHanif12/PrimeForm-sub002/internal/domain"
	"github.com/FaisalHanif12/PrimeForm-sub002/internal/localstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCompletionBackend records calls and can be scripted to fail.
type fakeCompletionBackend struct {
	mu          sync.Mutex
	exercises   []string
	days        []string
	exerciseErr error
	dayErr      error
	syncs       int
	syncErr     error
}

func (b *fakeCompletionBackend) MarkExerciseCompleted(_ context.Context, date, name string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.exerciseErr != nil {
		return b.exerciseErr
	}
	b.exercises = append(b.exercises, domain.ExerciseKey(date, name))
	return nil
}

func (b *fakeCompletionBackend) MarkDayCompleted(_ context.Context, date string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.dayErr != nil {
		return b.dayErr
	}
	b.days = append(b.days, date)
	return nil
}

func (b *fakeCompletionBackend) SyncSnapshot(context.Context, *domain.ProgressSnapshot) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.syncs++
	return b.syncErr
}

func (b *fakeCompletionBackend) dayCalls() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string(nil), b.days...)
}

func (b *fakeCompletionBackend) syncCalls() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.syncs
}

var legDay = []string{"Squats", "Lunges", "Calf Raises"}

func newTracker(t *testing.T, store localstore.Store, backend *fakeCompletionBackend) *CompletionTracker {
	t.Helper()
	tracker, err := NewCompletionTracker(context.Background(), "user-a", store, backend, backend)
	require.NoError(t, err)
	return tracker
}

func TestCompleteExerciseAppliesAndPersists(t *testing.T) {
	store := localstore.NewMemoryStore()
	backend := &fakeCompletionBackend{}
	tracker := newTracker(t, store, backend)

	require.NoError(t, tracker.CompleteExercise(context.Background(), "2026-08-31", "Squats", legDay))
	tracker.Flush()

	assert.True(t, tracker.IsExerciseCompleted("2026-08-31", "Squats"))
	assert.False(t, tracker.IsDayCompleted("2026-08-31"))
	assert.Equal(t, []string{"2026-08-31|Squats"}, backend.exercises)

	// Durable: a fresh tracker over the same store sees the completion.
	reloaded := newTracker(t, store, backend)
	assert.True(t, reloaded.IsExerciseCompleted("2026-08-31", "Squats"))
}

func TestCompleteExerciseIsIdempotent(t *testing.T) {
	store := localstore.NewMemoryStore()
	backend := &fakeCompletionBackend{}
	tracker := newTracker(t, store, backend)

	require.NoError(t, tracker.CompleteExercise(context.Background(), "2026-08-31", "Squats", legDay))
	require.NoError(t, tracker.CompleteExercise(context.Background(), "2026-08-31", "Squats", legDay))
	tracker.Flush()

	assert.Len(t, backend.exercises, 1, "a double tap issues no duplicate backend call")
	assert.Equal(t, 1, tracker.CompletedExerciseCount("2026-08-31", legDay))
}

func TestCompleteExerciseRevertsOnBackendFailure(t *testing.T) {
	store := localstore.NewMemoryStore()
	backend := &fakeCompletionBackend{exerciseErr: errors.New("503")}
	tracker := newTracker(t, store, backend)

	err := tracker.CompleteExercise(context.Background(), "2026-08-31", "Squats", legDay)
	require.Error(t, err)
	tracker.Flush()

	assert.False(t, tracker.IsExerciseCompleted("2026-08-31", "Squats"))

	// The revert reached device storage too: a reload shows no completion.
	reloaded := newTracker(t, store, &fakeCompletionBackend{})
	assert.False(t, reloaded.IsExerciseCompleted("2026-08-31", "Squats"))
}

func TestDayRollsUpWhenLastExerciseCompletes(t *testing.T) {
	store := localstore.NewMemoryStore()
	backend := &fakeCompletionBackend{}
	tracker := newTracker(t, store, backend)

	for _, name := range legDay {
		require.NoError(t, tracker.CompleteExercise(context.Background(), "2026-08-31", name, legDay))
	}
	tracker.Flush()

	assert.True(t, tracker.IsDayCompleted("2026-08-31"))
	assert.Equal(t, []string{"2026-08-31"}, backend.dayCalls(), "the day completes exactly once")
}

func TestDayRollupExactlyOnce(t *testing.T) {
	store := localstore.NewMemoryStore()
	backend := &fakeCompletionBackend{}
	tracker := newTracker(t, store, backend)

	for _, name := range legDay {
		require.NoError(t, tracker.CompleteExercise(context.Background(), "2026-08-31", name, legDay))
	}
	// Completing an extra exercise for an already-complete day must not
	// mark the day again.
	extended := append(append([]string(nil), legDay...), "Leg Press")
	require.NoError(t, tracker.CompleteExercise(context.Background(), "2026-08-31", "Leg Press", extended))
	tracker.Flush()

	assert.Equal(t, []string{"2026-08-31"}, backend.dayCalls())
}

func TestDayRollupFailureLeavesExerciseCompleted(t *testing.T) {
	store := localstore.NewMemoryStore()
	backend := &fakeCompletionBackend{dayErr: errors.New("503")}
	tracker := newTracker(t, store, backend)

	single := []string{"Squats"}
	require.NoError(t, tracker.CompleteExercise(context.Background(), "2026-08-31", "Squats", single))
	tracker.Flush()

	assert.True(t, tracker.IsExerciseCompleted("2026-08-31", "Squats"),
		"a failed rollup must not undo the exercise completion")
	assert.False(t, tracker.IsDayCompleted("2026-08-31"))

	// Next completion for the date retries the rollup.
	backend.mu.Lock()
	backend.dayErr = nil
	backend.mu.Unlock()
	pair := []string{"Squats", "Lunges"}
	require.NoError(t, tracker.CompleteExercise(context.Background(), "2026-08-31", "Lunges", pair))
	tracker.Flush()
	assert.True(t, tracker.IsDayCompleted("2026-08-31"))
}

func TestProgressSyncFailureIsSwallowed(t *testing.T) {
	store := localstore.NewMemoryStore()
	backend := &fakeCompletionBackend{syncErr: errors.New("aggregator down")}
	tracker := newTracker(t, store, backend)

	require.NoError(t, tracker.CompleteExercise(context.Background(), "2026-08-31", "Squats", legDay))
	tracker.Flush()

	assert.Equal(t, 1, backend.syncCalls())
	assert.True(t, tracker.IsExerciseCompleted("2026-08-31", "Squats"))
}

func TestSnapshotIsSortedAndScoped(t *testing.T) {
	store := localstore.NewMemoryStore()
	backend := &fakeCompletionBackend{}
	tracker := newTracker(t, store, backend)

	require.NoError(t, tracker.CompleteExercise(context.Background(), "2026-08-31", "Squats", legDay))
	require.NoError(t, tracker.CompleteExercise(context.Background(), "2026-08-30", "Bench Press", []string{"Bench Press", "Rows"}))
	tracker.Flush()

	snap := tracker.Snapshot()
	assert.Equal(t, "user-a", snap.UserID)
	assert.Equal(t, []string{"2026-08-30|Bench Press", "2026-08-31|Squats"}, snap.CompletedExercises)
	assert.Empty(t, snap.CompletedDays)
}

func TestEmptyDayNeverRollsUp(t *testing.T) {
	store := localstore.NewMemoryStore()
	backend := &fakeCompletionBackend{}
	tracker := newTracker(t, store, backend)

	require.NoError(t, tracker.CompleteExercise(context.Background(), "2026-08-31", "Squats", nil))
	tracker.Flush()
	assert.False(t, tracker.IsDayCompleted("2026-08-31"))
}
