package service

import (
	"context"
	"encoding/json"
	"log"
	"sort"
	"sync"
	"time"

	"github.com/FaisalHanif12/PrimeForm-sub002/internal/domain"
	"github.com/FaisalHanif12/PrimeForm-sub002/internal/localstore"
)

const (
	exerciseSetKeyBase = "completed_exercises"
	daySetKeyBase      = "completed_days"
)

// CompletionBackend is the primary backend for completion writes.
type CompletionBackend interface {
	MarkExerciseCompleted(ctx context.Context, date, exerciseName string) error
	MarkDayCompleted(ctx context.Context, date string) error
}

// ProgressSyncer receives best-effort pushes of the full completion state.
type ProgressSyncer interface {
	SyncSnapshot(ctx context.Context, snapshot *domain.ProgressSnapshot) error
}

// CompletionTracker marks exercises and days complete with immediate local
// feedback and eventual backend consistency: the in-memory sets update
// first, device storage second, the backend third, and a failed backend
// call rolls the first two back.
type CompletionTracker struct {
	userID   string
	store    localstore.Store
	backend  CompletionBackend
	progress ProgressSyncer
	now      func() time.Time

	mu        sync.Mutex
	exercises map[string]struct{}
	days      map[string]struct{}

	bg sync.WaitGroup
}

// NewCompletionTracker loads the persisted completion sets for the user.
func NewCompletionTracker(ctx context.Context, userID string, store localstore.Store, backend CompletionBackend, progress ProgressSyncer) (*CompletionTracker, error) {
	t := &CompletionTracker{
		userID:   userID,
		store:    store,
		backend:  backend,
		progress: progress,
		now:      time.Now,
	}
	var err error
	if t.exercises, err = loadSet(ctx, store, localstore.UserScopedKey(exerciseSetKeyBase, userID)); err != nil {
		return nil, err
	}
	if t.days, err = loadSet(ctx, store, localstore.UserScopedKey(daySetKeyBase, userID)); err != nil {
		return nil, err
	}
	return t, nil
}

// IsExerciseCompleted reports whether the exercise key is in the local set.
func (t *CompletionTracker) IsExerciseCompleted(date, exerciseName string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, ok := t.exercises[domain.ExerciseKey(date, exerciseName)]
	return ok
}

// IsDayCompleted reports whether the day is in the local set.
func (t *CompletionTracker) IsDayCompleted(date string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, ok := t.days[domain.DayKey(date)]
	return ok
}

// CompletedExerciseCount returns how many of dayExercises are completed for
// the date.
func (t *CompletionTracker) CompletedExerciseCount(date string, dayExercises []string) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	count := 0
	for _, name := range dayExercises {
		if _, ok := t.exercises[domain.ExerciseKey(date, name)]; ok {
			count++
		}
	}
	return count
}

// CompleteExercise marks one exercise done. dayExercises is the full
// exercise list of the owning day, used for the day-rollup check.
//
// Idempotent: a key already in the set is a no-op (guards rapid double
// taps) and issues no duplicate backend call.
func (t *CompletionTracker) CompleteExercise(ctx context.Context, date, exerciseName string, dayExercises []string) error {
	key := domain.ExerciseKey(date, exerciseName)

	t.mu.Lock()
	if _, done := t.exercises[key]; done {
		t.mu.Unlock()
		return nil
	}
	t.mu.Unlock()

	mutation := OptimisticMutation{
		Apply: func() {
			t.mu.Lock()
			t.exercises[key] = struct{}{}
			t.mu.Unlock()
		},
		Revert: func() {
			t.mu.Lock()
			delete(t.exercises, key)
			t.mu.Unlock()
		},
		Persist: func(ctx context.Context) error {
			return t.persistExercises(ctx)
		},
		Remote: func(ctx context.Context) error {
			return t.backend.MarkExerciseCompleted(ctx, date, exerciseName)
		},
	}
	if err := mutation.Run(ctx); err != nil {
		return err
	}

	// Day rollup: once every exercise of the day is in the set, the day
	// itself completes, exactly once.
	if t.allDone(date, dayExercises) {
		if err := t.completeDay(ctx, date); err != nil {
			// The exercise completion stands; the day rollup retries the
			// next time an exercise for this date completes.
			log.Printf("completion: day rollup for %s failed: %v", date, err)
		}
	}

	t.syncProgressAsync()
	return nil
}

// completeDay marks the whole day done, once.
func (t *CompletionTracker) completeDay(ctx context.Context, date string) error {
	key := domain.DayKey(date)

	t.mu.Lock()
	if _, done := t.days[key]; done {
		t.mu.Unlock()
		return nil
	}
	t.mu.Unlock()

	mutation := OptimisticMutation{
		Apply: func() {
			t.mu.Lock()
			t.days[key] = struct{}{}
			t.mu.Unlock()
		},
		Revert: func() {
			t.mu.Lock()
			delete(t.days, key)
			t.mu.Unlock()
		},
		Persist: func(ctx context.Context) error {
			return t.persistDays(ctx)
		},
		Remote: func(ctx context.Context) error {
			return t.backend.MarkDayCompleted(ctx, date)
		},
	}
	return mutation.Run(ctx)
}

func (t *CompletionTracker) allDone(date string, dayExercises []string) bool {
	if len(dayExercises) == 0 {
		return false
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, name := range dayExercises {
		if _, ok := t.exercises[domain.ExerciseKey(date, name)]; !ok {
			return false
		}
	}
	return true
}

// Snapshot returns the current completion state, sorted for stable output.
func (t *CompletionTracker) Snapshot() *domain.ProgressSnapshot {
	t.mu.Lock()
	defer t.mu.Unlock()
	snapshot := &domain.ProgressSnapshot{
		UserID:             t.userID,
		CompletedExercises: sortedKeys(t.exercises),
		CompletedDays:      sortedKeys(t.days),
		SyncedAt:           t.now().UTC(),
	}
	return snapshot
}

// syncProgressAsync pushes the full state to the progress aggregator.
// Failures are logged and swallowed: the state is already durable locally
// and via the primary completion call.
func (t *CompletionTracker) syncProgressAsync() {
	if t.progress == nil {
		return
	}
	snapshot := t.Snapshot()
	t.bg.Add(1)
	go func() {
		defer t.bg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), reconcileTimeout)
		defer cancel()
		if err := t.progress.SyncSnapshot(ctx, snapshot); err != nil {
			log.Printf("completion: progress sync failed: %v", err)
		}
	}()
}

// Flush waits for in-flight background syncs. Used on teardown and tests.
func (t *CompletionTracker) Flush() {
	t.bg.Wait()
}

func (t *CompletionTracker) persistExercises(ctx context.Context) error {
	t.mu.Lock()
	keys := sortedKeys(t.exercises)
	t.mu.Unlock()
	return saveSet(ctx, t.store, localstore.UserScopedKey(exerciseSetKeyBase, t.userID), keys)
}

func (t *CompletionTracker) persistDays(ctx context.Context) error {
	t.mu.Lock()
	keys := sortedKeys(t.days)
	t.mu.Unlock()
	return saveSet(ctx, t.store, localstore.UserScopedKey(daySetKeyBase, t.userID), keys)
}

func loadSet(ctx context.Context, store localstore.Store, key string) (map[string]struct{}, error) {
	set := make(map[string]struct{})
	raw, ok, err := store.GetItem(ctx, key)
	if err != nil {
		return nil, err
	}
	if !ok {
		return set, nil
	}
	var keys []string
	if err := json.Unmarshal([]byte(raw), &keys); err != nil {
		// Corrupt entry: drop it and start clean.
		_ = store.RemoveItem(ctx, key)
		return set, nil
	}
	for _, k := range keys {
		set[k] = struct{}{}
	}
	return set, nil
}

func saveSet(ctx context.Context, store localstore.Store, key string, keys []string) error {
	raw, err := json.Marshal(keys)
	if err != nil {
		return err
	}
	return store.SetItem(ctx, key, string(raw))
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
