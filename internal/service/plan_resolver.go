package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/FaisalHanif12/PrimeForm-sub002/internal/domain"
	"github.com/FaisalHanif12/PrimeForm-sub002/internal/identity"
	"github.com/FaisalHanif12/PrimeForm-sub002/internal/localstore"
)

// --- Error Definitions ---
var (
	// ErrPlanLoadFailed wraps transport/parse failures. A load failure is
	// never presented as "no plan": callers show a retry control for this
	// and the generation screen only for a confirmed-absent result.
	ErrPlanLoadFailed = errors.New("failed to load plan")
)

// PlanBackend is the authoritative store for one plan kind. found=false
// with a nil error means the backend confirmed no plan exists, which is a
// valid result, not a failure.
type PlanBackend[P domain.CacheablePlan] interface {
	Load(ctx context.Context, forceRefresh bool) (plan P, found bool, err error)
}

// PlanBackendFunc adapts a plain function to PlanBackend.
type PlanBackendFunc[P domain.CacheablePlan] func(ctx context.Context, forceRefresh bool) (P, bool, error)

func (f PlanBackendFunc[P]) Load(ctx context.Context, forceRefresh bool) (P, bool, error) {
	return f(ctx, forceRefresh)
}

// DefaultMaxPlanAge is how old a cached plan may get before a background
// reconciliation against the backend is attempted.
const DefaultMaxPlanAge = 30 * time.Minute

const reconcileTimeout = 20 * time.Second

// PlanResolver decides, on screen load or forced refresh, what plan data to
// present: local cache first (synchronous, never blocks the UI on network),
// the backend otherwise, with an in-flight-deletion flag that suppresses
// every cache read until a new state is confirmed.
//
// One resolver instance backs one screen's plan kind (diet or workout); the
// deletion flag is scoped to that instance's lifetime, like the screen
// state it models.
type PlanResolver[P domain.CacheablePlan] struct {
	cacheKeyBase string // e.g. "diet_plan"
	backend      PlanBackend[P]
	store        localstore.Store
	identity     identity.Provider
	maxAge       time.Duration
	now          func() time.Time

	// onUpdate, when set, receives replacements produced by background
	// reconciliation. found=false means the backend reported no plan and
	// local state was cleared.
	onUpdate func(plan P, found bool)

	mu          sync.Mutex
	justDeleted bool
	// seq is a monotonic mutation counter. Background work captures it at
	// start and applies its result only if nothing newer happened, so a
	// slow stale response can never overwrite fresher state.
	seq uint64

	bg sync.WaitGroup
}

// NewPlanResolver creates a resolver for one plan kind. cacheKeyBase is the
// device-storage namespace for the plan cache ("diet_plan", "workout_plan").
func NewPlanResolver[P domain.CacheablePlan](
	cacheKeyBase string,
	backend PlanBackend[P],
	store localstore.Store,
	ident identity.Provider,
	maxAge time.Duration,
) *PlanResolver[P] {
	if maxAge <= 0 {
		maxAge = DefaultMaxPlanAge
	}
	return &PlanResolver[P]{
		cacheKeyBase: cacheKeyBase,
		backend:      backend,
		store:        store,
		identity:     ident,
		maxAge:       maxAge,
		now:          time.Now,
	}
}

// OnUpdate registers the callback invoked when background reconciliation
// replaces or clears the plan. Must be set before the first Resolve.
func (r *PlanResolver[P]) OnUpdate(fn func(plan P, found bool)) {
	r.onUpdate = fn
}

// MarkDeleted records that a delete-plan action was just issued. Until a
// subsequent Resolve confirms the backend state, no cached plan will be
// presented.
func (r *PlanResolver[P]) MarkDeleted() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.justDeleted = true
	r.seq++
}

// JustDeleted reports whether the deletion flag is currently set.
func (r *PlanResolver[P]) JustDeleted() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.justDeleted
}

// Resolve returns the plan to present. found=false with a nil error is the
// confirmed "no plan exists" state (show the generation UI); a non-nil
// error is a load failure (show retry).
func (r *PlanResolver[P]) Resolve(ctx context.Context, skipCache bool) (plan P, found bool, err error) {
	var zero P

	userID, err := r.identity.CurrentUserID(ctx)
	if err != nil {
		return zero, false, err
	}

	r.mu.Lock()
	r.seq++
	seq := r.seq
	justDeleted := r.justDeleted
	r.mu.Unlock()

	// 1. Deletion in flight or caller forced it: the backend is the sole
	// source of truth and every cache layer is bypassed.
	if justDeleted || skipCache {
		plan, found, err = r.backend.Load(ctx, true)
		if err != nil {
			// The flag stays set on failure; a cached copy of a
			// possibly-deleted plan must not resurface on retry.
			return zero, false, fmt.Errorf("%w: %v", ErrPlanLoadFailed, err)
		}
		r.clearJustDeleted()
		if found {
			// Unexpected right after a deletion, but the forced fetch is
			// authoritative either way.
			r.writeCache(ctx, userID, plan)
		} else {
			r.removeCache(ctx, userID)
		}
		return plan, found, nil
	}

	// 2. Local cache: a valid entry is returned synchronously and
	// reconciled with the backend in the background if it has aged.
	if cached, ok := r.readCache(ctx, userID); ok {
		r.bg.Add(1)
		go func() {
			defer r.bg.Done()
			r.reconcile(userID, cached, seq)
		}()
		return cached, true, nil
	}

	// 3. No valid cache entry: plain fetch, with one last stale-cache read
	// as the fallback before surfacing an error.
	plan, found, err = r.backend.Load(ctx, false)
	if err != nil {
		if cached, ok := r.readCache(ctx, userID); ok {
			return cached, true, nil
		}
		return zero, false, fmt.Errorf("%w: %v", ErrPlanLoadFailed, err)
	}
	if found {
		r.writeCache(ctx, userID, plan)
	}
	return plan, found, nil
}

// Flush waits for in-flight background reconciliation. Used on teardown and
// in tests.
func (r *PlanResolver[P]) Flush() {
	r.bg.Wait()
}

func (r *PlanResolver[P]) clearJustDeleted() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.justDeleted = false
}

func (r *PlanResolver[P]) seqIs(seq uint64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.seq == seq
}

// reconcile refreshes an aged cache entry against the backend. Failures are
// swallowed: the user already has a usable plan on screen.
func (r *PlanResolver[P]) reconcile(userID string, cached P, seq uint64) {
	freshAt, hasTimestamp := cached.FreshnessTime()
	if !hasTimestamp {
		// No timestamp: treated as permanently fresh until explicitly
		// invalidated.
		return
	}
	if r.now().Sub(freshAt) <= r.maxAge {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), reconcileTimeout)
	defer cancel()

	plan, found, err := r.backend.Load(ctx, false)
	if err != nil {
		log.Printf("plan reconcile (%s): background refresh failed: %v", r.cacheKeyBase, err)
		return
	}
	if !r.seqIs(seq) {
		// A newer resolve or deletion happened while we were fetching;
		// this result is stale and must not be applied.
		return
	}
	if !found {
		// Self-healing: the backend says no plan exists, so the cached
		// copy is garbage.
		r.removeCache(ctx, userID)
		var zero P
		r.notify(zero, false)
		return
	}
	if !plansEqual(plan, cached) {
		r.writeCache(ctx, userID, plan)
		r.notify(plan, true)
	}
}

func (r *PlanResolver[P]) notify(plan P, found bool) {
	if r.onUpdate != nil {
		r.onUpdate(plan, found)
	}
}

// planCacheEntry is the envelope written to device storage. The embedded
// user id is validated on read in addition to the scoped key, so an entry
// can never leak across an account switch.
type planCacheEntry[P any] struct {
	UserID   string    `json:"userId"`
	Plan     P         `json:"plan"`
	CachedAt time.Time `json:"cachedAt"`
}

func (r *PlanResolver[P]) cacheKey(userID string) string {
	return localstore.UserScopedKey(r.cacheKeyBase, userID)
}

// readCache returns the cached plan if the entry belongs to userID and is
// structurally well-formed. Invalid entries are dropped.
func (r *PlanResolver[P]) readCache(ctx context.Context, userID string) (P, bool) {
	var zero P
	raw, ok, err := r.store.GetItem(ctx, r.cacheKey(userID))
	if err != nil || !ok {
		return zero, false
	}
	var entry planCacheEntry[P]
	if err := json.Unmarshal([]byte(raw), &entry); err != nil {
		r.removeCache(ctx, userID)
		return zero, false
	}
	if entry.UserID != userID || entry.Plan.OwnerID() != userID || !entry.Plan.WellFormed() {
		r.removeCache(ctx, userID)
		return zero, false
	}
	return entry.Plan, true
}

func (r *PlanResolver[P]) writeCache(ctx context.Context, userID string, plan P) {
	entry := planCacheEntry[P]{UserID: userID, Plan: plan, CachedAt: r.now().UTC()}
	raw, err := json.Marshal(entry)
	if err != nil {
		return
	}
	if err := r.store.SetItem(ctx, r.cacheKey(userID), string(raw)); err != nil {
		log.Printf("plan cache (%s): write failed: %v", r.cacheKeyBase, err)
	}
}

func (r *PlanResolver[P]) removeCache(ctx context.Context, userID string) {
	if err := r.store.RemoveItem(ctx, r.cacheKey(userID)); err != nil {
		log.Printf("plan cache (%s): remove failed: %v", r.cacheKeyBase, err)
	}
}

// plansEqual compares via canonical JSON; plan types are plain data.
func plansEqual[P any](a, b P) bool {
	rawA, errA := json.Marshal(a)
	rawB, errB := json.Marshal(b)
	if errA != nil || errB != nil {
		return false
	}
	return bytes.Equal(rawA, rawB)
}
