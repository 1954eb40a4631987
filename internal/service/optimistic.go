package service

import (
	"context"
	"fmt"
)

// OptimisticMutation is the one shape every optimistic local update in the
// app follows: apply the change locally, persist it to device storage, then
// call the backend; on backend failure, revert the local change and
// re-persist so storage stays consistent with memory.
//
// Apply/Revert mutate in-memory state, Persist writes the current state to
// device storage, Remote performs the backend call.
type OptimisticMutation struct {
	Apply   func()
	Revert  func()
	Persist func(ctx context.Context) error
	Remote  func(ctx context.Context) error
}

// Run executes the mutation. Local durability comes first: the state is
// persisted before any network call, so a crash mid-flight leaves the
// optimistic state, not a torn one.
func (m OptimisticMutation) Run(ctx context.Context) error {
	m.Apply()
	if err := m.Persist(ctx); err != nil {
		m.Revert()
		return fmt.Errorf("persist local state: %w", err)
	}
	if err := m.Remote(ctx); err != nil {
		m.Revert()
		// Re-persist so storage tracks the reverted in-memory state.
		if perr := m.Persist(ctx); perr != nil {
			return fmt.Errorf("remote call failed (%v); revert persist also failed: %w", err, perr)
		}
		return err
	}
	return nil
}
