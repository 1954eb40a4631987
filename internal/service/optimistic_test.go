package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptimisticMutationHappyPath(t *testing.T) {
	value := 0
	persisted := 0
	m := OptimisticMutation{
		Apply:  func() { value = 1 },
		Revert: func() { value = 0 },
		Persist: func(context.Context) error {
			persisted = value
			return nil
		},
		Remote: func(context.Context) error { return nil },
	}
	require.NoError(t, m.Run(context.Background()))
	assert.Equal(t, 1, value)
	assert.Equal(t, 1, persisted)
}

func TestOptimisticMutationPersistFailureReverts(t *testing.T) {
	value := 0
	m := OptimisticMutation{
		Apply:   func() { value = 1 },
		Revert:  func() { value = 0 },
		Persist: func(context.Context) error { return errors.New("disk full") },
		Remote: func(context.Context) error {
			t.Fatal("remote must not run when persist fails")
			return nil
		},
	}
	assert.Error(t, m.Run(context.Background()))
	assert.Equal(t, 0, value)
}

func TestOptimisticMutationRemoteFailureRevertsAndRePersists(t *testing.T) {
	value := 0
	persisted := -1
	remoteErr := errors.New("backend down")
	m := OptimisticMutation{
		Apply:  func() { value = 1 },
		Revert: func() { value = 0 },
		Persist: func(context.Context) error {
			persisted = value
			return nil
		},
		Remote: func(context.Context) error { return remoteErr },
	}
	err := m.Run(context.Background())
	assert.ErrorIs(t, err, remoteErr)
	assert.Equal(t, 0, value, "the optimistic change is rolled back")
	assert.Equal(t, 0, persisted, "storage tracks the reverted state")
}
