package main

import (
	"sync"

	"github.com/FaisalHanif12/PrimeForm-sub002/internal/domain"
)

// account is a registered dev user.
type account struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
}

// memStore holds all dev-server state in memory, guarded by one mutex.
// A restart starts from a clean slate.
type memStore struct {
	mu sync.Mutex

	accountsByEmail map[string]*account
	profiles        map[string]*domain.UserProfile   // by user id
	dietPlans       map[string]*domain.DietPlan      // by user id
	workoutPlans    map[string]*domain.WorkoutPlan   // by user id
	conversations   map[string][]*domain.Conversation // by user id, newest first
	notifications   map[string][]*domain.Notification // by user id, newest first
	photos          map[string][]*domain.ProgressPhoto

	completedExercises map[string]map[string]struct{} // user id -> set of date|exercise
	completedDays      map[string]map[string]struct{} // user id -> set of dates
}

func newMemStore() *memStore {
	return &memStore{
		accountsByEmail:    make(map[string]*account),
		profiles:           make(map[string]*domain.UserProfile),
		dietPlans:          make(map[string]*domain.DietPlan),
		workoutPlans:       make(map[string]*domain.WorkoutPlan),
		conversations:      make(map[string][]*domain.Conversation),
		notifications:      make(map[string][]*domain.Notification),
		photos:             make(map[string][]*domain.ProgressPhoto),
		completedExercises: make(map[string]map[string]struct{}),
		completedDays:      make(map[string]map[string]struct{}),
	}
}

func (s *memStore) exerciseSet(userID string) map[string]struct{} {
	if s.completedExercises[userID] == nil {
		s.completedExercises[userID] = make(map[string]struct{})
	}
	return s.completedExercises[userID]
}

func (s *memStore) daySet(userID string) map[string]struct{} {
	if s.completedDays[userID] == nil {
		s.completedDays[userID] = make(map[string]struct{})
	}
	return s.completedDays[userID]
}
