package main

import (
	"net/http"
	"strings"

	"github.com/FaisalHanif12/PrimeForm-sub002/internal/domain"

	"github.com/gin-gonic/gin"
)

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func (s *devServer) handleGetDietPlan(c *gin.Context) {
	s.store.mu.Lock()
	plan, exists := s.store.dietPlans[userID(c)]
	s.store.mu.Unlock()

	if !exists {
		abortWithError(c, http.StatusNotFound, "No diet plan for this user")
		return
	}
	respond(c, http.StatusOK, plan)
}

func (s *devServer) handleDeleteDietPlan(c *gin.Context) {
	s.store.mu.Lock()
	delete(s.store.dietPlans, userID(c))
	s.store.mu.Unlock()
	respondMessage(c, http.StatusOK, "Diet plan deleted")
}

func (s *devServer) handleGenerateDietPlan(c *gin.Context) {
	uid := userID(c)

	// The request body may carry a fresher profile than the stored one.
	var profile domain.UserProfile
	if err := c.ShouldBindJSON(&profile); err != nil || profile.UserID == "" {
		s.store.mu.Lock()
		if stored, ok := s.store.profiles[uid]; ok {
			profile = *stored
		}
		s.store.mu.Unlock()
	}

	plan := generateDietPlan(uid, &profile)

	s.store.mu.Lock()
	s.store.dietPlans[uid] = plan
	s.store.mu.Unlock()

	respond(c, http.StatusCreated, plan)
}

func (s *devServer) handleGetWorkoutPlan(c *gin.Context) {
	s.store.mu.Lock()
	plan, exists := s.store.workoutPlans[userID(c)]
	s.store.mu.Unlock()

	if !exists {
		abortWithError(c, http.StatusNotFound, "No workout plan for this user")
		return
	}
	respond(c, http.StatusOK, plan)
}

func (s *devServer) handleDeleteWorkoutPlan(c *gin.Context) {
	s.store.mu.Lock()
	delete(s.store.workoutPlans, userID(c))
	s.store.mu.Unlock()
	respondMessage(c, http.StatusOK, "Workout plan deleted")
}

func (s *devServer) handleGenerateWorkoutPlan(c *gin.Context) {
	uid := userID(c)

	var profile domain.UserProfile
	if err := c.ShouldBindJSON(&profile); err != nil || profile.UserID == "" {
		s.store.mu.Lock()
		if stored, ok := s.store.profiles[uid]; ok {
			profile = *stored
		}
		s.store.mu.Unlock()
	}

	plan := generateWorkoutPlan(uid, &profile)

	s.store.mu.Lock()
	s.store.workoutPlans[uid] = plan
	s.store.mu.Unlock()

	respond(c, http.StatusCreated, plan)
}
