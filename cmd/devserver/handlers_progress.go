package main

import (
	"fmt"
	"net/http"
	"path"
	"time"

	"github.com/FaisalHanif12/PrimeForm-sub002/internal/domain"
	"github.com/FaisalHanif12/PrimeForm-sub002/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type completionRequest struct {
	Date         string `json:"date" binding:"required"`
	ExerciseName string `json:"exerciseName"`
}

func (s *devServer) handleCompleteExercise(c *gin.Context) {
	var req completionRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ExerciseName == "" {
		abortWithError(c, http.StatusBadRequest, "date and exerciseName are required")
		return
	}

	s.store.mu.Lock()
	s.store.exerciseSet(userID(c))[domain.ExerciseKey(req.Date, req.ExerciseName)] = struct{}{}
	s.store.mu.Unlock()

	respondMessage(c, http.StatusOK, "Exercise marked complete")
}

func (s *devServer) handleCompleteDay(c *gin.Context) {
	var req completionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "date is required")
		return
	}

	s.store.mu.Lock()
	s.store.daySet(userID(c))[domain.DayKey(req.Date)] = struct{}{}
	s.store.mu.Unlock()

	respondMessage(c, http.StatusOK, "Day marked complete")
}

func (s *devServer) handleProgressSync(c *gin.Context) {
	var snapshot domain.ProgressSnapshot
	if err := c.ShouldBindJSON(&snapshot); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid snapshot payload: "+err.Error())
		return
	}

	// The snapshot is a superset push: merge, never remove.
	s.store.mu.Lock()
	for _, key := range snapshot.CompletedExercises {
		s.store.exerciseSet(userID(c))[key] = struct{}{}
	}
	for _, key := range snapshot.CompletedDays {
		s.store.daySet(userID(c))[key] = struct{}{}
	}
	s.store.mu.Unlock()

	respondMessage(c, http.StatusOK, "Progress synced")
}

func (s *devServer) handleProgressSummary(c *gin.Context) {
	uid := userID(c)

	s.store.mu.Lock()
	summary := domain.ProgressSummary{
		UserID:            uid,
		DaysCompleted:     len(s.store.completedDays[uid]),
		ExercisesComplete: len(s.store.completedExercises[uid]),
		CurrentWeek:       1,
	}
	if plan, ok := s.store.workoutPlans[uid]; ok {
		days := int(time.Since(plan.StartDate).Hours() / 24)
		week := days/7 + 1
		if week < 1 {
			week = 1
		}
		if plan.TotalWeeks > 0 && week > plan.TotalWeeks {
			week = plan.TotalWeeks
		}
		summary.CurrentWeek = week
	}
	if profile, ok := s.store.profiles[uid]; ok {
		summary.WeightKg = profile.WeightKg
	}
	s.store.mu.Unlock()

	respond(c, http.StatusOK, summary)
}

func (s *devServer) handleListNotifications(c *gin.Context) {
	s.store.mu.Lock()
	notifications := s.store.notifications[userID(c)]
	out := make([]*domain.Notification, len(notifications))
	copy(out, notifications)
	s.store.mu.Unlock()

	respond(c, http.StatusOK, out)
}

func (s *devServer) handleUnreadCount(c *gin.Context) {
	count := 0
	s.store.mu.Lock()
	for _, n := range s.store.notifications[userID(c)] {
		if !n.Read {
			count++
		}
	}
	s.store.mu.Unlock()

	respond(c, http.StatusOK, gin.H{"unreadCount": count})
}

func (s *devServer) handleReadAll(c *gin.Context) {
	s.store.mu.Lock()
	for _, n := range s.store.notifications[userID(c)] {
		n.Read = true
	}
	s.store.mu.Unlock()

	respondMessage(c, http.StatusOK, "All notifications marked read")
}

type uploadSlotRequest struct {
	ContentType string `json:"contentType" binding:"required"`
	TakenOn     string `json:"takenOn"`
}

func (s *devServer) handlePhotoUploadURL(c *gin.Context) {
	if s.photos == nil {
		abortWithError(c, http.StatusServiceUnavailable, "Photo storage is not configured")
		return
	}

	var req uploadSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "contentType is required")
		return
	}

	objectKey := path.Join("photos", userID(c), fmt.Sprintf("%s.img", uuid.NewString()))
	uploadURL, err := s.photos.GeneratePresignedUploadURL(c.Request.Context(), objectKey, req.ContentType, storage.DefaultPresignedURLExpiry)
	if err != nil {
		if err == storage.ErrInvalidContentType {
			abortWithError(c, http.StatusBadRequest, err.Error())
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to generate upload URL")
		return
	}

	respond(c, http.StatusOK, gin.H{"uploadUrl": uploadURL, "objectKey": objectKey})
}

type confirmPhotoRequest struct {
	ObjectKey   string `json:"objectKey" binding:"required"`
	FileName    string `json:"fileName"`
	ContentType string `json:"contentType" binding:"required"`
	Size        int64  `json:"size"`
	TakenOn     string `json:"takenOn"`
}

func (s *devServer) handleConfirmPhoto(c *gin.Context) {
	var req confirmPhotoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid photo payload: "+err.Error())
		return
	}

	photo := &domain.ProgressPhoto{
		ID:          uuid.NewString(),
		UserID:      userID(c),
		S3ObjectKey: req.ObjectKey,
		FileName:    req.FileName,
		ContentType: req.ContentType,
		Size:        req.Size,
		TakenOn:     req.TakenOn,
		UploadedAt:  time.Now().UTC(),
	}

	s.store.mu.Lock()
	s.store.photos[photo.UserID] = append(s.store.photos[photo.UserID], photo)
	s.store.mu.Unlock()

	respond(c, http.StatusCreated, photo)
}
