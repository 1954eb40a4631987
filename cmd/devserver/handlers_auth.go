package main

import (
	"net/http"
	"strings"
	"time"

	"github.com/FaisalHanif12/PrimeForm-sub002/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type credentialsRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

func (s *devServer) handleRegister(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid registration payload: "+err.Error())
		return
	}
	email := strings.ToLower(req.Email)

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	if _, exists := s.store.accountsByEmail[email]; exists {
		abortWithError(c, http.StatusConflict, "An account with this email already exists")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to hash password")
		return
	}

	acct := &account{
		ID:           uuid.NewString(),
		Name:         req.Name,
		Email:        email,
		PasswordHash: string(hash),
	}
	s.store.accountsByEmail[email] = acct

	// A welcome notification gives the badge something to show.
	s.store.notifications[acct.ID] = []*domain.Notification{{
		ID:        uuid.NewString(),
		UserID:    acct.ID,
		Title:     "Welcome to PrimeForm",
		Body:      "Complete your profile to generate your first plan.",
		Category:  "system",
		CreatedAt: time.Now().UTC(),
	}}

	token, err := s.issueToken(acct.ID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to issue token")
		return
	}
	respond(c, http.StatusCreated, gin.H{"token": token, "userId": acct.ID})
}

func (s *devServer) handleLogin(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid login payload: "+err.Error())
		return
	}
	email := strings.ToLower(req.Email)

	s.store.mu.Lock()
	acct, exists := s.store.accountsByEmail[email]
	s.store.mu.Unlock()

	if !exists || bcrypt.CompareHashAndPassword([]byte(acct.PasswordHash), []byte(req.Password)) != nil {
		abortWithError(c, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	token, err := s.issueToken(acct.ID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to issue token")
		return
	}
	respond(c, http.StatusOK, gin.H{"token": token, "userId": acct.ID})
}

func (s *devServer) handleGetProfile(c *gin.Context) {
	s.store.mu.Lock()
	profile, exists := s.store.profiles[userID(c)]
	s.store.mu.Unlock()

	if !exists {
		abortWithError(c, http.StatusNotFound, "No profile for this user yet")
		return
	}
	respond(c, http.StatusOK, profile)
}

func (s *devServer) handlePutProfile(c *gin.Context) {
	var profile domain.UserProfile
	if err := c.ShouldBindJSON(&profile); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid profile payload: "+err.Error())
		return
	}
	profile.UserID = userID(c)
	now := time.Now().UTC()
	profile.UpdatedAt = now

	s.store.mu.Lock()
	if existing, ok := s.store.profiles[profile.UserID]; ok {
		profile.CreatedAt = existing.CreatedAt
	} else {
		profile.CreatedAt = now
	}
	s.store.profiles[profile.UserID] = &profile
	s.store.mu.Unlock()

	respond(c, http.StatusOK, profile)
}
