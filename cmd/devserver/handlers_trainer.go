package main

import (
	"net/http"
	"time"

	"github.com/FaisalHanif12/PrimeForm-sub002/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func (s *devServer) handleListConversations(c *gin.Context) {
	s.store.mu.Lock()
	conversations := s.store.conversations[userID(c)]
	out := make([]*domain.Conversation, len(conversations))
	copy(out, conversations)
	s.store.mu.Unlock()

	respond(c, http.StatusOK, out)
}

func (s *devServer) handleCreateConversation(c *gin.Context) {
	now := time.Now().UTC()
	conversation := &domain.Conversation{
		ID:        uuid.NewString(),
		UserID:    userID(c),
		CreatedAt: now,
		UpdatedAt: now,
	}

	s.store.mu.Lock()
	s.store.conversations[userID(c)] = append([]*domain.Conversation{conversation}, s.store.conversations[userID(c)]...)
	s.store.mu.Unlock()

	respond(c, http.StatusCreated, conversation)
}

type sendMessageRequest struct {
	ConversationID string `json:"conversationId" binding:"required"`
	Text           string `json:"text" binding:"required"`
	Locale         string `json:"locale"`
}

func (s *devServer) handleSendMessage(c *gin.Context) {
	var req sendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid message payload: "+err.Error())
		return
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	var conversation *domain.Conversation
	for _, conv := range s.store.conversations[userID(c)] {
		if conv.ID == req.ConversationID {
			conversation = conv
			break
		}
	}
	if conversation == nil {
		abortWithError(c, http.StatusNotFound, "Conversation not found")
		return
	}

	now := time.Now().UTC()
	conversation.Messages = append(conversation.Messages, domain.ChatMessage{
		ID:             uuid.NewString(),
		ConversationID: conversation.ID,
		Role:           domain.RoleUser,
		Text:           req.Text,
		Locale:         req.Locale,
		CreatedAt:      now,
	})

	replyText, category := trainerReply(req.Text, req.Locale)
	reply := domain.ChatMessage{
		ID:             uuid.NewString(),
		ConversationID: conversation.ID,
		Role:           domain.RoleTrainer,
		Text:           replyText,
		Locale:         req.Locale,
		Category:       category,
		CreatedAt:      now,
	}
	conversation.Messages = append(conversation.Messages, reply)
	conversation.UpdatedAt = now
	if conversation.Title == "" {
		conversation.Title = req.Text
	}

	respond(c, http.StatusOK, reply)
}
