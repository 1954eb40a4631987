package domain

import (
	"time"
)

// MessageRole distinguishes who authored a chat message.
type MessageRole string

const (
	RoleUser    MessageRole = "user"
	RoleTrainer MessageRole = "trainer"
)

// ChatMessage is a single message within an AI-trainer conversation.
type ChatMessage struct {
	ID             string      `json:"id,omitempty"`
	ConversationID string      `json:"conversationId"`
	Role           MessageRole `json:"role"`
	Text           string      `json:"text"`
	Locale         string      `json:"locale,omitempty"` // "en" or "ur"
	Category       string      `json:"category,omitempty"` // reply topic, e.g. "nutrition"
	CreatedAt      time.Time   `json:"createdAt,omitempty"`
}

// Conversation groups AI-trainer messages for a user.
type Conversation struct {
	ID        string        `json:"id"`
	UserID    string        `json:"userId"`
	Title     string        `json:"title,omitempty"`
	Messages  []ChatMessage `json:"messages,omitempty"`
	CreatedAt time.Time     `json:"createdAt,omitempty"`
	UpdatedAt time.Time     `json:"updatedAt,omitempty"`
}
