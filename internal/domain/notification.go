package domain

import (
	"time"
)

// Notification is a backend-delivered notification shown in the app inbox.
type Notification struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Title     string    `json:"title"`
	Body      string    `json:"body,omitempty"`
	Category  string    `json:"category,omitempty"` // "diet", "workout", "system"
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt"`
}
