package apiclient

import (
	"context"
	"net/http"

	"github.com/FaisalHanif12/PrimeForm-sub002/internal/domain"
)

// NotificationAPI wraps the notification inbox endpoints.
type NotificationAPI struct {
	client *Client
}

func NewNotificationAPI(client *Client) *NotificationAPI {
	return &NotificationAPI{client: client}
}

type unreadCountResponse struct {
	UnreadCount int `json:"unreadCount"`
}

// GetUnreadCount returns the number of unread notifications.
func (a *NotificationAPI) GetUnreadCount(ctx context.Context) (int, error) {
	var out unreadCountResponse
	if err := a.client.do(ctx, http.MethodGet, "/notifications/unread-count", nil, &out); err != nil {
		return 0, err
	}
	return out.UnreadCount, nil
}

// List returns the notification inbox, newest first.
func (a *NotificationAPI) List(ctx context.Context) ([]domain.Notification, error) {
	var notifications []domain.Notification
	if err := a.client.do(ctx, http.MethodGet, "/notifications", nil, &notifications); err != nil {
		return nil, err
	}
	return notifications, nil
}

// MarkAllRead clears the unread state for every notification.
func (a *NotificationAPI) MarkAllRead(ctx context.Context) error {
	return a.client.do(ctx, http.MethodPost, "/notifications/read-all", nil, nil)
}
