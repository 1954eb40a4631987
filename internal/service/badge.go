package service

import (
	"context"
	"log"
	"strconv"

	"github.com/FaisalHanif12/PrimeForm-sub002/internal/identity"
	"github.com/FaisalHanif12/PrimeForm-sub002/internal/localstore"
)

const unreadCountKeyBase = "unread_notifications"

// NotificationCountSource is the backend for the inbox badge.
type NotificationCountSource interface {
	GetUnreadCount(ctx context.Context) (int, error)
}

// Badge keeps the notification badge count, serving the cached value
// instantly and refreshing it from the backend on demand.
type Badge struct {
	store    localstore.Store
	identity identity.Provider
	source   NotificationCountSource
}

func NewBadge(store localstore.Store, ident identity.Provider, source NotificationCountSource) *Badge {
	return &Badge{store: store, identity: ident, source: source}
}

// Cached returns the last known unread count without touching the network.
func (b *Badge) Cached(ctx context.Context) int {
	userID, err := b.identity.CurrentUserID(ctx)
	if err != nil {
		return 0
	}
	raw, ok, err := b.store.GetItem(ctx, localstore.UserScopedKey(unreadCountKeyBase, userID))
	if err != nil || !ok {
		return 0
	}
	count, err := strconv.Atoi(raw)
	if err != nil || count < 0 {
		return 0
	}
	return count
}

// Refresh fetches the unread count and updates the cached value. On
// failure the cached value stands and the error is returned for the caller
// to ignore or surface.
func (b *Badge) Refresh(ctx context.Context) (int, error) {
	userID, err := b.identity.CurrentUserID(ctx)
	if err != nil {
		return 0, err
	}
	count, err := b.source.GetUnreadCount(ctx)
	if err != nil {
		return b.Cached(ctx), err
	}
	if err := b.store.SetItem(ctx, localstore.UserScopedKey(unreadCountKeyBase, userID), strconv.Itoa(count)); err != nil {
		log.Printf("badge: persist unread count failed: %v", err)
	}
	return count, nil
}
