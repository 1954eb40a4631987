package localstore

import (
	"context"
	"fmt"
)

// StoreError helps distinguish local-store errors.
type StoreError string

func (e StoreError) Error() string { return string(e) }

var (
	ErrClosed = StoreError("local store is closed")
)

// Store is the device key-value store, the Go equivalent of the app's
// on-device storage. Values are opaque strings (typically JSON).
type Store interface {
	// GetItem returns the value for key. The second return reports whether
	// the key exists; a missing key is not an error.
	GetItem(ctx context.Context, key string) (string, bool, error)
	SetItem(ctx context.Context, key, value string) error
	RemoveItem(ctx context.Context, key string) error
}

// UserScopedKey namespaces a storage key by user identity so an account
// switch can never surface another user's cached data.
func UserScopedKey(base, userID string) string {
	return fmt.Sprintf("%s:%s", base, userID)
}

// DailyKey further scopes a user key by calendar date (ISO "2006-01-02").
// A new day simply has no entry yet, which is how daily counters reset.
func DailyKey(base, userID, isoDate string) string {
	return fmt.Sprintf("%s:%s:%s", base, userID, isoDate)
}
