package apiclient

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/FaisalHanif12/PrimeForm-sub002/internal/domain"
	"github.com/FaisalHanif12/PrimeForm-sub002/internal/localstore"
)

const profileCacheKey = "user_profile"

// ProfileAPI wraps the user-profile endpoints and keeps a device-local copy
// so screens can render instantly on next launch.
type ProfileAPI struct {
	client *Client
	cache  localstore.Store
}

func NewProfileAPI(client *Client, cache localstore.Store) *ProfileAPI {
	return &ProfileAPI{client: client, cache: cache}
}

// GetCachedProfile returns the locally cached profile for the user, if any.
// A cache miss is not an error.
func (a *ProfileAPI) GetCachedProfile(ctx context.Context, userID string) (*domain.UserProfile, error) {
	raw, ok, err := a.cache.GetItem(ctx, localstore.UserScopedKey(profileCacheKey, userID))
	if err != nil || !ok {
		return nil, err
	}
	var profile domain.UserProfile
	if err := json.Unmarshal([]byte(raw), &profile); err != nil {
		// A corrupt entry is dropped rather than surfaced.
		_ = a.cache.RemoveItem(ctx, localstore.UserScopedKey(profileCacheKey, userID))
		return nil, nil
	}
	return &profile, nil
}

// GetUserProfile fetches the profile from the backend and refreshes the
// local copy. Returns (nil, nil) when the backend has no profile yet.
func (a *ProfileAPI) GetUserProfile(ctx context.Context) (*domain.UserProfile, error) {
	var profile domain.UserProfile
	err := a.client.do(ctx, http.MethodGet, "/profile", nil, &profile)
	if IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	a.cacheProfile(ctx, &profile)
	return &profile, nil
}

// CreateOrUpdateProfile pushes profile changes and refreshes the local copy.
func (a *ProfileAPI) CreateOrUpdateProfile(ctx context.Context, profile *domain.UserProfile) error {
	var saved domain.UserProfile
	if err := a.client.do(ctx, http.MethodPut, "/profile", profile, &saved); err != nil {
		return err
	}
	a.cacheProfile(ctx, &saved)
	return nil
}

func (a *ProfileAPI) cacheProfile(ctx context.Context, profile *domain.UserProfile) {
	if profile.UserID == "" {
		return
	}
	raw, err := json.Marshal(profile)
	if err != nil {
		return
	}
	// Best effort; the backend copy is authoritative.
	_ = a.cache.SetItem(ctx, localstore.UserScopedKey(profileCacheKey, profile.UserID), string(raw))
}
