package identity

import (
	"context"
	"errors"

	"github.com/FaisalHanif12/PrimeForm-sub002/internal/localstore"
	"github.com/golang-jwt/jwt/v4"
)

// --- Error Definitions ---
var (
	ErrNotAuthenticated = errors.New("no authenticated user")
	ErrMalformedToken   = errors.New("stored auth token is malformed")
)

const tokenKey = "auth_token"

// tokenClaims mirrors the claims the backend puts into its JWTs.
type tokenClaims struct {
	UserID string `json:"uid"`
	jwt.RegisteredClaims
}

// Provider resolves the current user identity. The service layer depends on
// this instead of the concrete manager so tests can stub it.
type Provider interface {
	CurrentUserID(ctx context.Context) (string, error)
	IsGuest(ctx context.Context) bool
}

// Manager persists the backend-issued auth token on the device and derives
// the local user identity from its claims. The device never holds the
// signing secret, so claims are read without signature verification;
// authorization is enforced server-side on every call anyway.
type Manager struct {
	store  localstore.Store
	parser *jwt.Parser
}

func NewManager(store localstore.Store) *Manager {
	return &Manager{
		store:  store,
		parser: jwt.NewParser(),
	}
}

// SetToken stores the token issued at login.
func (m *Manager) SetToken(ctx context.Context, token string) error {
	return m.store.SetItem(ctx, tokenKey, token)
}

// ClearToken removes the stored token (logout).
func (m *Manager) ClearToken(ctx context.Context) error {
	return m.store.RemoveItem(ctx, tokenKey)
}

// Token returns the raw stored token, if any.
func (m *Manager) Token(ctx context.Context) (string, bool) {
	token, ok, err := m.store.GetItem(ctx, tokenKey)
	if err != nil || token == "" {
		return "", false
	}
	return token, ok
}

// CurrentUserID returns the user id from the stored token's claims.
// Returns ErrNotAuthenticated when no token is stored (guest mode).
func (m *Manager) CurrentUserID(ctx context.Context) (string, error) {
	token, ok := m.Token(ctx)
	if !ok {
		return "", ErrNotAuthenticated
	}
	claims := &tokenClaims{}
	if _, _, err := m.parser.ParseUnverified(token, claims); err != nil {
		return "", ErrMalformedToken
	}
	if claims.UserID == "" {
		return "", ErrMalformedToken
	}
	return claims.UserID, nil
}

// IsGuest reports whether the app is running without an account.
func (m *Manager) IsGuest(ctx context.Context) bool {
	_, err := m.CurrentUserID(ctx)
	return err != nil
}
