package identity

import (
	"context"
	"testing"
	"time"

	"github.com/FaisalHanif12/PrimeForm-sub002/internal/localstore"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, userID string) string {
	t.Helper()
	claims := tokenClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("server-side-secret"))
	require.NoError(t, err)
	return token
}

func TestManagerTokenLifecycle(t *testing.T) {
	ctx := context.Background()
	m := NewManager(localstore.NewMemoryStore())

	assert.True(t, m.IsGuest(ctx))
	_, err := m.CurrentUserID(ctx)
	assert.ErrorIs(t, err, ErrNotAuthenticated)

	require.NoError(t, m.SetToken(ctx, signedToken(t, "user-42")))
	assert.False(t, m.IsGuest(ctx))

	userID, err := m.CurrentUserID(ctx)
	require.NoError(t, err)
	assert.Equal(t, "user-42", userID)

	require.NoError(t, m.ClearToken(ctx))
	assert.True(t, m.IsGuest(ctx))
}

func TestManagerRejectsMalformedToken(t *testing.T) {
	ctx := context.Background()
	m := NewManager(localstore.NewMemoryStore())

	require.NoError(t, m.SetToken(ctx, "not.a.jwt"))
	_, err := m.CurrentUserID(ctx)
	assert.ErrorIs(t, err, ErrMalformedToken)
}

func TestManagerRejectsTokenWithoutUserID(t *testing.T) {
	ctx := context.Background()
	m := NewManager(localstore.NewMemoryStore())

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject: "no uid claim",
	}).SignedString([]byte("secret"))
	require.NoError(t, err)

	require.NoError(t, m.SetToken(ctx, token))
	_, err = m.CurrentUserID(ctx)
	assert.ErrorIs(t, err, ErrMalformedToken)
}
