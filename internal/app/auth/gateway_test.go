package auth

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devang/kalasangam/internal/app/models"
	"github.com/devang/kalasangam/internal/pkg/apperrors"
	pkgauth "github.com/devang/kalasangam/internal/pkg/auth"
)

type fakeUserDirectory struct {
	users map[string]*models.User // keyed by email
}

func (f *fakeUserDirectory) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if u, ok := f.users[email]; ok {
		return u, nil
	}
	return nil, apperrors.ErrUserNotFound
}

func (f *fakeUserDirectory) GetByID(ctx context.Context, id string) (*models.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

type fakeTokenStore struct {
	tokens map[string]string // token -> userID
}

func newFakeTokenStore() *fakeTokenStore {
	return &fakeTokenStore{tokens: map[string]string{}}
}

func (f *fakeTokenStore) Create(ctx context.Context, token, userID string, expiresAt time.Time) error {
	f.tokens[token] = userID
	return nil
}

func (f *fakeTokenStore) Get(ctx context.Context, token string) (string, error) {
	userID, ok := f.tokens[token]
	if !ok {
		return "", apperrors.ErrTokenNotFound
	}
	return userID, nil
}

func (f *fakeTokenStore) Revoke(ctx context.Context, token string) error {
	if _, ok := f.tokens[token]; !ok {
		return apperrors.ErrTokenNotFound
	}
	delete(f.tokens, token)
	return nil
}

func (f *fakeTokenStore) RevokeAllForUser(ctx context.Context, userID string) error {
	for token, uid := range f.tokens {
		if uid == userID {
			delete(f.tokens, token)
		}
	}
	return nil
}

func newTestGateway(t *testing.T) (*Gateway, *fakeUserDirectory, *fakeTokenStore) {
	t.Helper()

	hash, err := pkgauth.HashPassword("correct-horse")
	require.NoError(t, err)

	users := &fakeUserDirectory{users: map[string]*models.User{
		"admin@example.com": {ID: "u-1", Email: "admin@example.com", PasswordHash: hash},
	}}
	tokens := newFakeTokenStore()

	jwtService := pkgauth.NewJWTService(pkgauth.JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  time.Hour,
		RefreshTokenExp: 24 * time.Hour,
		TokenIssuer:     "test",
	})

	return NewGateway(users, tokens, jwtService, zerolog.Nop()), users, tokens
}

func TestSignInSuccess(t *testing.T) {
	gateway, _, tokens := newTestGateway(t)

	principal, pair, err := gateway.SignIn(context.Background(), "admin@example.com", "correct-horse")

	require.NoError(t, err)
	assert.Equal(t, "u-1", principal.UID)
	assert.Equal(t, "admin@example.com", principal.Email)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.Equal(t, "u-1", tokens.tokens[pair.RefreshToken], "refresh token is stored for revocation")
}

func TestSignInWrongPassword(t *testing.T) {
	gateway, _, _ := newTestGateway(t)

	_, _, err := gateway.SignIn(context.Background(), "admin@example.com", "wrong")

	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestSignInUnknownEmail(t *testing.T) {
	gateway, _, _ := newTestGateway(t)

	_, _, err := gateway.SignIn(context.Background(), "nobody@example.com", "whatever")

	// Unknown email and wrong password are indistinguishable to the caller.
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestRefreshRotatesToken(t *testing.T) {
	gateway, _, tokens := newTestGateway(t)

	_, pair, err := gateway.SignIn(context.Background(), "admin@example.com", "correct-horse")
	require.NoError(t, err)

	principal, newPair, err := gateway.Refresh(context.Background(), pair.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, "u-1", principal.UID)
	assert.NotEqual(t, pair.RefreshToken, newPair.RefreshToken)

	_, hasOld := tokens.tokens[pair.RefreshToken]
	assert.False(t, hasOld, "used refresh token is revoked")

	_, _, err = gateway.Refresh(context.Background(), pair.RefreshToken)
	assert.ErrorIs(t, err, apperrors.ErrTokenNotFound, "refresh tokens are single-use")
}

func TestSignOutIsIdempotent(t *testing.T) {
	gateway, _, _ := newTestGateway(t)

	_, pair, err := gateway.SignIn(context.Background(), "admin@example.com", "correct-horse")
	require.NoError(t, err)

	require.NoError(t, gateway.SignOut(context.Background(), pair.RefreshToken))
	assert.NoError(t, gateway.SignOut(context.Background(), pair.RefreshToken), "signing out twice succeeds")
}

func TestForceSignOutRevokesAllSessions(t *testing.T) {
	gateway, _, tokens := newTestGateway(t)

	_, pairA, err := gateway.SignIn(context.Background(), "admin@example.com", "correct-horse")
	require.NoError(t, err)
	_, pairB, err := gateway.SignIn(context.Background(), "admin@example.com", "correct-horse")
	require.NoError(t, err)

	require.NoError(t, gateway.ForceSignOut(context.Background(), "u-1"))

	_, hasA := tokens.tokens[pairA.RefreshToken]
	_, hasB := tokens.tokens[pairB.RefreshToken]
	assert.False(t, hasA)
	assert.False(t, hasB)
}

func TestOnAuthStateChangeImmediateAndOnTransitions(t *testing.T) {
	gateway, _, _ := newTestGateway(t)

	var observed []*Principal
	unsubscribe := gateway.OnAuthStateChange(func(p *Principal) {
		observed = append(observed, p)
	})

	// Immediate invocation with the current (nil) principal.
	require.Len(t, observed, 1)
	assert.Nil(t, observed[0])

	_, pair, err := gateway.SignIn(context.Background(), "admin@example.com", "correct-horse")
	require.NoError(t, err)
	require.Len(t, observed, 2)
	assert.Equal(t, "u-1", observed[1].UID)

	require.NoError(t, gateway.SignOut(context.Background(), pair.RefreshToken))
	require.Len(t, observed, 3)
	assert.Nil(t, observed[2])

	unsubscribe()
	_, _, err = gateway.SignIn(context.Background(), "admin@example.com", "correct-horse")
	require.NoError(t, err)
	assert.Len(t, observed, 3, "unsubscribed listeners receive nothing")
}
