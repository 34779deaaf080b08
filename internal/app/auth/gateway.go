package auth

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/devang/kalasangam/internal/app/models"
	"github.com/devang/kalasangam/internal/pkg/apperrors"
	pkgauth "github.com/devang/kalasangam/internal/pkg/auth"
)

// Principal is an authenticated identity: opaque uid plus email. It says
// nothing about authorization; that is the session guard's job.
type Principal struct {
	UID   string
	Email string
}

// TokenPair bundles the issued tokens with their lifetimes in seconds.
type TokenPair struct {
	AccessToken      string
	RefreshToken     string
	ExpiresIn        int
	RefreshExpiresIn int
}

// UserDirectory is the slice of the user store the gateway needs.
type UserDirectory interface {
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
}

// TokenStore tracks refresh tokens for revocation.
type TokenStore interface {
	Create(ctx context.Context, token, userID string, expiresAt time.Time) error
	Get(ctx context.Context, token string) (string, error)
	Revoke(ctx context.Context, token string) error
	RevokeAllForUser(ctx context.Context, userID string) error
}

// Listener receives the current principal, or nil when signed out.
type Listener func(*Principal)

// Gateway wraps sign-in/sign-out against the identity store and fans
// principal-changed notifications out to subscribers. New subscribers are
// called once immediately with the current principal, then again on every
// sign-in or sign-out.
type Gateway struct {
	users  UserDirectory
	tokens TokenStore
	jwt    *pkgauth.JWTService
	logger zerolog.Logger

	mu          sync.Mutex
	current     *Principal
	subscribers map[int]Listener
	nextSubID   int
}

// NewGateway creates a Gateway.
func NewGateway(users UserDirectory, tokens TokenStore, jwt *pkgauth.JWTService, logger zerolog.Logger) *Gateway {
	return &Gateway{
		users:       users,
		tokens:      tokens,
		jwt:         jwt,
		logger:      logger,
		subscribers: make(map[int]Listener),
	}
}

// SignIn verifies credentials and issues a token pair. A rejected email or
// password surfaces as ErrInvalidCredentials without distinguishing which.
func (g *Gateway) SignIn(ctx context.Context, email, password string) (*Principal, *TokenPair, error) {
	user, err := g.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, nil, apperrors.ErrInvalidCredentials
		}
		g.logger.Error().Err(err).Msg("Identity lookup failed during sign-in")
		return nil, nil, err
	}

	if !pkgauth.CheckPassword(user.PasswordHash, password) {
		return nil, nil, apperrors.ErrInvalidCredentials
	}

	accessToken, refreshToken, expiresIn, refreshExpiresIn, err := g.jwt.GenerateTokenPair(user.ID, user.Email)
	if err != nil {
		return nil, nil, err
	}

	if err := g.tokens.Create(ctx, refreshToken, user.ID, g.jwt.GetRefreshTokenExpiry()); err != nil {
		return nil, nil, err
	}

	principal := &Principal{UID: user.ID, Email: user.Email}
	g.setCurrent(principal)
	g.logger.Info().Str("uid", principal.UID).Msg("Principal signed in")

	return principal, &TokenPair{
		AccessToken:      accessToken,
		RefreshToken:     refreshToken,
		ExpiresIn:        expiresIn,
		RefreshExpiresIn: refreshExpiresIn,
	}, nil
}

// Refresh exchanges a valid refresh token for a new pair. The old token is
// revoked so each refresh token is single-use.
func (g *Gateway) Refresh(ctx context.Context, refreshToken string) (*Principal, *TokenPair, error) {
	userID, err := g.tokens.Get(ctx, refreshToken)
	if err != nil {
		return nil, nil, err
	}

	user, err := g.users.GetByID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	if err := g.tokens.Revoke(ctx, refreshToken); err != nil {
		return nil, nil, err
	}

	accessToken, newRefreshToken, expiresIn, refreshExpiresIn, err := g.jwt.GenerateTokenPair(user.ID, user.Email)
	if err != nil {
		return nil, nil, err
	}

	if err := g.tokens.Create(ctx, newRefreshToken, user.ID, g.jwt.GetRefreshTokenExpiry()); err != nil {
		return nil, nil, err
	}

	principal := &Principal{UID: user.ID, Email: user.Email}
	return principal, &TokenPair{
		AccessToken:      accessToken,
		RefreshToken:     newRefreshToken,
		ExpiresIn:        expiresIn,
		RefreshExpiresIn: refreshExpiresIn,
	}, nil
}

// SignOut revokes the session's refresh token and clears the current principal.
func (g *Gateway) SignOut(ctx context.Context, refreshToken string) error {
	if err := g.tokens.Revoke(ctx, refreshToken); err != nil && !errors.Is(err, apperrors.ErrTokenNotFound) {
		return err
	}

	g.setCurrent(nil)
	g.logger.Info().Msg("Principal signed out")
	return nil
}

// ForceSignOut revokes every session of a user. The session guard calls this
// when an authenticated principal turns out not to be an administrator.
func (g *Gateway) ForceSignOut(ctx context.Context, uid string) error {
	if err := g.tokens.RevokeAllForUser(ctx, uid); err != nil {
		g.logger.Error().Err(err).Str("uid", uid).Msg("Failed to revoke sessions during forced sign-out")
		return err
	}

	g.setCurrent(nil)
	g.logger.Warn().Str("uid", uid).Msg("Principal forcibly signed out")
	return nil
}

// OnAuthStateChange registers a listener. It is invoked once immediately with
// the current principal (or nil) and again after every sign-in/out. The
// returned func unsubscribes.
func (g *Gateway) OnAuthStateChange(fn Listener) func() {
	g.mu.Lock()
	id := g.nextSubID
	g.nextSubID++
	g.subscribers[id] = fn
	current := g.current
	g.mu.Unlock()

	fn(current)

	return func() {
		g.mu.Lock()
		delete(g.subscribers, id)
		g.mu.Unlock()
	}
}

func (g *Gateway) setCurrent(p *Principal) {
	g.mu.Lock()
	g.current = p
	listeners := make([]Listener, 0, len(g.subscribers))
	for _, fn := range g.subscribers {
		listeners = append(listeners, fn)
	}
	g.mu.Unlock()

	for _, fn := range listeners {
		fn(p)
	}
}
