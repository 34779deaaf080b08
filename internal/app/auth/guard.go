package auth

import (
	"context"

	"github.com/devang/kalasangam/internal/pkg/logger"
)

// GuardState is a session-guard state. Every evaluation starts from
// StateUnknown; Authorized and Unauthorized are terminal.
type GuardState int

const (
	StateUnknown GuardState = iota
	StateChecking
	StateAuthorized
	StateUnauthorized
)

// String implements fmt.Stringer for log output.
func (s GuardState) String() string {
	switch s {
	case StateUnknown:
		return "unknown"
	case StateChecking:
		return "checking"
	case StateAuthorized:
		return "authorized"
	case StateUnauthorized:
		return "unauthorized"
	default:
		return "invalid"
	}
}

// LoginRoute is the client route unauthorized visitors are sent to.
const LoginRoute = "/admin/login"

// AdminDirectory answers whether a uid carries administrator privilege.
type AdminDirectory interface {
	Exists(ctx context.Context, userID string) (bool, error)
}

// GuardResult is the outcome of one guard evaluation.
type GuardResult struct {
	State        GuardState
	RedirectTo   string // Set when the visitor must be sent to the login page
	ForceSignOut bool   // Set when the principal's sessions must be revoked
}

// Guard decides, per evaluation, whether the current visitor is an authorized
// administrator. There is no caching across evaluations; each one re-runs the
// privilege lookup. Any lookup failure counts as "not an admin" and is not
// retried.
type Guard struct {
	admins AdminDirectory
}

// NewGuard creates a session guard over the given admin directory.
func NewGuard(admins AdminDirectory) *Guard {
	return &Guard{admins: admins}
}

// Check runs the state machine for one visit.
//
//	no principal                  -> Unauthorized, redirect to login
//	principal, admin row found    -> Authorized
//	principal, no row or failure  -> Unauthorized, forced sign-out, redirect
func (g *Guard) Check(ctx context.Context, principal *Principal) GuardResult {
	state := StateUnknown

	if principal == nil {
		state = StateUnauthorized
		return GuardResult{State: state, RedirectTo: LoginRoute}
	}

	state = StateChecking
	isAdmin, err := g.admins.Exists(ctx, principal.UID)
	if err != nil {
		// Fail closed: an unreachable directory denies access.
		logger.Error().Err(err).Str("uid", principal.UID).Str("state", state.String()).Msg("Admin privilege lookup failed")
		return GuardResult{State: StateUnauthorized, RedirectTo: LoginRoute, ForceSignOut: true}
	}

	if !isAdmin {
		return GuardResult{State: StateUnauthorized, RedirectTo: LoginRoute, ForceSignOut: true}
	}

	return GuardResult{State: StateAuthorized}
}
