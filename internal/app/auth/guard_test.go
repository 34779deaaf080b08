package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeAdminDirectory struct {
	admins map[string]bool
	err    error
	calls  int
}

func (f *fakeAdminDirectory) Exists(ctx context.Context, userID string) (bool, error) {
	f.calls++
	if f.err != nil {
		return false, f.err
	}
	return f.admins[userID], nil
}

func TestGuardNoPrincipal(t *testing.T) {
	dir := &fakeAdminDirectory{}
	guard := NewGuard(dir)

	result := guard.Check(context.Background(), nil)

	assert.Equal(t, StateUnauthorized, result.State)
	assert.Equal(t, LoginRoute, result.RedirectTo)
	assert.False(t, result.ForceSignOut)
	assert.Zero(t, dir.calls, "no privilege lookup should run without a principal")
}

func TestGuardAdminPrincipal(t *testing.T) {
	dir := &fakeAdminDirectory{admins: map[string]bool{"u-1": true}}
	guard := NewGuard(dir)

	result := guard.Check(context.Background(), &Principal{UID: "u-1", Email: "admin@example.com"})

	assert.Equal(t, StateAuthorized, result.State)
	assert.Empty(t, result.RedirectTo)
	assert.False(t, result.ForceSignOut)
}

func TestGuardNonAdminPrincipalForcedOut(t *testing.T) {
	dir := &fakeAdminDirectory{admins: map[string]bool{}}
	guard := NewGuard(dir)

	result := guard.Check(context.Background(), &Principal{UID: "u-2", Email: "visitor@example.com"})

	assert.Equal(t, StateUnauthorized, result.State)
	assert.Equal(t, LoginRoute, result.RedirectTo)
	assert.True(t, result.ForceSignOut)
}

func TestGuardLookupFailureFailsClosed(t *testing.T) {
	dir := &fakeAdminDirectory{err: errors.New("directory unreachable")}
	guard := NewGuard(dir)

	result := guard.Check(context.Background(), &Principal{UID: "u-3", Email: "admin@example.com"})

	assert.Equal(t, StateUnauthorized, result.State)
	assert.Equal(t, LoginRoute, result.RedirectTo)
	assert.True(t, result.ForceSignOut)
	assert.Equal(t, 1, dir.calls, "a failed lookup is not retried")
}

func TestGuardChecksEveryVisit(t *testing.T) {
	dir := &fakeAdminDirectory{admins: map[string]bool{"u-1": true}}
	guard := NewGuard(dir)
	principal := &Principal{UID: "u-1", Email: "admin@example.com"}

	guard.Check(context.Background(), principal)
	dir.admins["u-1"] = false
	result := guard.Check(context.Background(), principal)

	assert.Equal(t, StateUnauthorized, result.State, "privilege is re-checked, not cached")
	assert.Equal(t, 2, dir.calls)
}

func TestGuardStateString(t *testing.T) {
	assert.Equal(t, "unknown", StateUnknown.String())
	assert.Equal(t, "checking", StateChecking.String())
	assert.Equal(t, "authorized", StateAuthorized.String())
	assert.Equal(t, "unauthorized", StateUnauthorized.String())
}
