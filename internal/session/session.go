// Package session owns the client's authenticated identity: the in-memory
// session, its persisted copy, and every transition between signed-in and
// signed-out. All other packages consume it through Snapshot/Token and the
// login/logout/invalidate operations.
package session

import (
	"context"
	"errors"
	"time"

	"github.com/pharmadesk/pharmadesk/client/go-client/internal/models"
)

// State is the manager's lifecycle position. Restore moves Uninitialized
// through Restoring into Authenticated or Anonymous; everything afterwards
// only toggles between the last two.
type State int

const (
	StateUninitialized State = iota
	StateRestoring
	StateAuthenticated
	StateAnonymous
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateRestoring:
		return "restoring"
	case StateAuthenticated:
		return "authenticated"
	case StateAnonymous:
		return "anonymous"
	}
	return "unknown"
}

// Session is the credential plus the identity it proves. Token and User are
// always both set or both zero; there is no partial session.
type Session struct {
	Token    string
	User     models.User
	IssuedAt time.Time
}

// Snapshot is a point-in-time copy of the manager's state for guards and views.
type Snapshot struct {
	State   State
	Session Session
}

// AuthClient is the external authentication collaborator.
type AuthClient interface {
	Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error)
}

// Navigator receives navigation intent when the session is invalidated. It
// decides for itself whether the login view is already showing.
type Navigator interface {
	ToLogin()
}

// NavigatorFunc adapts a function to the Navigator interface.
type NavigatorFunc func()

func (f NavigatorFunc) ToLogin() { f() }

var (
	// ErrInvalidLoginResponse means the backend reply was missing a required
	// field; indistinguishable from bad credentials from the client's side.
	ErrInvalidLoginResponse = errors.New("invalid login response from server")

	// ErrLoginSuperseded means a logout or invalidation was observed while
	// the login call was in flight; the stale success is discarded.
	ErrLoginSuperseded = errors.New("login superseded by logout")

	// ErrNoAuthClient means the manager was asked to log in before BindAuth.
	ErrNoAuthClient = errors.New("no auth client bound")
)
