// Package guard decides whether a view may render for the current session.
// Decide is pure; it expresses navigation intent without performing it.
package guard

import (
	"github.com/pharmadesk/pharmadesk/client/go-client/internal/models"
	"github.com/pharmadesk/pharmadesk/client/go-client/internal/session"
)

type Decision int

const (
	// DecisionWait: the session is still restoring; render a loading state,
	// never a premature redirect.
	DecisionWait Decision = iota
	DecisionAllow
	DecisionRedirectLogin
	DecisionRedirectUnauthorized
)

func (d Decision) String() string {
	switch d {
	case DecisionWait:
		return "wait"
	case DecisionAllow:
		return "allow"
	case DecisionRedirectLogin:
		return "redirect_login"
	case DecisionRedirectUnauthorized:
		return "redirect_unauthorized"
	}
	return "unknown"
}

// Decide maps (session, required roles) to a routing decision. An empty
// required set admits any authenticated user.
func Decide(snap session.Snapshot, required ...models.Role) Decision {
	switch snap.State {
	case session.StateUninitialized, session.StateRestoring:
		return DecisionWait
	case session.StateAnonymous:
		return DecisionRedirectLogin
	}
	if len(required) == 0 {
		return DecisionAllow
	}
	for _, r := range required {
		if snap.Session.User.Role == r {
			return DecisionAllow
		}
	}
	return DecisionRedirectUnauthorized
}
