package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// tokenExpired reports whether tok is a JWT whose exp claim is already past.
// The bearer token is treated as opaque everywhere else; this is a
// payload-only peek (no signature verification) so a restart does not
// restore a token the backend would reject on first use. Opaque or
// malformed tokens fall through to the issuedAt rule and return false.
func tokenExpired(tok string, now time.Time) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tok, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return now.After(exp.Time)
}
