package session

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func signedJWT(t *testing.T, exp time.Time) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"exp": exp.Unix()})
	s, err := tok.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return s
}

func TestTokenExpired(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	require.True(t, tokenExpired(signedJWT(t, now.Add(-time.Minute)), now))
	require.False(t, tokenExpired(signedJWT(t, now.Add(time.Hour)), now))

	// opaque and malformed tokens defer to the issuedAt rule
	require.False(t, tokenExpired("opaque-token", now))
	require.False(t, tokenExpired("", now))
}

func TestRestore_JWTPastExpIsPurged(t *testing.T) {
	fx := newFixture(t)
	fx.seedStored(t, fx.clock().Add(-time.Hour))
	fx.store.Put("token", signedJWT(t, fx.clock().Add(-time.Minute)))

	fx.mgr.Restore(context.Background())

	require.Equal(t, StateAnonymous, fx.mgr.Snapshot().State)
	require.Equal(t, 0, fx.store.Len())
}
