package apierr

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFromResponseClassification(t *testing.T) {
	cases := []struct {
		name   string
		status int
		code   string
		want   Kind
	}{
		{"plain 401", http.StatusUnauthorized, "", KindAuth},
		{"token signature on 403", http.StatusForbidden, "Invalid token signature", KindAuth},
		{"token expired on 400", http.StatusBadRequest, "Token expired", KindAuth},
		{"unsupported token", http.StatusUnauthorized, "Unsupported token", KindAuth},
		{"not found", http.StatusNotFound, "", KindNotFound},
		{"conflict", http.StatusConflict, "", KindConflict},
		{"internal", http.StatusInternalServerError, "", KindServer},
		{"bad gateway", http.StatusBadGateway, "", KindServer},
		{"bad request", http.StatusBadRequest, "", KindValidation},
		{"unprocessable", http.StatusUnprocessableEntity, "", KindValidation},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := FromResponse(tc.status, tc.code, "")
			require.Equal(t, tc.want, e.Kind)
		})
	}
}

func TestTransportIsConnectivityNotAuth(t *testing.T) {
	e := FromTransport(context.DeadlineExceeded)
	require.Equal(t, KindConnectivity, e.Kind)
	require.True(t, IsConnectivity(e))
	require.False(t, IsAuth(e))
	require.True(t, IsTransport(fmt.Errorf("do: %w", context.DeadlineExceeded)))
	require.False(t, IsTransport(errors.New("plain")))
}

func TestUserMessagePrefersBackendText(t *testing.T) {
	e := FromResponse(http.StatusUnauthorized, "Invalid token", "Signature mismatch, please login again")
	require.Equal(t, "Signature mismatch, please login again", e.UserMessage())

	e = FromResponse(http.StatusUnauthorized, "Token expired", "")
	require.Equal(t, "Your session has expired. Please login again.", e.UserMessage())

	e = FromResponse(http.StatusNotFound, "", "")
	require.Equal(t, "The requested resource was not found.", e.UserMessage())

	require.Equal(t, "An unexpected error occurred. Please try again.", Message(errors.New("nope")))
}
