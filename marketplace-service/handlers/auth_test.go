package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/depanneo/booking-platform/shared/models"
	"github.com/depanneo/booking-platform/shared/session"
	"github.com/depanneo/booking-platform/shared/status"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func TestAuthenticator_IssueAndVerify(t *testing.T) {
	auth := NewAuthenticator(testSecret)
	user := session.User{ID: models.GenerateUUID(), Name: "Inès", Role: status.RolePartner}

	token, err := auth.IssueToken(user, time.Hour)
	require.NoError(t, err)

	verified, err := auth.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, user, verified)
}

func TestAuthenticator_VerifyRejects(t *testing.T) {
	auth := NewAuthenticator(testSecret)
	user := session.User{ID: models.GenerateUUID(), Name: "Inès", Role: status.RoleClient}

	expired, err := auth.IssueToken(user, -time.Minute)
	require.NoError(t, err)

	foreign, err := NewAuthenticator("other-secret").IssueToken(user, time.Hour)
	require.NoError(t, err)

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{
		Role:             status.RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{Subject: user.ID.String()},
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	badRole, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		Role:             "guest",
		RegisteredClaims: jwt.RegisteredClaims{Subject: user.ID.String()},
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	badSubject, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		Role:             status.RoleClient,
		RegisteredClaims: jwt.RegisteredClaims{Subject: "42"},
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "garbage", token: "not-a-token"},
		{name: "expired", token: expired},
		{name: "signed with another secret", token: foreign},
		{name: "unsigned", token: unsigned},
		{name: "unknown role", token: badRole},
		{name: "subject is not an ID", token: badSubject},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := auth.Verify(tt.token)
			assert.Error(t, err)
		})
	}
}

func TestAuthenticator_Middleware(t *testing.T) {
	auth := NewAuthenticator(testSecret)
	user := session.User{ID: models.GenerateUUID(), Name: "Inès", Role: status.RoleClient}
	token, err := auth.IssueToken(user, time.Hour)
	require.NoError(t, err)

	var seen *session.Session
	handler := auth.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = session.FromContext(r.Context())
		assert.Equal(t, user, actorFrom(r))
		w.WriteHeader(http.StatusNoContent)
	}))

	tests := []struct {
		name     string
		header   string
		expected int
	}{
		{name: "valid token", header: "Bearer " + token, expected: http.StatusNoContent},
		{name: "lowercase scheme", header: "bearer " + token, expected: http.StatusNoContent},
		{name: "missing header", expected: http.StatusUnauthorized},
		{name: "invalid token", header: "Bearer nope", expected: http.StatusUnauthorized},
		{name: "basic auth", header: "Basic dXNlcjpwYXNz", expected: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.expected, rec.Code)
		})
	}

	// The session does not outlive its request
	require.NotNil(t, seen)
	_, err = seen.Token()
	assert.Error(t, err)
}
