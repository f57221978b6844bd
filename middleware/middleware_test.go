package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signSessionToken(t *testing.T, secret string, claims SessionClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func freshClaims(subject string) SessionClaims {
	return SessionClaims{
		Subject: subject,
		Name:    "Test User",
		Email:   "test@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
}

func TestJWTMiddlewarePutsClaimsInContext(t *testing.T) {
	t.Setenv(KeyJWTSecret, "test-secret")

	var got SessionClaims
	handler := JWTMiddleware(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := r.Context().Value(KeyCtxUserCredClaims).(SessionClaims)
		require.True(t, ok)
		got = claims
		w.WriteHeader(http.StatusOK)
	})

	request := httptest.NewRequest(http.MethodGet, "/me", nil)
	request.AddCookie(&http.Cookie{
		Name:  KeyJwtSessionCookieName,
		Value: signSessionToken(t, "test-secret", freshClaims("subject-1")),
	})
	recorder := httptest.NewRecorder()

	handler(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "subject-1", got.Subject)
	assert.Equal(t, "test@example.com", got.Email)
}

func TestJWTMiddlewareRejections(t *testing.T) {
	t.Setenv(KeyJWTSecret, "test-secret")

	expired := freshClaims("subject-1")
	expired.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Hour))

	noSubject := freshClaims("")

	tests := []struct {
		name   string
		cookie *http.Cookie
	}{
		{
			name:   "no session cookie",
			cookie: nil,
		},
		{
			name: "wrong signing secret",
			cookie: &http.Cookie{
				Name:  KeyJwtSessionCookieName,
				Value: signSessionToken(t, "other-secret", freshClaims("subject-1")),
			},
		},
		{
			name: "expired token",
			cookie: &http.Cookie{
				Name:  KeyJwtSessionCookieName,
				Value: signSessionToken(t, "test-secret", expired),
			},
		},
		{
			name: "token without subject",
			cookie: &http.Cookie{
				Name:  KeyJwtSessionCookieName,
				Value: signSessionToken(t, "test-secret", noSubject),
			},
		},
		{
			name:   "garbage cookie value",
			cookie: &http.Cookie{Name: KeyJwtSessionCookieName, Value: "not-a-token"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			handler := JWTMiddleware(func(w http.ResponseWriter, r *http.Request) {
				called = true
			})

			request := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.cookie != nil {
				request.AddCookie(tt.cookie)
			}
			recorder := httptest.NewRecorder()

			handler(recorder, request)

			assert.Equal(t, http.StatusUnauthorized, recorder.Code)
			assert.False(t, called)
		})
	}
}

func TestParseSessionTokenWithoutSecret(t *testing.T) {
	t.Setenv(KeyJWTSecret, "")

	_, err := ParseSessionToken("anything")
	assert.Error(t, err)
}
