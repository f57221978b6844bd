package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/golang-jwt/jwt/v4"
	log "github.com/sirupsen/logrus"
)

/*
	context key types are used to avoid conflicts when sharing data via contexts
	visit https://vld.bg/articles/go-context-type/ for more info
*/
type contextKey string

const (
	KeyJwtSessionCookieName            = "jwt_session"
	KeyJWTSecret                       = "JWT_SECRET"
	KeyCtxUserCredClaims    contextKey = "UserCredClaims"
)

// SessionClaims is what the session cookie carries. Subject is the stable
// id issued by the identity provider; the role is never stored in the
// token, services look it up from the users table on every gated call.
type SessionClaims struct {
	Subject string `json:"sub"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	jwt.RegisteredClaims
}

// JWTMiddleware rejects requests without a valid session cookie and puts
// the parsed claims into the request context.
func JWTMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(KeyJwtSessionCookieName)
		if err != nil {
			http.Error(w, "authentication required", http.StatusUnauthorized)
			return
		}

		claims, err := ParseSessionToken(cookie.Value)
		if err != nil {
			log.Warnf("rejected session token, %v", err)
			http.Error(w, "invalid or expired session", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), KeyCtxUserCredClaims, claims)
		next(w, r.WithContext(ctx))
	}
}

func ParseSessionToken(tokenString string) (SessionClaims, error) {
	secret := os.Getenv(KeyJWTSecret)
	if secret == "" {
		return SessionClaims{}, errors.New("jwt secret is not configured")
	}

	var claims SessionClaims
	token, err := jwt.ParseWithClaims(
		tokenString,
		&claims,
		func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
			}
			return []byte(secret), nil
		},
	)
	if err != nil {
		return SessionClaims{}, err
	}
	if !token.Valid || claims.Subject == "" {
		return SessionClaims{}, errors.New("token is not valid")
	}
	return claims, nil
}
