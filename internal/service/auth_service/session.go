package auth_service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/codepair-io/codepair/internal/database"
	"github.com/codepair-io/codepair/internal/pair_errors"
	"github.com/codepair-io/codepair/internal/service"
	"github.com/codepair-io/codepair/internal/service/user_service"
	"github.com/codepair-io/codepair/middleware"
	"github.com/golang-jwt/jwt/v4"
	log "github.com/sirupsen/logrus"
)

const (
	// identity assertions are signed with a secret shared with the
	// identity provider integration
	KeyIdentitySecret = "IDENTITY_JWT_SECRET"

	sessionDuration      = 24 * time.Hour
	sessionDurationMonth = 30 * 24 * time.Hour
)

// identityClaims is the shape of the assertion issued by the identity
// provider: a stable subject plus profile fields.
type identityClaims struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Picture string `json:"picture"`
	jwt.RegisteredClaims
}

// CreateSession verifies the identity assertion, upserts the user row
// for its subject and issues a session token for the cookie.
func (a *AuthService) CreateSession(
	ctx context.Context,
	request SessionRequest,
) (response SessionResponse, token string, expiry time.Time, err error) {
	if err = service.ValidateInput(request); err != nil {
		return
	}

	identity, err := a.verifyIdentityToken(request.IdentityToken)
	if err != nil {
		return
	}

	// first contact creates the row as a candidate, the stored role is
	// never overwritten by a session exchange
	var image *string
	if identity.Picture != "" {
		image = &identity.Picture
	}
	dbUser, err := a.UserConfig.DB.UpsertUser(ctx, database.UpsertUserParams{
		Subject: identity.Subject,
		Name:    identity.Name,
		Email:   identity.Email,
		Image:   image,
		Role:    service.RoleCandidate,
	})
	if err != nil {
		err = pair_errors.HandleDBErrors(err, nil, "cannot upsert user on session exchange")
		return
	}

	duration := sessionDuration
	if request.RememberForMonth {
		duration = sessionDurationMonth
	}
	token, expiry, err = a.generateSessionToken(dbUser, duration)
	if err != nil {
		return
	}

	log.WithFields(log.Fields{
		"subject": dbUser.Subject,
		"role":    dbUser.Role,
	}).Info("session created")

	response = SessionResponse{
		User: user_service.FromDB(dbUser),
	}
	return
}

func (a *AuthService) verifyIdentityToken(tokenString string) (identityClaims, error) {
	secret := os.Getenv(KeyIdentitySecret)
	if secret == "" {
		err := fmt.Errorf(
			"%w, %s is not set",
			pair_errors.ErrConfiguration,
			KeyIdentitySecret,
		)
		log.Error(err)
		return identityClaims{}, err
	}

	var claims identityClaims
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
	if err != nil || !token.Valid || claims.Subject == "" {
		log.Warnf("rejected identity assertion, %v", err)
		return identityClaims{}, fmt.Errorf(
			"%w, identity assertion could not be verified",
			pair_errors.ErrUnauthorized,
		)
	}
	return claims, nil
}

func (a *AuthService) generateSessionToken(
	dbUser database.User,
	duration time.Duration,
) (string, time.Time, error) {
	secret := os.Getenv(middleware.KeyJWTSecret)
	if secret == "" {
		err := fmt.Errorf(
			"%w, %s is not set",
			pair_errors.ErrConfiguration,
			middleware.KeyJWTSecret,
		)
		log.Error(err)
		return "", time.Time{}, err
	}

	expiry := time.Now().Add(duration)
	claims := middleware.SessionClaims{
		Subject: dbUser.Subject,
		Name:    dbUser.Name,
		Email:   dbUser.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiry),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(secret))
	if err != nil {
		err = errors.Join(pair_errors.ErrInternal, err)
		log.Errorf("cannot sign session token, %v", err)
		return "", time.Time{}, err
	}
	return token, expiry, nil
}
