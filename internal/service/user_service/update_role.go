package user_service

import (
	"context"
	"fmt"

	"github.com/codepair-io/codepair/internal/pair_errors"
	"github.com/codepair-io/codepair/internal/service"
	log "github.com/sirupsen/logrus"
)

// UpdateMyRole switches the caller between candidate and interviewer.
// The cached role entry is dropped so gated calls see the change
// immediately.
func (u *UserService) UpdateMyRole(ctx context.Context, role string) (User, error) {
	claims, err := service.GetClaimsFromContext(ctx)
	if err != nil {
		return User{}, err
	}

	if role != service.RoleCandidate && role != service.RoleInterviewer {
		return User{}, fmt.Errorf(
			"%w, role must be %s or %s",
			pair_errors.ErrInvalidRequest,
			service.RoleCandidate,
			service.RoleInterviewer,
		)
	}

	dbUser, err := u.DB.UpdateUserRole(ctx, claims.Subject, role)
	if err != nil {
		return User{}, pair_errors.HandleDBErrors(
			err,
			nil,
			"cannot update user role",
		)
	}

	u.invalidateRole(claims.Subject)

	log.WithFields(log.Fields{
		"subject": claims.Subject,
		"role":    role,
	}).Info("updated user role")

	return FromDB(dbUser), nil
}
