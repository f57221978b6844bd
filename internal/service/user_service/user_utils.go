package user_service

import (
	"context"
	"errors"
	"fmt"

	"github.com/codepair-io/codepair/internal/database"
	"github.com/codepair-io/codepair/internal/pair_errors"
	"github.com/jackc/pgx/v5"
	log "github.com/sirupsen/logrus"
)

func (u *UserService) FetchUserBySubject(
	ctx context.Context,
	subject string,
) (user database.User, err error) {
	if subject == "" {
		err = fmt.Errorf("%w, identity subject must be provided", pair_errors.ErrInvalidRequest)
		return
	}
	user, dbErr := u.DB.GetUserBySubject(ctx, subject)
	if dbErr != nil {
		if errors.Is(dbErr, pgx.ErrNoRows) {
			err = fmt.Errorf("%w, no user exist with that subject", pair_errors.ErrNotFound)
			return
		}
		log.Errorf("failed to get user by subject. %v", dbErr)
		err = errors.Join(pair_errors.ErrInternal, dbErr)
		return
	}
	return user, nil
}

// FetchUserRole resolves the stored role for a subject, serving repeat
// lookups from the LRU.
func (u *UserService) FetchUserRole(ctx context.Context, subject string) (string, error) {
	if role, ok := u.roleCache.Get(subject); ok {
		return role, nil
	}
	user, err := u.FetchUserBySubject(ctx, subject)
	if err != nil {
		return "", err
	}
	u.roleCache.Add(subject, user.Role)
	return user.Role, nil
}

// AuthorizeUserRole fails with ErrForbidden unless the subject's stored
// role matches. It must run before any external call or persistence
// write of the gated operation.
func (u *UserService) AuthorizeUserRole(
	ctx context.Context,
	subject string,
	role string,
	warnMessage string,
) error {
	storedRole, err := u.FetchUserRole(ctx, subject)
	if err != nil {
		return err
	}
	if storedRole == role {
		return nil
	}
	if warnMessage != "" {
		log.Warn(warnMessage)
	}
	return pair_errors.ErrForbidden
}

func (u *UserService) invalidateRole(subject string) {
	u.roleCache.Remove(subject)
}
