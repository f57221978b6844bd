package user_service

import (
	"context"

	"github.com/codepair-io/codepair/internal/service"
)

func (u *UserService) GetMe(ctx context.Context) (User, error) {
	claims, err := service.GetClaimsFromContext(ctx)
	if err != nil {
		return User{}, err
	}

	dbUser, err := u.FetchUserBySubject(ctx, claims.Subject)
	if err != nil {
		return User{}, err
	}

	return FromDB(dbUser), nil
}
