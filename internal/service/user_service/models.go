package user_service

import (
	"context"
	"time"

	"github.com/codepair-io/codepair/internal/database"
	lru "github.com/hashicorp/golang-lru/v2"
)

const roleCacheSize = 1024

// UserStore is the slice of the query layer this service needs.
// *database.Queries satisfies it.
type UserStore interface {
	UpsertUser(ctx context.Context, arg database.UpsertUserParams) (database.User, error)
	GetUserBySubject(ctx context.Context, subject string) (database.User, error)
	UpdateUserRole(ctx context.Context, subject string, role string) (database.User, error)
	GetUsersBySubjects(ctx context.Context, subjects []string) ([]database.User, error)
}

type UserService struct {
	DB UserStore

	// subject -> role. Role reads gate every mutating call, an LRU keeps
	// the hot lookups off the database. Invalidated on role change.
	roleCache *lru.Cache[string, string]
}

func (u *UserService) InitializeUserService() error {
	cache, err := lru.New[string, string](roleCacheSize)
	if err != nil {
		return err
	}
	u.roleCache = cache
	return nil
}

type User struct {
	Subject   string    `json:"subject"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Image     *string   `json:"image,omitempty"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

func FromDB(dbUser database.User) User {
	return User{
		Subject:   dbUser.Subject,
		Name:      dbUser.Name,
		Email:     dbUser.Email,
		Image:     dbUser.Image,
		Role:      dbUser.Role,
		CreatedAt: dbUser.CreatedAt,
	}
}
