package auth_service

import (
	"github.com/codepair-io/codepair/internal/service/user_service"
)

type AuthService struct {
	UserConfig *user_service.UserService
}

// SessionRequest carries the token minted by the external identity
// provider. The backend never sees credentials, only the signed
// assertion.
type SessionRequest struct {
	IdentityToken    string `json:"identity_token" validate:"required"`
	RememberForMonth bool   `json:"remember_for_month"`
}

type SessionResponse struct {
	User user_service.User `json:"user"`
}
