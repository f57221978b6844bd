package api

import (
	"github.com/codepair-io/codepair/internal/service/auth_service"
	"github.com/codepair-io/codepair/internal/service/interview_service"
	"github.com/codepair-io/codepair/internal/service/problem_service"
	"github.com/codepair-io/codepair/internal/service/user_service"
)

type Api struct {
	AuthServiceConfig      *auth_service.AuthService
	UserServiceConfig      *user_service.UserService
	ProblemServiceConfig   *problem_service.ProblemService
	InterviewServiceConfig *interview_service.InterviewService
}
