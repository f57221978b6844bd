package problem_service

import (
	"context"
	"fmt"

	"github.com/codepair-io/codepair/internal/database"
	"github.com/codepair-io/codepair/internal/pair_errors"
	"github.com/codepair-io/codepair/internal/service"
	log "github.com/sirupsen/logrus"
)

// AddProblemRequest is the direct creation path for hand written
// problems. Starter code must carry all three language keys, stubs may
// be empty strings.
type AddProblemRequest struct {
	Title       string      `json:"title" validate:"required,max=200"`
	Description string      `json:"description" validate:"required"`
	Difficulty  string      `json:"difficulty" validate:"required,oneof=easy medium hard"`
	Category    *string     `json:"category,omitempty"`
	Tags        []string    `json:"tags,omitempty"`
	Examples    []Example   `json:"examples" validate:"required,min=1,dive"`
	Constraints []string    `json:"constraints"`
	StarterCode StarterCode `json:"starter_code"`
	Hints       []string    `json:"hints"`
}

func (p *ProblemService) AddProblem(
	ctx context.Context,
	request AddProblemRequest,
) (Problem, error) {
	// get the user details from claims
	claims, err := service.GetClaimsFromContext(ctx)
	if err != nil {
		return Problem{}, err
	}

	// authorize (only interviewers can create problems)
	err = p.UserServiceConfig.AuthorizeUserRole(
		ctx,
		claims.Subject,
		service.RoleInterviewer,
		fmt.Sprintf(
			"user %s tried for interviewer access to create a problem",
			claims.Subject,
		),
	)
	if err != nil {
		return Problem{}, err
	}

	// validate the problem
	if err = service.ValidateInput(request); err != nil {
		return Problem{}, err
	}

	examplesJSON, starterCodeJSON, err := marshalProblemDocs(request.Examples, request.StarterCode)
	if err != nil {
		return Problem{}, err
	}

	constraints := request.Constraints
	if constraints == nil {
		constraints = []string{}
	}
	hints := request.Hints
	if hints == nil {
		hints = []string{}
	}

	// custom problems never carry a generation prompt
	dbProblem, err := p.DB.InsertProblem(ctx, database.InsertProblemParams{
		Title:         request.Title,
		Description:   request.Description,
		Difficulty:    request.Difficulty,
		Category:      request.Category,
		Tags:          request.Tags,
		Examples:      examplesJSON,
		Constraints:   constraints,
		StarterCode:   starterCodeJSON,
		Hints:         hints,
		CreatedBy:     claims.Subject,
		IsAiGenerated: false,
		AiPrompt:      nil,
	})
	if err != nil {
		return Problem{}, pair_errors.HandleDBErrors(
			err,
			errMsgs,
			"cannot insert custom problem",
		)
	}

	problem, err := dbProblemToService(dbProblem)
	if err != nil {
		return Problem{}, err
	}

	log.WithFields(log.Fields{
		"problem_id": problem.ID,
		"created_by": claims.Subject,
	}).Info("created custom problem")

	return problem, nil
}
