package problem_service

import (
	"context"
	"fmt"

	"github.com/codepair-io/codepair/internal/llm"
	"github.com/codepair-io/codepair/internal/pair_errors"
	"github.com/codepair-io/codepair/internal/service"
	log "github.com/sirupsen/logrus"
)

// GenerateProblem runs the whole generation pipeline for one request:
// authorize, build the prompt, call the completion endpoint, validate
// the reply and persist the record. Nothing is written on any failure
// path, the insert happens strictly after validation.
func (p *ProblemService) GenerateProblem(
	ctx context.Context,
	request GenerateProblemRequest,
) (Problem, error) {
	// get the user details from claims
	claims, err := service.GetClaimsFromContext(ctx)
	if err != nil {
		return Problem{}, err
	}

	// authorize before any external call or write
	err = p.UserServiceConfig.AuthorizeUserRole(
		ctx,
		claims.Subject,
		service.RoleInterviewer,
		fmt.Sprintf(
			"user %s tried for interviewer access to generate a problem",
			claims.Subject,
		),
	)
	if err != nil {
		return Problem{}, err
	}

	// validate the request, topic and category are untrusted prompt input
	if err = service.ValidateInput(request); err != nil {
		return Problem{}, err
	}

	if p.Provider == nil {
		err = fmt.Errorf(
			"%w, no completion provider is configured",
			pair_errors.ErrConfiguration,
		)
		log.Error(err)
		return Problem{}, err
	}

	userPrompt, systemPrompt := buildGenerationPrompt(
		request.Difficulty,
		request.Topic,
		request.Category,
	)

	raw, err := p.Provider.Complete(ctx, llm.CompletionRequest{
		SystemPrompt: systemPrompt,
		UserPrompt:   userPrompt,
	})
	if err != nil {
		return Problem{}, err
	}

	generated, err := parseGeneratedProblem(raw)
	if err != nil {
		return Problem{}, err
	}

	insertParams, err := generatedToInsertParams(generated, request, claims.Subject, userPrompt)
	if err != nil {
		return Problem{}, err
	}

	dbProblem, err := p.DB.InsertProblem(ctx, insertParams)
	if err != nil {
		return Problem{}, pair_errors.HandleDBErrors(
			err,
			errMsgs,
			"cannot insert generated problem",
		)
	}

	problem, err := dbProblemToService(dbProblem)
	if err != nil {
		return Problem{}, err
	}

	log.WithFields(log.Fields{
		"problem_id": problem.ID,
		"difficulty": problem.Difficulty,
		"created_by": claims.Subject,
		"model":      p.Provider.ModelID(),
	}).Info("generated problem")

	return problem, nil
}
