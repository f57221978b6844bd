package problem_service

import (
	"context"
	"errors"
	"fmt"

	"github.com/codepair-io/codepair/internal/pair_errors"
	"github.com/codepair-io/codepair/internal/service"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	log "github.com/sirupsen/logrus"
)

func (p *ProblemService) GetProblemById(
	ctx context.Context,
	problemId uuid.UUID,
) (Problem, error) {
	if _, err := service.GetClaimsFromContext(ctx); err != nil {
		return Problem{}, err
	}

	dbProblem, err := p.DB.GetProblemById(ctx, problemId)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Problem{}, fmt.Errorf(
				"%w, no problem exist with id %v",
				pair_errors.ErrNotFound,
				problemId,
			)
		}
		log.Errorf("failed to get problem %v, %v", problemId, err)
		return Problem{}, errors.Join(pair_errors.ErrInternal, err)
	}

	return dbProblemToService(dbProblem)
}

// ListProblems returns every problem, newest first.
func (p *ProblemService) ListProblems(ctx context.Context) ([]Problem, error) {
	if _, err := service.GetClaimsFromContext(ctx); err != nil {
		return nil, err
	}

	dbProblems, err := p.DB.ListProblems(ctx)
	if err != nil {
		log.Errorf("failed to list problems, %v", err)
		return nil, errors.Join(pair_errors.ErrInternal, err)
	}
	return dbProblemsToService(dbProblems)
}

// ListMyProblems returns the caller's own problems, newest first.
func (p *ProblemService) ListMyProblems(ctx context.Context) ([]Problem, error) {
	claims, err := service.GetClaimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	dbProblems, err := p.DB.ListProblemsByCreator(ctx, claims.Subject)
	if err != nil {
		log.Errorf("failed to list problems of %s, %v", claims.Subject, err)
		return nil, errors.Join(pair_errors.ErrInternal, err)
	}
	return dbProblemsToService(dbProblems)
}

func (p *ProblemService) ListProblemsByDifficulty(
	ctx context.Context,
	difficulty string,
) ([]Problem, error) {
	if _, err := service.GetClaimsFromContext(ctx); err != nil {
		return nil, err
	}

	switch difficulty {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
	default:
		return nil, fmt.Errorf(
			"%w, difficulty must be one of easy, medium, hard",
			pair_errors.ErrInvalidRequest,
		)
	}

	dbProblems, err := p.DB.ListProblemsByDifficulty(ctx, difficulty)
	if err != nil {
		log.Errorf("failed to list %s problems, %v", difficulty, err)
		return nil, errors.Join(pair_errors.ErrInternal, err)
	}
	return dbProblemsToService(dbProblems)
}
