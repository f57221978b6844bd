package interview_service

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

func (i *InterviewService) ListInterviews(ctx context.Context) ([]Interview, error) {
	if _, err := service.GetClaimsFromContext(ctx); err != nil {
		return nil, err
	}

	dbInterviews, err := i.DB.ListInterviews(ctx)
	if err != nil {
		log.Errorf("failed to list interviews, %v", err)
		return nil, errors.Join(pair_errors.ErrInternal, err)
	}

	interviews := make([]Interview, 0, len(dbInterviews))
	for _, dbInterview := range dbInterviews {
		interviews = append(interviews, dbInterviewToService(dbInterview))
	}
	return interviews, nil
}

// ListMyInterviews returns interviews where the caller is the candidate.
func (i *InterviewService) ListMyInterviews(ctx context.Context) ([]Interview, error) {
	claims, err := service.GetClaimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	dbInterviews, err := i.DB.ListInterviewsByCandidate(ctx, claims.Subject)
	if err != nil {
		log.Errorf("failed to list interviews of %s, %v", claims.Subject, err)
		return nil, errors.Join(pair_errors.ErrInternal, err)
	}

	interviews := make([]Interview, 0, len(dbInterviews))
	for _, dbInterview := range dbInterviews {
		interviews = append(interviews, dbInterviewToService(dbInterview))
	}
	return interviews, nil
}

func (i *InterviewService) GetInterviewByStreamCallId(
	ctx context.Context,
	streamCallId string,
) (Interview, error) {
	if _, err := service.GetClaimsFromContext(ctx); err != nil {
		return Interview{}, err
	}

	dbInterview, err := i.DB.GetInterviewByStreamCallId(ctx, streamCallId)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Interview{}, fmt.Errorf(
				"%w, no interview exist with call id %s",
				pair_errors.ErrNotFound,
				streamCallId,
			)
		}
		log.Errorf("failed to get interview by call id %s, %v", streamCallId, err)
		return Interview{}, errors.Join(pair_errors.ErrInternal, err)
	}
	return dbInterviewToService(dbInterview), nil
}

// AssignedProblem is a problem with its position inside an interview.
type AssignedProblem struct {
	ProblemID    uuid.UUID `json:"problem_id"`
	Title        string    `json:"title"`
	Difficulty   string    `json:"difficulty"`
	ProblemOrder int32     `json:"order"`
}

// ListInterviewProblems returns the problems linked to an interview in
// their assigned order.
func (i *InterviewService) ListInterviewProblems(
	ctx context.Context,
	interviewId uuid.UUID,
) ([]AssignedProblem, error) {
	if _, err := service.GetClaimsFromContext(ctx); err != nil {
		return nil, err
	}

	rows, err := i.DB.ListInterviewProblems(ctx, interviewId)
	if err != nil {
		log.Errorf("failed to list problems of interview %v, %v", interviewId, err)
		return nil, errors.Join(pair_errors.ErrInternal, err)
	}

	assigned := make([]AssignedProblem, 0, len(rows))
	for _, row := range rows {
		assigned = append(assigned, AssignedProblem{
			ProblemID:    row.Problem.ID,
			Title:        row.Problem.Title,
			Difficulty:   row.Problem.Difficulty,
			ProblemOrder: row.ProblemOrder,
		})
	}
	return assigned, nil
}
