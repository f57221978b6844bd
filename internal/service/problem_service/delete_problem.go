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

// DeleteProblem removes a problem. Only the creator may delete, the
// record is untouched on every failure path.
func (p *ProblemService) DeleteProblem(ctx context.Context, problemId uuid.UUID) error {
	// get claims
	claims, err := service.GetClaimsFromContext(ctx)
	if err != nil {
		return err
	}

	// get the problem
	dbProblem, err := p.DB.GetProblemById(ctx, problemId)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf(
				"%w, no problem exist with id %v",
				pair_errors.ErrNotFound,
				problemId,
			)
		}
		log.Errorf("failed to get problem %v for deletion, %v", problemId, err)
		return errors.Join(pair_errors.ErrInternal, err)
	}

	// ownership check
	if dbProblem.CreatedBy != claims.Subject {
		log.Warnf(
			"user %s tried to delete problem %v owned by %s",
			claims.Subject,
			problemId,
			dbProblem.CreatedBy,
		)
		return fmt.Errorf(
			"%w, only the creator can delete a problem",
			pair_errors.ErrForbidden,
		)
	}

	rowsAffected, err := p.DB.DeleteProblem(ctx, problemId)
	if err != nil {
		return pair_errors.HandleDBErrors(
			err,
			errMsgs,
			"problem cannot be deleted",
		)
	}
	if rowsAffected == 0 {
		return pair_errors.ErrNotFound
	}

	log.WithFields(log.Fields{
		"problem_id": problemId,
		"deleted_by": claims.Subject,
	}).Info("deleted problem")

	return nil
}
