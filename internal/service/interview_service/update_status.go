package interview_service

import (
	"context"
	"fmt"
	"time"

	"github.com/codepair-io/codepair/internal/database"
	"github.com/codepair-io/codepair/internal/pair_errors"
	"github.com/codepair-io/codepair/internal/service"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

type UpdateStatusRequest struct {
	ID     uuid.UUID `json:"id" validate:"required"`
	Status string    `json:"status" validate:"required,oneof=scheduled live completed cancelled"`
}

// UpdateStatus moves an interview to the given status. Transitions are
// caller driven, moving to completed sets the end time as a side
// effect.
func (i *InterviewService) UpdateStatus(
	ctx context.Context,
	request UpdateStatusRequest,
) (Interview, error) {
	claims, err := service.GetClaimsFromContext(ctx)
	if err != nil {
		return Interview{}, err
	}

	if err = service.ValidateInput(request); err != nil {
		return Interview{}, err
	}

	// only a participant may move an interview
	dbInterview, err := i.DB.GetInterviewById(ctx, request.ID)
	if err != nil {
		return Interview{}, pair_errors.HandleDBErrors(
			err,
			errMsgs,
			"cannot get interview for status update",
		)
	}
	if !isParticipant(dbInterview, claims.Subject) {
		log.Warnf(
			"user %s tried to update status of interview %v",
			claims.Subject,
			request.ID,
		)
		return Interview{}, fmt.Errorf(
			"%w, only participants can update an interview",
			pair_errors.ErrForbidden,
		)
	}

	endTime := dbInterview.EndTime
	if request.Status == StatusCompleted {
		now := time.Now()
		endTime = &now
	}

	updated, err := i.DB.UpdateInterviewStatus(ctx, database.UpdateInterviewStatusParams{
		ID:      request.ID,
		Status:  request.Status,
		EndTime: endTime,
	})
	if err != nil {
		return Interview{}, pair_errors.HandleDBErrors(
			err,
			errMsgs,
			"cannot update interview status",
		)
	}

	log.WithFields(log.Fields{
		"interview_id": request.ID,
		"status":       request.Status,
	}).Info("updated interview status")

	return dbInterviewToService(updated), nil
}

func isParticipant(dbInterview database.Interview, subject string) bool {
	if dbInterview.CandidateID == subject {
		return true
	}
	for _, interviewerId := range dbInterview.InterviewerIds {
		if interviewerId == subject {
			return true
		}
	}
	return false
}
