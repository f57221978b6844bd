package interview_service

import (
	"context"
	"fmt"

	"github.com/codepair-io/codepair/internal/database"
	"github.com/codepair-io/codepair/internal/email"
	"github.com/codepair-io/codepair/internal/pair_errors"
	"github.com/codepair-io/codepair/internal/service"
	log "github.com/sirupsen/logrus"
)

// CreateInterview schedules an interview and links the given problems
// in order. Invitation mails go out in the background, a stopped mailer
// never fails the request.
func (i *InterviewService) CreateInterview(
	ctx context.Context,
	request CreateInterviewRequest,
) (Interview, error) {
	// get the user details from claims
	claims, err := service.GetClaimsFromContext(ctx)
	if err != nil {
		return Interview{}, err
	}

	// authorize (only interviewers can schedule)
	err = i.UserServiceConfig.AuthorizeUserRole(
		ctx,
		claims.Subject,
		service.RoleInterviewer,
		fmt.Sprintf(
			"user %s tried for interviewer access to schedule an interview",
			claims.Subject,
		),
	)
	if err != nil {
		return Interview{}, err
	}

	// validate
	if err = service.ValidateInput(request); err != nil {
		return Interview{}, err
	}

	// the interview row and its problem links land in one transaction,
	// a bad problem id leaves nothing behind
	dbInterview, err := i.DB.CreateInterviewWithProblems(
		ctx,
		database.InsertInterviewParams{
			Title:          request.Title,
			Description:    request.Description,
			StartTime:      request.StartTime,
			Status:         request.Status,
			StreamCallID:   request.StreamCallID,
			CandidateID:    request.CandidateID,
			InterviewerIds: request.InterviewerIds,
		},
		request.ProblemIds,
	)
	if err != nil {
		return Interview{}, pair_errors.HandleDBErrors(
			err,
			errMsgs,
			"cannot schedule interview",
		)
	}

	i.sendInvites(ctx, dbInterview)

	log.WithFields(log.Fields{
		"interview_id": dbInterview.ID,
		"candidate":    dbInterview.CandidateID,
		"created_by":   claims.Subject,
	}).Info("scheduled interview")

	return dbInterviewToService(dbInterview), nil
}

func (i *InterviewService) sendInvites(ctx context.Context, dbInterview database.Interview) {
	subjects := append([]string{dbInterview.CandidateID}, dbInterview.InterviewerIds...)
	users, err := i.DB.GetUsersBySubjects(ctx, subjects)
	if err != nil {
		log.Errorf("cannot fetch participant emails for interview %v, %v", dbInterview.ID, err)
		return
	}

	to := make([]string, 0, len(users))
	for _, user := range users {
		to = append(to, user.Email)
	}

	body := fmt.Sprintf(
		"You have been invited to the interview %q starting at %s.",
		dbInterview.Title,
		dbInterview.StartTime.Format("2006-01-02 15:04 MST"),
	)
	err = email.NewMail(
		ctx,
		"Interview scheduled: "+dbInterview.Title,
		body,
		email.KeyEmailBodyPlain,
		email.PurposeInterviewInvite,
		to...,
	)
	if err != nil {
		log.Warnf("invitation mails not sent for interview %v, %v", dbInterview.ID, err)
	}
}
