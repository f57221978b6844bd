package interview_service

import (
	"context"
	"errors"
	"fmt"

	"github.com/codepair-io/codepair/internal/database"
	"github.com/codepair-io/codepair/internal/pair_errors"
	"github.com/codepair-io/codepair/internal/service"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// AddComment records an interviewer's rating and notes on an interview.
func (i *InterviewService) AddComment(
	ctx context.Context,
	request AddCommentRequest,
) (Comment, error) {
	claims, err := service.GetClaimsFromContext(ctx)
	if err != nil {
		return Comment{}, err
	}

	err = i.UserServiceConfig.AuthorizeUserRole(
		ctx,
		claims.Subject,
		service.RoleInterviewer,
		fmt.Sprintf(
			"user %s tried for interviewer access to comment on interview %v",
			claims.Subject,
			request.InterviewID,
		),
	)
	if err != nil {
		return Comment{}, err
	}

	if err = service.ValidateInput(request); err != nil {
		return Comment{}, err
	}

	dbComment, err := i.DB.InsertComment(ctx, database.InsertCommentParams{
		Content:       request.Content,
		Rating:        request.Rating,
		InterviewerID: claims.Subject,
		InterviewID:   request.InterviewID,
	})
	if err != nil {
		return Comment{}, pair_errors.HandleDBErrors(
			err,
			errMsgs,
			"cannot insert comment",
		)
	}

	log.WithFields(log.Fields{
		"interview_id": request.InterviewID,
		"interviewer":  claims.Subject,
	}).Info("added interview comment")

	return dbCommentToService(dbComment), nil
}

// ListComments returns an interview's comments, newest first.
func (i *InterviewService) ListComments(
	ctx context.Context,
	interviewId uuid.UUID,
) ([]Comment, error) {
	if _, err := service.GetClaimsFromContext(ctx); err != nil {
		return nil, err
	}

	dbComments, err := i.DB.ListCommentsByInterview(ctx, interviewId)
	if err != nil {
		log.Errorf("failed to list comments of interview %v, %v", interviewId, err)
		return nil, errors.Join(pair_errors.ErrInternal, err)
	}

	comments := make([]Comment, 0, len(dbComments))
	for _, dbComment := range dbComments {
		comments = append(comments, dbCommentToService(dbComment))
	}
	return comments, nil
}
