package interview_service

import (
	"context"
	"time"

	"github.com/codepair-io/codepair/internal/database"
	"github.com/codepair-io/codepair/internal/pair_errors"
	"github.com/codepair-io/codepair/internal/service/user_service"
	"github.com/google/uuid"
)

const (
	StatusScheduled = "scheduled"
	StatusLive      = "live"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// InterviewStore is the slice of the query layer this service needs.
// *database.Queries satisfies it.
type InterviewStore interface {
	CreateInterviewWithProblems(ctx context.Context, arg database.InsertInterviewParams, problemIds []uuid.UUID) (database.Interview, error)
	GetInterviewById(ctx context.Context, id uuid.UUID) (database.Interview, error)
	GetInterviewByStreamCallId(ctx context.Context, streamCallId string) (database.Interview, error)
	ListInterviews(ctx context.Context) ([]database.Interview, error)
	ListInterviewsByCandidate(ctx context.Context, candidateId string) ([]database.Interview, error)
	UpdateInterviewStatus(ctx context.Context, arg database.UpdateInterviewStatusParams) (database.Interview, error)
	ListInterviewProblems(ctx context.Context, interviewId uuid.UUID) ([]database.InterviewProblemRow, error)
	InsertComment(ctx context.Context, arg database.InsertCommentParams) (database.Comment, error)
	ListCommentsByInterview(ctx context.Context, interviewId uuid.UUID) ([]database.Comment, error)
	GetUsersBySubjects(ctx context.Context, subjects []string) ([]database.User, error)
}

type InterviewService struct {
	DB                InterviewStore
	UserServiceConfig *user_service.UserService
}

type Interview struct {
	ID             uuid.UUID  `json:"id"`
	Title          string     `json:"title"`
	Description    *string    `json:"description,omitempty"`
	StartTime      time.Time  `json:"start_time"`
	EndTime        *time.Time `json:"end_time,omitempty"`
	Status         string     `json:"status"`
	StreamCallID   string     `json:"stream_call_id"`
	CandidateID    string     `json:"candidate_id"`
	InterviewerIds []string   `json:"interviewer_ids"`
	CreatedAt      time.Time  `json:"created_at"`
}

type CreateInterviewRequest struct {
	Title          string      `json:"title" validate:"required,max=200"`
	Description    *string     `json:"description,omitempty"`
	StartTime      time.Time   `json:"start_time" validate:"required"`
	Status         string      `json:"status" validate:"required,oneof=scheduled live completed cancelled"`
	StreamCallID   string      `json:"stream_call_id" validate:"required"`
	CandidateID    string      `json:"candidate_id" validate:"required"`
	InterviewerIds []string    `json:"interviewer_ids" validate:"required,min=1"`
	ProblemIds     []uuid.UUID `json:"problem_ids,omitempty"`
}

type Comment struct {
	ID            uuid.UUID `json:"id"`
	Content       string    `json:"content"`
	Rating        int32     `json:"rating"`
	InterviewerID string    `json:"interviewer_id"`
	InterviewID   uuid.UUID `json:"interview_id"`
	CreatedAt     time.Time `json:"created_at"`
}

type AddCommentRequest struct {
	InterviewID uuid.UUID `json:"interview_id" validate:"required"`
	Content     string    `json:"content" validate:"required"`
	Rating      int32     `json:"rating" validate:"required,gte=1,lte=5"`
}

var (
	msgUniqueKey = map[string]string{
		"uq_interviews_stream_call_id": "an interview with that call id already exist",
	}
	msgForeignKey = map[string]string{
		"fk_interview_problems_problem":   "referenced problem does not exist",
		"fk_interview_problems_interview": "referenced interview does not exist",
		"fk_comments_interview":           "referenced interview does not exist",
	}

	errMsgs = map[string]map[string]string{
		pair_errors.CodeUniqueConstraint:     msgUniqueKey,
		pair_errors.CodeForeignKeyConstraint: msgForeignKey,
	}
)

func dbInterviewToService(dbInterview database.Interview) Interview {
	return Interview{
		ID:             dbInterview.ID,
		Title:          dbInterview.Title,
		Description:    dbInterview.Description,
		StartTime:      dbInterview.StartTime,
		EndTime:        dbInterview.EndTime,
		Status:         dbInterview.Status,
		StreamCallID:   dbInterview.StreamCallID,
		CandidateID:    dbInterview.CandidateID,
		InterviewerIds: dbInterview.InterviewerIds,
		CreatedAt:      dbInterview.CreatedAt,
	}
}

func dbCommentToService(dbComment database.Comment) Comment {
	return Comment{
		ID:            dbComment.ID,
		Content:       dbComment.Content,
		Rating:        dbComment.Rating,
		InterviewerID: dbComment.InterviewerID,
		InterviewID:   dbComment.InterviewID,
		CreatedAt:     dbComment.CreatedAt,
	}
}
