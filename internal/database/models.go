package database

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID        uuid.UUID
	Subject   string
	Name      string
	Email     string
	Image     *string
	Role      string
	CreatedAt time.Time
}

type Problem struct {
	ID            uuid.UUID
	Title         string
	Description   string
	Difficulty    string
	Category      *string
	Tags          []string
	Examples      []byte
	Constraints   []string
	StarterCode   []byte
	Hints         []string
	CreatedBy     string
	IsAiGenerated bool
	AiPrompt      *string
	CreatedAt     time.Time
}

type Interview struct {
	ID             uuid.UUID
	Title          string
	Description    *string
	StartTime      time.Time
	EndTime        *time.Time
	Status         string
	StreamCallID   string
	CandidateID    string
	InterviewerIds []string
	CreatedAt      time.Time
}

type InterviewProblem struct {
	InterviewID  uuid.UUID
	ProblemID    uuid.UUID
	ProblemOrder int32
	AssignedAt   time.Time
}

type Comment struct {
	ID            uuid.UUID
	Content       string
	Rating        int32
	InterviewerID string
	InterviewID   uuid.UUID
	CreatedAt     time.Time
}
