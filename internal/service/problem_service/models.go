package problem_service

import (
	"context"
	"time"

	"github.com/codepair-io/codepair/internal/database"
	"github.com/codepair-io/codepair/internal/llm"
	"github.com/codepair-io/codepair/internal/pair_errors"
	"github.com/codepair-io/codepair/internal/service/user_service"
	"github.com/google/uuid"
)

const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

// ProblemStore is the slice of the query layer this service needs.
// *database.Queries satisfies it.
type ProblemStore interface {
	InsertProblem(ctx context.Context, arg database.InsertProblemParams) (database.Problem, error)
	GetProblemById(ctx context.Context, id uuid.UUID) (database.Problem, error)
	ListProblems(ctx context.Context) ([]database.Problem, error)
	ListProblemsByCreator(ctx context.Context, createdBy string) ([]database.Problem, error)
	ListProblemsByDifficulty(ctx context.Context, difficulty string) ([]database.Problem, error)
	DeleteProblem(ctx context.Context, id uuid.UUID) (int64, error)
}

type ProblemService struct {
	DB                ProblemStore
	UserServiceConfig *user_service.UserService
	Provider          llm.Provider
}

// Example is one worked test case shown with the problem statement.
type Example struct {
	Input       string  `json:"input" validate:"required"`
	Output      string  `json:"output" validate:"required"`
	Explanation *string `json:"explanation,omitempty"`
}

// StarterCode always carries all three language stubs. A record missing
// any key is invalid and is never persisted, even when the stub is an
// empty string.
type StarterCode struct {
	Javascript string `json:"javascript"`
	Python     string `json:"python"`
	Java       string `json:"java"`
}

type Problem struct {
	ID            uuid.UUID   `json:"id"`
	Title         string      `json:"title" validate:"required,max=200"`
	Description   string      `json:"description" validate:"required"`
	Difficulty    string      `json:"difficulty" validate:"required,oneof=easy medium hard"`
	Category      *string     `json:"category,omitempty"`
	Tags          []string    `json:"tags,omitempty"`
	Examples      []Example   `json:"examples" validate:"required,min=1,dive"`
	Constraints   []string    `json:"constraints"`
	StarterCode   StarterCode `json:"starter_code"`
	Hints         []string    `json:"hints"`
	CreatedBy     string      `json:"created_by"`
	IsAIGenerated bool        `json:"is_ai_generated"`
	AiPrompt      *string     `json:"ai_prompt,omitempty"`
	CreatedAt     time.Time   `json:"created_at"`
}

// GenerateProblemRequest is the caller's input to the generation
// pipeline. Topic and category end up inside prompts sent to the
// completion endpoint, so they are held to an allow-listed charset.
type GenerateProblemRequest struct {
	Difficulty string `json:"difficulty" validate:"required,oneof=easy medium hard"`
	Topic      string `json:"topic,omitempty" validate:"omitempty,max=64,prompt_safe"`
	Category   string `json:"category,omitempty" validate:"omitempty,max=64,prompt_safe"`
}

var (
	msgForeignKey = map[string]string{
		"fk_interview_problems_problem": "referenced problem does not exist",
	}

	errMsgs = map[string]map[string]string{
		pair_errors.CodeForeignKeyConstraint: msgForeignKey,
	}
)
