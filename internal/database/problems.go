package database

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const problemColumns = `id, title, description, difficulty, category, tags,
examples, constraints, starter_code, hints, created_by, is_ai_generated,
ai_prompt, created_at`

const insertProblem = `
INSERT INTO problems (
    title, description, difficulty, category, tags, examples,
    constraints, starter_code, hints, created_by, is_ai_generated, ai_prompt
)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
RETURNING ` + problemColumns

type InsertProblemParams struct {
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
}

func (q *Queries) InsertProblem(ctx context.Context, arg InsertProblemParams) (Problem, error) {
	row := q.db.QueryRow(ctx, insertProblem,
		arg.Title,
		arg.Description,
		arg.Difficulty,
		arg.Category,
		arg.Tags,
		arg.Examples,
		arg.Constraints,
		arg.StarterCode,
		arg.Hints,
		arg.CreatedBy,
		arg.IsAiGenerated,
		arg.AiPrompt,
	)
	return scanProblem(row)
}

const getProblemById = `
SELECT ` + problemColumns + `
FROM problems
WHERE id = $1
`

func (q *Queries) GetProblemById(ctx context.Context, id uuid.UUID) (Problem, error) {
	return scanProblem(q.db.QueryRow(ctx, getProblemById, id))
}

const listProblems = `
SELECT ` + problemColumns + `
FROM problems
ORDER BY created_at DESC
`

func (q *Queries) ListProblems(ctx context.Context) ([]Problem, error) {
	rows, err := q.db.Query(ctx, listProblems)
	if err != nil {
		return nil, err
	}
	return scanProblems(rows)
}

const listProblemsByCreator = `
SELECT ` + problemColumns + `
FROM problems
WHERE created_by = $1
ORDER BY created_at DESC
`

func (q *Queries) ListProblemsByCreator(ctx context.Context, createdBy string) ([]Problem, error) {
	rows, err := q.db.Query(ctx, listProblemsByCreator, createdBy)
	if err != nil {
		return nil, err
	}
	return scanProblems(rows)
}

const listProblemsByDifficulty = `
SELECT ` + problemColumns + `
FROM problems
WHERE difficulty = $1
ORDER BY created_at DESC
`

func (q *Queries) ListProblemsByDifficulty(ctx context.Context, difficulty string) ([]Problem, error) {
	rows, err := q.db.Query(ctx, listProblemsByDifficulty, difficulty)
	if err != nil {
		return nil, err
	}
	return scanProblems(rows)
}

const deleteProblem = `
DELETE FROM problems
WHERE id = $1
`

func (q *Queries) DeleteProblem(ctx context.Context, id uuid.UUID) (int64, error) {
	tag, err := q.db.Exec(ctx, deleteProblem, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProblems(rows pgx.Rows) ([]Problem, error) {
	defer rows.Close()
	var problems []Problem
	for rows.Next() {
		p, err := scanProblem(rows)
		if err != nil {
			return nil, err
		}
		problems = append(problems, p)
	}
	return problems, rows.Err()
}

func scanProblem(row rowScanner) (Problem, error) {
	var p Problem
	err := row.Scan(
		&p.ID,
		&p.Title,
		&p.Description,
		&p.Difficulty,
		&p.Category,
		&p.Tags,
		&p.Examples,
		&p.Constraints,
		&p.StarterCode,
		&p.Hints,
		&p.CreatedBy,
		&p.IsAiGenerated,
		&p.AiPrompt,
		&p.CreatedAt,
	)
	return p, err
}
