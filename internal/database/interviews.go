package database

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const interviewColumns = `id, title, description, start_time, end_time, status,
stream_call_id, candidate_id, interviewer_ids, created_at`

const insertInterview = `
INSERT INTO interviews (
    title, description, start_time, status, stream_call_id,
    candidate_id, interviewer_ids
)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING ` + interviewColumns

type InsertInterviewParams struct {
	Title          string
	Description    *string
	StartTime      time.Time
	Status         string
	StreamCallID   string
	CandidateID    string
	InterviewerIds []string
}

func (q *Queries) InsertInterview(ctx context.Context, arg InsertInterviewParams) (Interview, error) {
	row := q.db.QueryRow(ctx, insertInterview,
		arg.Title,
		arg.Description,
		arg.StartTime,
		arg.Status,
		arg.StreamCallID,
		arg.CandidateID,
		arg.InterviewerIds,
	)
	return scanInterview(row)
}

const getInterviewById = `
SELECT ` + interviewColumns + `
FROM interviews
WHERE id = $1
`

func (q *Queries) GetInterviewById(ctx context.Context, id uuid.UUID) (Interview, error) {
	return scanInterview(q.db.QueryRow(ctx, getInterviewById, id))
}

const getInterviewByStreamCallId = `
SELECT ` + interviewColumns + `
FROM interviews
WHERE stream_call_id = $1
`

func (q *Queries) GetInterviewByStreamCallId(ctx context.Context, streamCallId string) (Interview, error) {
	return scanInterview(q.db.QueryRow(ctx, getInterviewByStreamCallId, streamCallId))
}

const listInterviews = `
SELECT ` + interviewColumns + `
FROM interviews
ORDER BY created_at DESC
`

func (q *Queries) ListInterviews(ctx context.Context) ([]Interview, error) {
	rows, err := q.db.Query(ctx, listInterviews)
	if err != nil {
		return nil, err
	}
	return scanInterviews(rows)
}

const listInterviewsByCandidate = `
SELECT ` + interviewColumns + `
FROM interviews
WHERE candidate_id = $1
ORDER BY created_at DESC
`

func (q *Queries) ListInterviewsByCandidate(ctx context.Context, candidateId string) ([]Interview, error) {
	rows, err := q.db.Query(ctx, listInterviewsByCandidate, candidateId)
	if err != nil {
		return nil, err
	}
	return scanInterviews(rows)
}

const updateInterviewStatus = `
UPDATE interviews
SET status = $2, end_time = $3
WHERE id = $1
RETURNING ` + interviewColumns

type UpdateInterviewStatusParams struct {
	ID      uuid.UUID
	Status  string
	EndTime *time.Time
}

func (q *Queries) UpdateInterviewStatus(ctx context.Context, arg UpdateInterviewStatusParams) (Interview, error) {
	row := q.db.QueryRow(ctx, updateInterviewStatus, arg.ID, arg.Status, arg.EndTime)
	return scanInterview(row)
}

const insertInterviewProblem = `
INSERT INTO interview_problems (interview_id, problem_id, problem_order)
VALUES ($1, $2, $3)
RETURNING interview_id, problem_id, problem_order, assigned_at
`

type InsertInterviewProblemParams struct {
	InterviewID  uuid.UUID
	ProblemID    uuid.UUID
	ProblemOrder int32
}

func (q *Queries) InsertInterviewProblem(ctx context.Context, arg InsertInterviewProblemParams) (InterviewProblem, error) {
	row := q.db.QueryRow(ctx, insertInterviewProblem,
		arg.InterviewID,
		arg.ProblemID,
		arg.ProblemOrder,
	)
	var ip InterviewProblem
	err := row.Scan(&ip.InterviewID, &ip.ProblemID, &ip.ProblemOrder, &ip.AssignedAt)
	return ip, err
}

// CreateInterviewWithProblems inserts the interview row and its problem
// links in one transaction. A failed link insert rolls the interview
// back, nothing stays persisted.
func (q *Queries) CreateInterviewWithProblems(
	ctx context.Context,
	arg InsertInterviewParams,
	problemIds []uuid.UUID,
) (Interview, error) {
	tx, err := q.db.Begin(ctx)
	if err != nil {
		return Interview{}, err
	}
	defer tx.Rollback(ctx)

	qtx := q.WithTx(tx)
	interview, err := qtx.InsertInterview(ctx, arg)
	if err != nil {
		return Interview{}, err
	}
	for order, problemId := range problemIds {
		_, err = qtx.InsertInterviewProblem(ctx, InsertInterviewProblemParams{
			InterviewID:  interview.ID,
			ProblemID:    problemId,
			ProblemOrder: int32(order),
		})
		if err != nil {
			return Interview{}, err
		}
	}

	if err = tx.Commit(ctx); err != nil {
		return Interview{}, err
	}
	return interview, nil
}

const listInterviewProblems = `
SELECT p.id, p.title, p.description, p.difficulty, p.category, p.tags,
       p.examples, p.constraints, p.starter_code, p.hints, p.created_by,
       p.is_ai_generated, p.ai_prompt, p.created_at, ip.problem_order
FROM interview_problems ip
JOIN problems p ON p.id = ip.problem_id
WHERE ip.interview_id = $1
ORDER BY ip.problem_order ASC
`

type InterviewProblemRow struct {
	Problem      Problem
	ProblemOrder int32
}

func (q *Queries) ListInterviewProblems(ctx context.Context, interviewId uuid.UUID) ([]InterviewProblemRow, error) {
	rows, err := q.db.Query(ctx, listInterviewProblems, interviewId)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var result []InterviewProblemRow
	for rows.Next() {
		var r InterviewProblemRow
		p := &r.Problem
		if err := rows.Scan(
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
			&r.ProblemOrder,
		); err != nil {
			return nil, err
		}
		result = append(result, r)
	}
	return result, rows.Err()
}

func scanInterview(row rowScanner) (Interview, error) {
	var i Interview
	err := row.Scan(
		&i.ID,
		&i.Title,
		&i.Description,
		&i.StartTime,
		&i.EndTime,
		&i.Status,
		&i.StreamCallID,
		&i.CandidateID,
		&i.InterviewerIds,
		&i.CreatedAt,
	)
	return i, err
}

func scanInterviews(rows pgx.Rows) ([]Interview, error) {
	defer rows.Close()
	var interviews []Interview
	for rows.Next() {
		i, err := scanInterview(rows)
		if err != nil {
			return nil, err
		}
		interviews = append(interviews, i)
	}
	return interviews, rows.Err()
}
