package database

import (
	"context"

	"github.com/google/uuid"
)

const insertComment = `
INSERT INTO comments (content, rating, interviewer_id, interview_id)
VALUES ($1, $2, $3, $4)
RETURNING id, content, rating, interviewer_id, interview_id, created_at
`

type InsertCommentParams struct {
	Content       string
	Rating        int32
	InterviewerID string
	InterviewID   uuid.UUID
}

func (q *Queries) InsertComment(ctx context.Context, arg InsertCommentParams) (Comment, error) {
	row := q.db.QueryRow(ctx, insertComment,
		arg.Content,
		arg.Rating,
		arg.InterviewerID,
		arg.InterviewID,
	)
	var c Comment
	err := row.Scan(
		&c.ID,
		&c.Content,
		&c.Rating,
		&c.InterviewerID,
		&c.InterviewID,
		&c.CreatedAt,
	)
	return c, err
}

const listCommentsByInterview = `
SELECT id, content, rating, interviewer_id, interview_id, created_at
FROM comments
WHERE interview_id = $1
ORDER BY created_at DESC
`

func (q *Queries) ListCommentsByInterview(ctx context.Context, interviewId uuid.UUID) ([]Comment, error) {
	rows, err := q.db.Query(ctx, listCommentsByInterview, interviewId)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var comments []Comment
	for rows.Next() {
		var c Comment
		if err := rows.Scan(
			&c.ID,
			&c.Content,
			&c.Rating,
			&c.InterviewerID,
			&c.InterviewID,
			&c.CreatedAt,
		); err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}
