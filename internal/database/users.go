package database

import "context"

const upsertUser = `
INSERT INTO users (subject, name, email, image, role)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT ON CONSTRAINT uq_users_subject
DO UPDATE SET name = EXCLUDED.name, email = EXCLUDED.email, image = EXCLUDED.image
RETURNING id, subject, name, email, image, role, created_at
`

type UpsertUserParams struct {
	Subject string
	Name    string
	Email   string
	Image   *string
	Role    string
}

// UpsertUser creates the user row the first time an identity subject shows
// up and refreshes profile fields afterwards. The stored role is never
// overwritten by an upsert.
func (q *Queries) UpsertUser(ctx context.Context, arg UpsertUserParams) (User, error) {
	row := q.db.QueryRow(ctx, upsertUser,
		arg.Subject,
		arg.Name,
		arg.Email,
		arg.Image,
		arg.Role,
	)
	var u User
	err := row.Scan(
		&u.ID,
		&u.Subject,
		&u.Name,
		&u.Email,
		&u.Image,
		&u.Role,
		&u.CreatedAt,
	)
	return u, err
}

const getUserBySubject = `
SELECT id, subject, name, email, image, role, created_at
FROM users
WHERE subject = $1
`

func (q *Queries) GetUserBySubject(ctx context.Context, subject string) (User, error) {
	row := q.db.QueryRow(ctx, getUserBySubject, subject)
	var u User
	err := row.Scan(
		&u.ID,
		&u.Subject,
		&u.Name,
		&u.Email,
		&u.Image,
		&u.Role,
		&u.CreatedAt,
	)
	return u, err
}

const updateUserRole = `
UPDATE users
SET role = $2
WHERE subject = $1
RETURNING id, subject, name, email, image, role, created_at
`

func (q *Queries) UpdateUserRole(ctx context.Context, subject string, role string) (User, error) {
	row := q.db.QueryRow(ctx, updateUserRole, subject, role)
	var u User
	err := row.Scan(
		&u.ID,
		&u.Subject,
		&u.Name,
		&u.Email,
		&u.Image,
		&u.Role,
		&u.CreatedAt,
	)
	return u, err
}

const getUsersBySubjects = `
SELECT id, subject, name, email, image, role, created_at
FROM users
WHERE subject = ANY($1::text[])
`

func (q *Queries) GetUsersBySubjects(ctx context.Context, subjects []string) ([]User, error) {
	rows, err := q.db.Query(ctx, getUsersBySubjects, subjects)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var users []User
	for rows.Next() {
		var u User
		if err := rows.Scan(
			&u.ID,
			&u.Subject,
			&u.Name,
			&u.Email,
			&u.Image,
			&u.Role,
			&u.CreatedAt,
		); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}
