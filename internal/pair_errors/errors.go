package pair_errors

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	log "github.com/sirupsen/logrus"
)

const (
	CodeUniqueConstraint     = "23505"
	CodeForeignKeyConstraint = "23503"
)

var (
	ErrInternal          = errors.New("internal service error. please try again later")
	ErrInvalidRequest    = errors.New("invalid request")
	ErrUnauthorized      = errors.New("authentication required")
	ErrForbidden         = errors.New("user not allowed to perform this action")
	ErrNotFound          = errors.New("entity not found")
	ErrConfiguration     = errors.New("service is not configured for this operation")
	ErrUpstream          = errors.New("completion endpoint returned an error")
	ErrMalformedResponse = errors.New("completion endpoint returned a malformed response")
	ErrSchemaViolation   = errors.New("generated problem is missing required fields")
	ErrMailerStopped     = errors.New("email service is stopped currently")
)

// HandleDBErrors converts database errors into user facing sentinel errors.
// errMsgs maps pg error codes to constraint-name keyed messages.
func HandleDBErrors(
	err error,
	errMsgs map[string]map[string]string,
	contextMessage string,
) error {
	if errors.Is(err, pgx.ErrNoRows) {
		log.Error(fmt.Sprintf("%s, %v", contextMessage, ErrNotFound))
		return ErrNotFound
	}

	// assume its an internal error first
	err = fmt.Errorf(
		"%w, %s, %w",
		ErrInternal,
		contextMessage,
		err,
	)

	// check if its a pg error
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		log.Error(err)
		return err
	}

	if errMsgs == nil {
		log.Warnf("got null errMsgs")
		log.Error(err)
		return err
	}

	// check if its a foreign key error
	if pgErr.Code == CodeForeignKeyConstraint {
		msgForeignKey, ok := errMsgs[CodeForeignKeyConstraint]
		if !ok {
			log.Warnf("no msg map found for foreign key constraint.")
			return fmt.Errorf(
				"%w, %s",
				ErrInvalidRequest,
				pgErr.Detail,
			)
		}
		return handleConstraintError(pgErr, msgForeignKey)
	}

	// check if its a unique key error
	if pgErr.Code == CodeUniqueConstraint {
		msgUniqueConstraint, ok := errMsgs[CodeUniqueConstraint]
		if !ok {
			log.Warnf("no msg map found for unique key constraint.")
			return fmt.Errorf(
				"%w, %s",
				ErrInvalidRequest,
				pgErr.Detail,
			)
		}
		return handleConstraintError(pgErr, msgUniqueConstraint)
	}

	// unknown error
	log.Error(err)
	return err
}

func handleConstraintError(pgErr *pgconn.PgError, msgByConstraint map[string]string) error {
	msg, ok := msgByConstraint[pgErr.ConstraintName]
	if !ok {
		log.Warnf(
			"unknown constraint violation %s with code %s",
			pgErr.ConstraintName,
			pgErr.Code,
		)
		msg = pgErr.Detail
	}
	err := fmt.Errorf(
		"%w, %s",
		ErrInvalidRequest,
		msg,
	)
	log.Error(err)
	return err
}
