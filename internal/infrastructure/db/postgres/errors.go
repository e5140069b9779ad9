package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolationCode = "23505"

func IsPgUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}

// DatabaseError is the single domain error type the repositories expose for
// persistence failures.
type DatabaseError struct {
	Msg string
	Err error
}

func NewDatabaseError(msg string, err error) *DatabaseError {
	return &DatabaseError{Msg: msg, Err: err}
}

func (e *DatabaseError) Error() string {
	if e.Err == nil {
		return e.Msg
	}
	return e.Msg + ": " + e.Err.Error()
}

func (e *DatabaseError) Unwrap() error { return e.Err }
