package user

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	domain "user-account-api/internal/domain/user"
	"user-account-api/internal/infrastructure/db/postgres"
)

// Unique-lookup column selectors accepted by UniqueFilter.
const (
	FieldUsername = "username"
	FieldEmail    = "email"
)

func scanUser(row pgx.Row) (*User, error) {
	u := new(User)
	err := row.Scan(
		&u.ID,
		&u.Username,
		&u.Email,
		&u.Password,
		&u.FirstName,
		&u.MiddleName,
		&u.LastName,
		&u.Gender,
		&u.Birthdate,
		&u.PhoneNumber,
		&u.City,
		&u.Country,

		&u.IsActive,
		&u.IsSuperuser,

		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return u, nil
}

// IndexFilter resolves an IdSpecification through a primary-key fetch.
// Absence is (nil, nil); persistence failures are logged and returned.
type IndexFilter struct {
	log *zap.Logger
}

func NewIndexFilter(logger *zap.Logger) *IndexFilter {
	return &IndexFilter{log: logger}
}

func (f *IndexFilter) Filter(
	ctx context.Context,
	sess postgres.Session,
	spec domain.IdSpecification,
) (*User, error) {
	u, err := scanUser(sess.QueryRow(ctx, SelectUserByID, uint64(spec.Value())))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		f.log.Error("index filter error", zap.Uint64("id", uint64(spec.Value())), zap.Error(err))
		return nil, err
	}

	return u, nil
}

// UniqueFilter resolves a UniqueSpecification against one unique column,
// expecting exactly one match. Zero matches is (nil, nil); more than one is
// ErrAmbiguousMatch, a data-integrity violation upstream.
type UniqueFilter struct {
	log *zap.Logger
}

func NewUniqueFilter(logger *zap.Logger) *UniqueFilter {
	return &UniqueFilter{log: logger}
}

func (f *UniqueFilter) Filter(
	ctx context.Context,
	sess postgres.Session,
	spec domain.UniqueSpecification,
	field string,
) (*User, error) {
	var stmt string
	switch field {
	case FieldUsername:
		stmt = SelectUserByUsername
	case FieldEmail:
		stmt = SelectUserByEmail
	default:
		return nil, ErrInvalidFilterField
	}

	rows, err := sess.Query(ctx, stmt, spec.Value())
	if err != nil {
		f.log.Error("unique filter error", zap.String("field", field), zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var us Users
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			f.log.Error("unique filter scan error", zap.String("field", field), zap.Error(err))
			return nil, err
		}
		us = append(us, u)
	}
	if err = rows.Err(); err != nil {
		f.log.Error("unique filter rows error", zap.String("field", field), zap.Error(err))
		return nil, err
	}

	switch len(us) {
	case 0:
		return nil, nil
	case 1:
		return us[0], nil
	default:
		f.log.Error("unique filter ambiguous match", zap.String("field", field))
		return nil, ErrAmbiguousMatch
	}
}
