package user

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	domain "user-account-api/internal/domain/user"
)

var userColumns = []string{
	"id", "username", "email", "password",
	"first_name", "middle_name", "last_name",
	"gender", "birthdate", "phone_number", "city", "country",
	"is_active", "is_superuser", "created_at", "updated_at",
}

func newMockPool(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock
}

func aliceRow(id uint64) []any {
	return []any{
		id, "alice01", "alice@example.com", "$2a$10$abcdefghijklmnopqrstuv",
		"Alice", (*string)(nil), "Doe",
		(*string)(nil), (*time.Time)(nil), (*string)(nil), (*string)(nil), (*string)(nil),
		true, false, time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC), (*time.Time)(nil),
	}
}

func mustIDSpec(t *testing.T, id int64) domain.IdSpecification {
	t.Helper()
	spec, err := domain.NewIdSpecification(id)
	require.NoError(t, err)
	return spec
}

func TestIndexFilter_Filter(t *testing.T) {
	ctx := context.Background()
	f := NewIndexFilter(zap.NewNop())

	t.Run("found", func(t *testing.T) {
		mock := newMockPool(t)
		mock.ExpectQuery(SelectUserByID).
			WithArgs(uint64(7)).
			WillReturnRows(pgxmock.NewRows(userColumns).AddRow(aliceRow(7)...))

		u, err := f.Filter(ctx, mock, mustIDSpec(t, 7))
		require.NoError(t, err)
		require.NotNil(t, u)
		assert.Equal(t, uint64(7), u.ID)
		assert.Equal(t, "alice01", u.Username)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("absent id returns nil without error", func(t *testing.T) {
		mock := newMockPool(t)
		mock.ExpectQuery(SelectUserByID).
			WithArgs(uint64(999999)).
			WillReturnRows(pgxmock.NewRows(userColumns))

		u, err := f.Filter(ctx, mock, mustIDSpec(t, 999999))
		require.NoError(t, err)
		assert.Nil(t, u)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("persistence failure propagates", func(t *testing.T) {
		mock := newMockPool(t)
		dbErr := errors.New("db down")
		mock.ExpectQuery(SelectUserByID).
			WithArgs(uint64(7)).
			WillReturnError(dbErr)

		u, err := f.Filter(ctx, mock, mustIDSpec(t, 7))
		require.ErrorIs(t, err, dbErr)
		assert.Nil(t, u)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUniqueFilter_Filter(t *testing.T) {
	ctx := context.Background()
	f := NewUniqueFilter(zap.NewNop())

	emailSpec, err := domain.NewEmailSpecification("alice@example.com")
	require.NoError(t, err)
	usernameSpec, err := domain.NewUsernameSpecification("alice01")
	require.NoError(t, err)

	t.Run("exactly one match by email", func(t *testing.T) {
		mock := newMockPool(t)
		mock.ExpectQuery(SelectUserByEmail).
			WithArgs("alice@example.com").
			WillReturnRows(pgxmock.NewRows(userColumns).AddRow(aliceRow(7)...))

		u, err := f.Filter(ctx, mock, emailSpec, FieldEmail)
		require.NoError(t, err)
		require.NotNil(t, u)
		assert.Equal(t, "alice@example.com", u.Email)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("exactly one match by username", func(t *testing.T) {
		mock := newMockPool(t)
		mock.ExpectQuery(SelectUserByUsername).
			WithArgs("alice01").
			WillReturnRows(pgxmock.NewRows(userColumns).AddRow(aliceRow(7)...))

		u, err := f.Filter(ctx, mock, usernameSpec, FieldUsername)
		require.NoError(t, err)
		require.NotNil(t, u)
		assert.Equal(t, "alice01", u.Username)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("zero matches returns nil without error", func(t *testing.T) {
		mock := newMockPool(t)
		mock.ExpectQuery(SelectUserByEmail).
			WithArgs("alice@example.com").
			WillReturnRows(pgxmock.NewRows(userColumns))

		u, err := f.Filter(ctx, mock, emailSpec, FieldEmail)
		require.NoError(t, err)
		assert.Nil(t, u)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate unique values raise ambiguous match", func(t *testing.T) {
		mock := newMockPool(t)
		mock.ExpectQuery(SelectUserByEmail).
			WithArgs("alice@example.com").
			WillReturnRows(pgxmock.NewRows(userColumns).
				AddRow(aliceRow(7)...).
				AddRow(aliceRow(8)...))

		u, err := f.Filter(ctx, mock, emailSpec, FieldEmail)
		require.ErrorIs(t, err, ErrAmbiguousMatch)
		assert.Nil(t, u)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("invalid field rejected before any query", func(t *testing.T) {
		for _, field := range []string{"", "id", "phone_number", "EMAIL"} {
			mock := newMockPool(t)

			u, err := f.Filter(ctx, mock, emailSpec, field)
			require.ErrorIs(t, err, ErrInvalidFilterField)
			assert.Nil(t, u)
			require.NoError(t, mock.ExpectationsWereMet())
		}
	})

	t.Run("persistence failure propagates", func(t *testing.T) {
		mock := newMockPool(t)
		dbErr := errors.New("db down")
		mock.ExpectQuery(SelectUserByEmail).
			WithArgs("alice@example.com").
			WillReturnError(dbErr)

		u, err := f.Filter(ctx, mock, emailSpec, FieldEmail)
		require.ErrorIs(t, err, dbErr)
		assert.Nil(t, u)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
