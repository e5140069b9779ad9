package user

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	domain "user-account-api/internal/domain/user"
	"user-account-api/internal/infrastructure/db/postgres"
)

// PasswordHasher produces the stored hash for a plaintext password. Hashing
// an empty password is an error.
type PasswordHasher interface {
	Hash(ctx context.Context, password string) (string, error)
}

type Repository struct {
	sessions     postgres.SessionSource
	indexFilter  *IndexFilter
	uniqueFilter *UniqueFilter
	hasher       PasswordHasher
	log          *zap.Logger
}

func NewRepository(
	sessions postgres.SessionSource,
	hasher PasswordHasher,
	logger *zap.Logger,
) domain.Repository {
	return &Repository{
		sessions:     sessions,
		indexFilter:  NewIndexFilter(logger),
		uniqueFilter: NewUniqueFilter(logger),
		hasher:       hasher,
		log:          logger,
	}
}

func (r *Repository) ReadByID(ctx context.Context, spec domain.IdSpecification) (*domain.User, error) {
	sess, release, err := r.sessions.Acquire(ctx)
	if err != nil {
		return nil, postgres.NewDatabaseError("acquire session", err)
	}
	defer release()

	u, err := r.indexFilter.Filter(ctx, sess, spec)
	if err != nil {
		return nil, postgres.NewDatabaseError("read user by id", err)
	}
	if u == nil {
		return nil, nil
	}

	return fromDBModel(u), nil
}

func (r *Repository) ReadByUsername(ctx context.Context, spec domain.UsernameSpecification) (*domain.User, error) {
	return r.readByUnique(ctx, spec, FieldUsername)
}

func (r *Repository) ReadByEmail(ctx context.Context, spec domain.EmailSpecification) (*domain.User, error) {
	return r.readByUnique(ctx, spec, FieldEmail)
}

func (r *Repository) readByUnique(
	ctx context.Context,
	spec domain.UniqueSpecification,
	field string,
) (*domain.User, error) {
	sess, release, err := r.sessions.Acquire(ctx)
	if err != nil {
		return nil, postgres.NewDatabaseError("acquire session", err)
	}
	defer release()

	u, err := r.uniqueFilter.Filter(ctx, sess, spec, field)
	if err != nil {
		return nil, postgres.NewDatabaseError("read user by "+field, err)
	}
	if u == nil {
		return nil, nil
	}

	return fromDBModel(u), nil
}

// CreateUser hashes the plaintext password, inserts the row and re-reads it
// by the server-assigned id so the returned entity carries the defaults and
// the created_at timestamp.
func (r *Repository) CreateUser(ctx context.Context, req domain.UserCreate) (*domain.User, error) {
	hash, err := r.hasher.Hash(ctx, req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	id, err := r.insert(ctx, req, hash)
	if err != nil {
		return nil, err
	}

	spec, err := domain.NewIdSpecification(int64(id))
	if err != nil {
		return nil, postgres.NewDatabaseError("invalid id returned on insert", err)
	}
	created, err := r.ReadByID(ctx, spec)
	if err != nil {
		return nil, err
	}
	if created == nil {
		return nil, postgres.NewDatabaseError("user could not be created", nil)
	}

	return created, nil
}

func (r *Repository) insert(ctx context.Context, req domain.UserCreate, hash string) (uint64, error) {
	sess, release, err := r.sessions.Acquire(ctx)
	if err != nil {
		return 0, postgres.NewDatabaseError("acquire session", err)
	}
	defer release()

	var id uint64
	err = sess.QueryRow(
		ctx,
		InsertUser,
		req.Username, req.Email, hash,
		req.FirstName, req.MiddleName, req.LastName,
		(*string)(req.Gender), req.Birthdate, req.PhoneNumber,
		req.City, req.Country, req.IsSuperuser,
	).Scan(&id)
	if err != nil {
		if postgres.IsPgUniqueViolation(err) {
			return 0, ErrUserAlreadyExists
		}
		r.log.Error("insert user error", zap.Error(err))
		return 0, postgres.NewDatabaseError("insert user", err)
	}

	return id, nil
}
