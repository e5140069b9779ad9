package ports

import (
	"context"

	"user-account-api/internal/domain/user"
)

type UserService interface {
	FindUserByID(ctx context.Context, spec user.IdSpecification) (*user.User, error)
	FindByUsername(ctx context.Context, spec user.UsernameSpecification) (*user.User, error)
	FindByEmail(ctx context.Context, spec user.EmailSpecification) (*user.User, error)
	RegisterUser(ctx context.Context, req user.UserCreate) (*user.User, error)
}
