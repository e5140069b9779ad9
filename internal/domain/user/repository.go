package user

import (
	"context"
)

type Repository interface {
	ReadByID(ctx context.Context, spec IdSpecification) (*User, error)
	ReadByUsername(ctx context.Context, spec UsernameSpecification) (*User, error)
	ReadByEmail(ctx context.Context, spec EmailSpecification) (*User, error)
	CreateUser(ctx context.Context, req UserCreate) (*User, error)
}
