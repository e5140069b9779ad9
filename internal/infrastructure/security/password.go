package security

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmptyPassword = errors.New("password cannot be empty")
	ErrEmptyHash     = errors.New("hashed password cannot be empty")
)

type Hasher struct {
	cost int
}

func NewHasher() *Hasher { return &Hasher{cost: bcrypt.DefaultCost} }

func (h *Hasher) Hash(ctx context.Context, password string) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	b, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}

	return string(b), nil
}

func (h *Hasher) Verify(hashedPassword, plainPassword string) error {
	if plainPassword == "" {
		return ErrEmptyPassword
	}
	if hashedPassword == "" {
		return ErrEmptyHash
	}

	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(plainPassword))
}
