package user

import (
	"errors"
	"net/mail"
	"strings"
)

// Specifications are immutable value objects naming what to look up. They
// carry no query logic; the postgres filters translate them into queries.

var (
	ErrNonPositiveID = errors.New("id must be a positive integer")
	ErrInvalidEmail  = errors.New("invalid email address")
	ErrEmptyUsername = errors.New("username must not be empty")
)

type IdSpecification struct {
	value ID
}

func NewIdSpecification(id int64) (IdSpecification, error) {
	if id <= 0 {
		return IdSpecification{}, ErrNonPositiveID
	}
	return IdSpecification{value: ID(id)}, nil
}

func (s IdSpecification) Value() ID { return s.value }

// UniqueSpecification is the value carried by a unique-column lookup,
// implemented by EmailSpecification and UsernameSpecification.
type UniqueSpecification interface {
	Value() string
}

type EmailSpecification struct {
	value string
}

func NewEmailSpecification(email string) (EmailSpecification, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if _, err := mail.ParseAddress(email); err != nil {
		return EmailSpecification{}, ErrInvalidEmail
	}
	return EmailSpecification{value: email}, nil
}

func (s EmailSpecification) Value() string { return s.value }

type UsernameSpecification struct {
	value string
}

func NewUsernameSpecification(username string) (UsernameSpecification, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return UsernameSpecification{}, ErrEmptyUsername
	}
	return UsernameSpecification{value: username}, nil
}

func (s UsernameSpecification) Value() string { return s.value }
