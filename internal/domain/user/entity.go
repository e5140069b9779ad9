package user

import (
	"time"
)

type (
	ID   uint64
	User struct {
		ID          ID
		Username    string
		Email       string
		Password    string // bcrypt hash, never the raw secret
		FirstName   string
		MiddleName  *string
		LastName    string
		Gender      *Gender
		Birthdate   *time.Time
		PhoneNumber *string
		City        *string
		Country     *string

		IsActive    bool
		IsSuperuser bool

		CreatedAt time.Time
		UpdatedAt *time.Time
	}
	Users []*User
)

// UserCreate carries the validated registration fields. Password holds the
// plaintext secret until the repository substitutes its hash on insert.
type UserCreate struct {
	Username    string
	Email       string
	Password    string
	FirstName   string
	MiddleName  *string
	LastName    string
	Gender      *Gender
	Birthdate   *time.Time
	PhoneNumber *string
	City        *string
	Country     *string
	IsSuperuser bool
}
