package user

import (
	"time"
)

type (
	User struct {
		ID          uint64
		Username    string
		Email       string
		Password    string
		FirstName   string
		MiddleName  *string
		LastName    string
		Gender      *string
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
