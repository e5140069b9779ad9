package user

import (
	"time"
)

type (
	Response struct {
		ID          uint64     `json:"id"`
		Username    string     `json:"username"`
		Email       string     `json:"email"`
		FirstName   string     `json:"first_name"`
		MiddleName  *string    `json:"middle_name,omitempty"`
		LastName    string     `json:"last_name"`
		Gender      *string    `json:"gender,omitempty"`
		Birthdate   *string    `json:"birthdate,omitempty"`
		PhoneNumber *string    `json:"phone_number,omitempty"`
		City        *string    `json:"city,omitempty"`
		Country     *string    `json:"country,omitempty"`
		IsActive    bool       `json:"is_active"`
		IsSuperuser bool       `json:"is_superuser"`
		CreatedAt   time.Time  `json:"created_at"`
		UpdatedAt   *time.Time `json:"updated_at,omitempty"`
	}
	Responses    []Response
	ResponseData struct {
		Data Responses `json:"data"`
	}
)
