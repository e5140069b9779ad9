package user

import (
	"errors"
	"time"

	domain "user-account-api/internal/domain/user"
)

const birthdateFormat = "2006-01-02"

func ToResponseUser(uDomain domain.User) Response {
	var u = Response{
		ID:          uint64(uDomain.ID),
		Username:    uDomain.Username,
		Email:       uDomain.Email,
		FirstName:   uDomain.FirstName,
		MiddleName:  uDomain.MiddleName,
		LastName:    uDomain.LastName,
		Gender:      (*string)(uDomain.Gender),
		PhoneNumber: uDomain.PhoneNumber,
		City:        uDomain.City,
		Country:     uDomain.Country,
		IsActive:    uDomain.IsActive,
		IsSuperuser: uDomain.IsSuperuser,
		CreatedAt:   uDomain.CreatedAt,
		UpdatedAt:   uDomain.UpdatedAt,
	}
	if uDomain.Birthdate != nil {
		bd := uDomain.Birthdate.Format(birthdateFormat)
		u.Birthdate = &bd
	}

	return u
}

func ToDomainUserCreate(uRequest Request) (domain.UserCreate, error) {
	var u = domain.UserCreate{
		Username:    uRequest.Username,
		Email:       uRequest.Email,
		Password:    uRequest.Password,
		FirstName:   uRequest.FirstName,
		MiddleName:  uRequest.MiddleName,
		LastName:    uRequest.LastName,
		PhoneNumber: uRequest.PhoneNumber,
		City:        uRequest.City,
		Country:     uRequest.Country,
	}

	if uRequest.Gender != nil {
		g, err := domain.ParseGender(*uRequest.Gender)
		if err != nil {
			return domain.UserCreate{}, err
		}
		u.Gender = &g
	}
	if uRequest.Birthdate != nil {
		d, err := time.Parse(birthdateFormat, *uRequest.Birthdate)
		if err != nil {
			return domain.UserCreate{}, errors.New("invalid birthdate format, want YYYY-MM-DD")
		}
		u.Birthdate = &d
	}

	return u, nil
}
