package user

import (
	domain "user-account-api/internal/domain/user"
)

func fromDBModel(model *User) *domain.User {
	var u = &domain.User{
		ID:          domain.ID(model.ID),
		Username:    model.Username,
		Email:       model.Email,
		Password:    model.Password,
		FirstName:   model.FirstName,
		MiddleName:  model.MiddleName,
		LastName:    model.LastName,
		Gender:      (*domain.Gender)(model.Gender),
		Birthdate:   model.Birthdate,
		PhoneNumber: model.PhoneNumber,
		City:        model.City,
		Country:     model.Country,

		IsActive:    model.IsActive,
		IsSuperuser: model.IsSuperuser,

		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}

	return u
}
