package user

type Request struct {
	Username    string  `json:"username" validate:"required,min=4,max=15"`
	Email       string  `json:"email" validate:"required,email"`
	Password    string  `json:"password" validate:"required"`
	FirstName   string  `json:"first_name" validate:"required,max=50"`
	MiddleName  *string `json:"middle_name" validate:"omitempty,max=50"`
	LastName    string  `json:"last_name" validate:"required,max=100"`
	Gender      *string `json:"gender" validate:"omitempty,oneof=male female other"`
	Birthdate   *string `json:"birthdate" validate:"omitempty"`
	PhoneNumber *string `json:"phone_number" validate:"omitempty,max=16"`
	City        *string `json:"city" validate:"omitempty,max=100"`
	Country     *string `json:"country" validate:"omitempty,min=4,max=100"`
}
