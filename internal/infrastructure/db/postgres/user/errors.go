package user

import "errors"

var (
	ErrUserAlreadyExists  = errors.New("username or email already taken")
	ErrAmbiguousMatch     = errors.New("more than one row matches a unique field")
	ErrInvalidFilterField = errors.New("invalid field specified for filtering")
)
