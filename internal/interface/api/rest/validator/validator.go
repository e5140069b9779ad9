package validator

import (
	"errors"
	"net/mail"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/unicode/norm"

	"user-account-api/internal/interface/api/rest/dto/auth"
	"user-account-api/internal/interface/api/rest/dto/user"
)

const (
	minPasswordLen = 8
	maxPasswordLen = 14
)

var (
	phoneRe         = regexp.MustCompile(`^\+[0-9]{1,15}$`)
	passwordSpecial = "#?!@$%^&*-"

	validate = newValidate()
)

func newValidate() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// report fields under their json names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ValidateID parses a path parameter into a positive integer id.
func ValidateID(s string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.New("id must be a positive integer")
	}
	return id, nil
}

// ValidateUser checks a registration request. Returns nil when valid,
// otherwise a field -> message map.
func ValidateUser(r *user.Request) map[string]string {
	errs := make(map[string]string)

	// Normalize
	r.Username = strings.TrimSpace(r.Username)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.FirstName = norm.NFC.String(strings.TrimSpace(r.FirstName))
	r.LastName = norm.NFC.String(strings.TrimSpace(r.LastName))
	if r.MiddleName != nil {
		mn := norm.NFC.String(strings.TrimSpace(*r.MiddleName))
		r.MiddleName = &mn
	}

	if err := validate.Struct(r); err != nil {
		var vErrs validator.ValidationErrors
		if errors.As(err, &vErrs) {
			for _, fe := range vErrs {
				errs[fe.Field()] = tagMessage(fe)
			}
		} else {
			errs["request"] = err.Error()
		}
	}

	if _, ok := errs["password"]; !ok {
		if msg := checkPassword(r.Password); msg != "" {
			errs["password"] = msg
		}
	}
	if r.PhoneNumber != nil && !phoneRe.MatchString(*r.PhoneNumber) {
		errs["phone_number"] = "must match +[0-9]{1,15}"
	}

	if len(errs) == 0 {
		return nil
	}

	return errs
}

func tagMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "email":
		return "invalid email format"
	case "min":
		return fe.Field() + " must be at least " + fe.Param() + " characters"
	case "max":
		return fe.Field() + " must be at most " + fe.Param() + " characters"
	case "oneof":
		return fe.Field() + " must be one of: " + fe.Param()
	default:
		return "invalid " + fe.Field()
	}
}

func checkPassword(password string) string {
	if l := utf8.RuneCountInString(password); l < minPasswordLen || l > maxPasswordLen {
		return "password length must be 8-14 characters"
	}

	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, c := range password {
		switch {
		case unicode.IsUpper(c):
			hasUpper = true
		case unicode.IsLower(c):
			hasLower = true
		case unicode.IsDigit(c):
			hasDigit = true
		case strings.ContainsRune(passwordSpecial, c):
			hasSpecial = true
		}
	}
	if !hasUpper || !hasLower || !hasDigit || !hasSpecial {
		return "password needs an uppercase letter, a lowercase letter, a digit and one of " + passwordSpecial
	}

	return ""
}

func ValidateLogin(r auth.LoginRequest) map[string]string {
	errs := make(map[string]string)

	email := strings.ToLower(strings.TrimSpace(r.Email))

	if email == "" {
		errs["email"] = "email is required"
	} else if _, err := mail.ParseAddress(email); err != nil {
		errs["email"] = "invalid email format"
	}

	if strings.TrimSpace(r.Password) == "" {
		errs["password"] = "password is required"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}
