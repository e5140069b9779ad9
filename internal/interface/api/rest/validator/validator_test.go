package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"user-account-api/internal/interface/api/rest/dto/auth"
	"user-account-api/internal/interface/api/rest/dto/user"
)

func validRequest() *user.Request {
	return &user.Request{
		Username:  "alice01",
		Email:     "alice@example.com",
		Password:  "Secret#123",
		FirstName: "Alice",
		LastName:  "Doe",
	}
}

func strPtr(s string) *string { return &s }

func TestValidateID(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		want  int64
		valid bool
	}{
		{name: "positive", in: "7", want: 7, valid: true},
		{name: "with surrounding spaces", in: " 42 ", want: 42, valid: true},
		{name: "zero", in: "0", valid: false},
		{name: "negative", in: "-3", valid: false},
		{name: "not a number", in: "abc", valid: false},
		{name: "empty", in: "", valid: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			id, err := ValidateID(tt.in)
			if tt.valid {
				require.NoError(t, err)
				assert.Equal(t, tt.want, id)
			} else {
				require.Error(t, err)
				assert.Zero(t, id)
			}
		})
	}
}

func TestValidateUser(t *testing.T) {
	t.Run("valid request passes and is normalized", func(t *testing.T) {
		r := validRequest()
		r.Email = "  Alice@Example.COM "
		r.Username = " alice01 "

		errs := ValidateUser(r)
		require.Nil(t, errs)
		assert.Equal(t, "alice@example.com", r.Email)
		assert.Equal(t, "alice01", r.Username)
	})

	t.Run("field errors keyed by json name", func(t *testing.T) {
		r := validRequest()
		r.Username = "abc"
		r.Email = "not-an-email"
		r.FirstName = ""

		errs := ValidateUser(r)
		require.NotNil(t, errs)
		assert.Contains(t, errs, "username")
		assert.Contains(t, errs, "email")
		assert.Contains(t, errs, "first_name")
	})

	t.Run("gender restricted", func(t *testing.T) {
		r := validRequest()
		r.Gender = strPtr("unknown")

		errs := ValidateUser(r)
		require.NotNil(t, errs)
		assert.Contains(t, errs, "gender")
	})

	t.Run("country minimum length", func(t *testing.T) {
		r := validRequest()
		r.Country = strPtr("US")

		errs := ValidateUser(r)
		require.NotNil(t, errs)
		assert.Contains(t, errs, "country")
	})

	t.Run("phone number format", func(t *testing.T) {
		for _, phone := range []string{"12345", "+", "+12a4", "001234"} {
			r := validRequest()
			r.PhoneNumber = strPtr(phone)

			errs := ValidateUser(r)
			require.NotNil(t, errs, "phone %q should be rejected", phone)
			assert.Contains(t, errs, "phone_number")
		}

		r := validRequest()
		r.PhoneNumber = strPtr("+79991234567")
		assert.Nil(t, ValidateUser(r))
	})

	t.Run("password rules", func(t *testing.T) {
		tests := []struct {
			name     string
			password string
			valid    bool
		}{
			{name: "all classes present", password: "Secret#123", valid: true},
			{name: "too short", password: "Se#1abc", valid: false},
			{name: "too long", password: "Secret#1234mooore", valid: false},
			{name: "no uppercase", password: "secret#123", valid: false},
			{name: "no lowercase", password: "SECRET#123", valid: false},
			{name: "no digit", password: "Secret#abc", valid: false},
			{name: "no special", password: "Secret12345", valid: false},
		}

		for _, tt := range tests {
			tt := tt
			t.Run(tt.name, func(t *testing.T) {
				r := validRequest()
				r.Password = tt.password

				errs := ValidateUser(r)
				if tt.valid {
					assert.Nil(t, errs)
				} else {
					require.NotNil(t, errs)
					assert.Contains(t, errs, "password")
				}
			})
		}
	})
}

func TestValidateLogin(t *testing.T) {
	tests := []struct {
		name    string
		req     auth.LoginRequest
		wantKey string
	}{
		{name: "valid", req: auth.LoginRequest{Email: "alice@example.com", Password: "Secret#123"}},
		{name: "missing email", req: auth.LoginRequest{Password: "Secret#123"}, wantKey: "email"},
		{name: "bad email", req: auth.LoginRequest{Email: "nope", Password: "Secret#123"}, wantKey: "email"},
		{name: "missing password", req: auth.LoginRequest{Email: "alice@example.com"}, wantKey: "password"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateLogin(tt.req)
			if tt.wantKey == "" {
				assert.Nil(t, errs)
			} else {
				require.NotNil(t, errs)
				assert.Contains(t, errs, tt.wantKey)
			}
		})
	}
}
