package validation

import (
	"strings"
	"testing"

	domainerrors "warden/internal/domain/errors"

	"github.com/stretchr/testify/assert"
)

const (
	validName     = "Valid Name"
	validLogin    = "test@example.com"
	validPassword = "password123"
)

func TestValidateCredentials_Valid(t *testing.T) {
	assert.NoError(t, ValidateCredentials(validName, validLogin, validPassword))
}

func TestValidateName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"empty", "", domainerrors.ErrEmptyName},
		{"blank", "   ", domainerrors.ErrEmptyName},
		{"tabs and newlines", "\t\n", domainerrors.ErrEmptyName},
		{"two characters", "Jo", domainerrors.ErrNameTooShort},
		{"three characters", "Joe", nil},
		{"multibyte three characters", "山田太", nil},
		{"padded short name", " J ", nil},
		{"long name", "Valid Name", nil},
		{"column width", strings.Repeat("n", MaxNameLength), nil},
		{"over column width", strings.Repeat("n", MaxNameLength+1), domainerrors.ErrNameTooLong},
		{"multibyte at column width", strings.Repeat("山", MaxNameLength), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateName(tt.input)
			if tt.wantErr == nil {
				assert.NoError(t, err)

				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidateLogin(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"a@b", true},
		{"valid@example.com", true},
		{"first.last+tag@sub.example.org", true},
		{"user@host@extra", true},
		{"no-at-sign", false},
		{"", false},
		{"@example.com", false},
		{"user@", false},
		{"@", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			err := ValidateLogin(tt.input)
			if tt.valid {
				assert.NoError(t, err)

				return
			}
			assert.ErrorIs(t, err, domainerrors.ErrInvalidEmailFormat)
		})
	}
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"empty", "", domainerrors.ErrPasswordTooShort},
		{"seven characters", "1234567", domainerrors.ErrPasswordTooShort},
		{"eight characters", "12345678", nil},
		{"short", "short", domainerrors.ErrPasswordTooShort},
		{"seventy-two bytes", strings.Repeat("a", 72), nil},
		{"seventy-three bytes", strings.Repeat("a", 73), domainerrors.ErrPasswordTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePassword(tt.input)
			if tt.wantErr == nil {
				assert.NoError(t, err)

				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidateCredentials_FailFastOrder(t *testing.T) {
	// Every field is invalid: the name error wins.
	assert.ErrorIs(t, ValidateCredentials("", "no-at-sign", "short"), domainerrors.ErrEmptyName)
	// Name valid, login and password invalid: the login error wins.
	assert.ErrorIs(t, ValidateCredentials(validName, "no-at-sign", "short"), domainerrors.ErrInvalidEmailFormat)
	// Only the password is invalid.
	assert.ErrorIs(t, ValidateCredentials(validName, validLogin, "short"), domainerrors.ErrPasswordTooShort)
	// Empty login fails.
	assert.ErrorIs(t, ValidateCredentials(validName, "", validPassword), domainerrors.ErrInvalidEmailFormat)
}

func TestValidateLogin_Length(t *testing.T) {
	atLimit := strings.Repeat("a", MaxLoginLength-len("@b")) + "@b"
	assert.NoError(t, ValidateLogin(atLimit))
	assert.ErrorIs(t, ValidateLogin("a"+atLimit), domainerrors.ErrLoginTooLong)
	assert.ErrorIs(t, ValidateLogin(strings.Repeat("a", MaxLoginLength+1)), domainerrors.ErrInvalidEmailFormat)
}
