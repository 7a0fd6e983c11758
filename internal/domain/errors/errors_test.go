package errors

import (
	stderrors "errors"
	"net/http"
	"testing"

	"warden/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseError_WrapMessageKeepsIdentity(t *testing.T) {
	err := ErrAccountAlreadyExists.WrapMessage("register failed")

	assert.True(t, errors.Is(err, ErrAccountAlreadyExists))
	assert.False(t, errors.Is(err, ErrInvalidCredentials))
	assert.Contains(t, err.Error(), "register failed")

	var appErr AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusConflict, appErr.HTTPCode())
	assert.Equal(t, "ACCOUNT_ALREADY_EXISTS", appErr.ErrorCode())
}

func TestBaseError_WithDetailsMatchesOriginal(t *testing.T) {
	detailed := ErrNameTooShort.WithDetails("got 2 characters")

	assert.Equal(t, "got 2 characters", detailed.Details())
	assert.True(t, errors.Is(detailed, ErrNameTooShort))
	assert.True(t, IsValidationError(detailed))
	assert.Empty(t, ErrNameTooShort.Details())
}

func TestIsValidationError(t *testing.T) {
	for _, err := range []error{ErrEmptyName, ErrNameTooShort, ErrNameTooLong, ErrInvalidEmailFormat, ErrLoginTooLong, ErrPasswordTooShort, ErrPasswordTooLong, ErrInvalidRole} {
		assert.True(t, IsValidationError(err), err.Error())
		assert.True(t, IsValidationError(errors.Wrap(err, "wrapped")), err.Error())
		assert.Equal(t, http.StatusBadRequest, err.(AppError).HTTPCode())
	}

	assert.False(t, IsValidationError(ErrAccountAlreadyExists))
	assert.False(t, IsValidationError(ErrTokenExpired))
	assert.False(t, IsValidationError(stderrors.New("plain")))
	assert.False(t, IsValidationError(nil))
}

func TestIsTokenError(t *testing.T) {
	assert.True(t, IsTokenError(ErrTokenExpired))
	assert.True(t, IsTokenError(ErrTokenInvalid.WrapMessage("bad signature")))
	assert.False(t, IsTokenError(ErrInvalidCredentials))
}

func TestDatabaseExecuteError(t *testing.T) {
	cause := stderrors.New("connection reset")
	err := NewDatabaseExecuteError(cause, "failed to create account")

	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", err.ErrorCode())
	assert.Equal(t, "failed to create account", err.Details())
	assert.Contains(t, err.Error(), "connection reset")
	assert.True(t, errors.Is(err, cause))
}
