package validator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"warden/internal/errors"
)

type sample struct {
	Login string `validate:"max=5"`
	Role  string `validate:"omitempty,oneof=USER ADMIN"`
}

func TestCustomValidator_Validate(t *testing.T) {
	v := New()

	require.NoError(t, v.Validate(&sample{Login: "a@b"}))
	require.NoError(t, v.Validate(&sample{Login: "a@b", Role: "ADMIN"}))

	err := v.Validate(&sample{Login: strings.Repeat("x", 6), Role: "ROOT"})
	require.Error(t, err)
	assert.Equal(t, "Login: max=5; Role: oneof=USER ADMIN", Describe(err))
}

func TestDescribe_NonValidationError(t *testing.T) {
	assert.Equal(t, "boom", Describe(errors.New("boom")))
}
