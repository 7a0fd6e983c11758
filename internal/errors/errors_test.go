package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

type codedError struct{ code string }

func (e *codedError) Error() string { return e.code }

func TestWrapKeepsChain(t *testing.T) {
	base := New("connection reset")

	wrapped := Wrapf(Wrap(base, "find account"), "login %s", "a@b")

	assert.True(t, Is(wrapped, base))
	assert.Equal(t, "login a@b: find account: connection reset", wrapped.Error())
}

func TestAsFindsTypedError(t *testing.T) {
	err := WithStack(&codedError{code: "E1"})

	var target *codedError
	assert.True(t, As(err, &target))
	assert.Equal(t, "E1", target.code)
}

func TestNilPassthrough(t *testing.T) {
	assert.NoError(t, Wrap(nil, "ignored"))
	assert.NoError(t, Wrapf(nil, "ignored %d", 1))
	assert.NoError(t, WithStack(nil))
}

func TestErrorfCarriesStack(t *testing.T) {
	err := Errorf("unknown store driver %q", "sqlite")

	assert.Equal(t, `unknown store driver "sqlite"`, err.Error())
	assert.Contains(t, fmt.Sprintf("%+v", err), "TestErrorfCarriesStack")
}
