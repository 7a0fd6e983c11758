// Package validation enforces the structural rules an account must satisfy before it is created.
package validation

import (
	"regexp"
	"strings"
	"unicode/utf8"

	domainerrors "warden/internal/domain/errors"
)

const (
	// MinNameLength is the minimum display name length in characters.
	MinNameLength = 3
	// MaxNameLength matches the accounts.name column width.
	MaxNameLength = 100
	// MaxLoginLength matches the accounts.login column width.
	MaxLoginLength = 255
	// MinPasswordLength is the minimum password length in characters.
	MinPasswordLength = 8
	// MaxPasswordBytes is the longest password bcrypt accepts.
	MaxPasswordBytes = 72
)

// loginPattern accepts local-part@domain with at least one non-'@' character before the '@'.
var loginPattern = regexp.MustCompile(`^[^@]+@.+$`)

// ValidateCredentials checks name, login and password in that order and returns the
// first failure. It has no side effects.
func ValidateCredentials(name, login, password string) error {
	if err := ValidateName(name); err != nil {
		return err
	}
	if err := ValidateLogin(login); err != nil {
		return err
	}

	return ValidatePassword(password)
}

// ValidateName rejects blank names and names outside MinNameLength..MaxNameLength characters.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return domainerrors.ErrEmptyName
	}
	length := utf8.RuneCountInString(name)
	if length < MinNameLength {
		return domainerrors.ErrNameTooShort
	}
	if length > MaxNameLength {
		return domainerrors.ErrNameTooLong
	}

	return nil
}

// ValidateLogin performs a permissive local-part@domain shape check. It is not RFC 5322 validation.
func ValidateLogin(login string) error {
	if !loginPattern.MatchString(login) {
		return domainerrors.ErrInvalidEmailFormat
	}
	if utf8.RuneCountInString(login) > MaxLoginLength {
		return domainerrors.ErrLoginTooLong
	}

	return nil
}

// ValidatePassword rejects passwords shorter than MinPasswordLength characters
// or longer than MaxPasswordBytes bytes.
func ValidatePassword(password string) error {
	if utf8.RuneCountInString(password) < MinPasswordLength {
		return domainerrors.ErrPasswordTooShort
	}
	if len(password) > MaxPasswordBytes {
		return domainerrors.ErrPasswordTooLong
	}

	return nil
}
