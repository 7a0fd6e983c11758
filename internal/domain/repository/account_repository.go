// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"warden/internal/domain/entity"
	"warden/internal/errors"
)

// ErrAccountNotFound is returned when no account exists for a login.
var ErrAccountNotFound = errors.New("account not found")

// AccountRepository defines the persistence operations for accounts.
//
// Save must make the uniqueness check and the insert atomic: when another account
// with the same login already exists it returns domainerrors.ErrAccountAlreadyExists
// and leaves the store untouched.
type AccountRepository interface {
	// FindByLogin retrieves a single account by its login. Returns ErrAccountNotFound when absent.
	FindByLogin(ctx context.Context, login string) (*entity.Account, error)

	// Save inserts a new account and returns it with store-assigned fields populated.
	Save(ctx context.Context, account *entity.Account) (*entity.Account, error)

	// FindAll returns every account ordered by creation time.
	FindAll(ctx context.Context) ([]*entity.Account, error)
}
