// Package memory provides an in-process account store for tests and single-node runs.
package memory

import (
	"cmp"
	"context"
	"slices"
	"sync"
	"time"

	"warden/internal/domain/entity"
	domainerrors "warden/internal/domain/errors"
	"warden/internal/domain/repository"
)

type accountRepository struct {
	mu       sync.RWMutex
	accounts map[string]*entity.Account
	now      func() time.Time
}

// NewAccountRepository returns an empty map-backed repository.AccountRepository.
func NewAccountRepository() repository.AccountRepository {
	return &accountRepository{
		accounts: make(map[string]*entity.Account),
		now:      time.Now,
	}
}

func (repo *accountRepository) FindByLogin(ctx context.Context, login string) (*entity.Account, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	repo.mu.RLock()
	defer repo.mu.RUnlock()

	account, ok := repo.accounts[login]
	if !ok {
		return nil, repository.ErrAccountNotFound
	}

	return account.Clone(), nil
}

// Save checks and inserts under one write lock.
func (repo *accountRepository) Save(ctx context.Context, account *entity.Account) (*entity.Account, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if account == nil {
		return nil, domainerrors.ErrAccountCreationFailed.WrapMessage("account is nil")
	}

	repo.mu.Lock()
	defer repo.mu.Unlock()

	if _, exists := repo.accounts[account.Login]; exists {
		return nil, domainerrors.ErrAccountAlreadyExists.WrapMessage("login already exists")
	}

	stored := account.Clone()
	now := repo.now().UTC()
	stored.CreatedAt = now
	stored.UpdatedAt = now
	repo.accounts[stored.Login] = stored

	return stored.Clone(), nil
}

func (repo *accountRepository) FindAll(ctx context.Context) ([]*entity.Account, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	repo.mu.RLock()
	accounts := make([]*entity.Account, 0, len(repo.accounts))
	for _, account := range repo.accounts {
		accounts = append(accounts, account.Clone())
	}
	repo.mu.RUnlock()

	slices.SortFunc(accounts, func(a, b *entity.Account) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}

		return cmp.Compare(a.Login, b.Login)
	})

	return accounts, nil
}
