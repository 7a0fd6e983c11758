// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"warden/internal/domain/entity"
	domainerrors "warden/internal/domain/errors"
	"warden/internal/domain/repository"
	"warden/internal/errors"
	"warden/internal/infra/persistence/model"

	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// accountRepository implements the repository.AccountRepository interface using GORM.
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository is the constructor for accountRepository.
func NewAccountRepository(db *gorm.DB) repository.AccountRepository {
	return &accountRepository{db: db}
}

// FindByLogin retrieves an account by login. The lookup always goes to the primary
// so an account registered a moment ago is never hidden by replica lag.
func (repo *accountRepository) FindByLogin(ctx context.Context, login string) (*entity.Account, error) {
	var accountM model.AccountModel
	err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("login = ?", login).
		Take(&accountM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account by login")
	}

	return toAccountDomain(&accountM), nil
}

// Save inserts a new account. The primary key on login makes the existence check
// and the insert a single atomic step.
func (repo *accountRepository) Save(ctx context.Context, account *entity.Account) (*entity.Account, error) {
	accountM := fromAccountDomain(account)

	if err := repo.db.WithContext(ctx).Create(accountM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return nil, domainerrors.ErrAccountAlreadyExists.WrapMessage("login already exists")
		}
		if isNotNullConstraintViolation(err) || isCheckConstraintViolation(err) {
			return nil, domainerrors.ErrAccountCreationFailed.WrapMessage("account violates table constraints")
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to create account")
	}

	return toAccountDomain(accountM), nil
}

// FindAll returns all accounts, oldest first.
func (repo *accountRepository) FindAll(ctx context.Context) ([]*entity.Account, error) {
	var accountModels []*model.AccountModel
	if err := repo.db.WithContext(ctx).Order("created_at ASC").Find(&accountModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list accounts")
	}

	accounts := make([]*entity.Account, 0, len(accountModels))
	for _, accountM := range accountModels {
		accounts = append(accounts, toAccountDomain(accountM))
	}

	return accounts, nil
}

// --- Mapper Functions ---

// toAccountDomain converts a GORM AccountModel to a domain Account entity.
func toAccountDomain(data *model.AccountModel) *entity.Account {
	if data == nil {
		return nil
	}

	return &entity.Account{
		Login:        data.Login,
		Name:         data.Name,
		PasswordHash: data.PasswordHash,
		Role:         entity.Role(data.Role),
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// fromAccountDomain converts a domain Account entity to a GORM AccountModel.
func fromAccountDomain(data *entity.Account) *model.AccountModel {
	if data == nil {
		return nil
	}

	return &model.AccountModel{
		Login:        data.Login,
		Name:         data.Name,
		PasswordHash: data.PasswordHash,
		Role:         data.Role.String(),
	}
}
