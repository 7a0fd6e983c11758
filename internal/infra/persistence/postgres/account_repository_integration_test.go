//go:build integration

package postgres

import (
	"context"
	"database/sql"
	"sync"
	"testing"
	"time"

	"warden/internal/domain/entity"
	domainerrors "warden/internal/domain/errors"
	"warden/internal/domain/repository"
	"warden/internal/infra/persistence/migrations"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupAccountRepository(t *testing.T) repository.AccountRepository {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	t.Cleanup(cancel)

	container, err := tcpostgres.Run(ctx,
		"postgres:18-alpine",
		tcpostgres.WithDatabase("warden_test"),
		tcpostgres.WithUsername("warden"),
		tcpostgres.WithPassword("warden"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := gorm.Open(gormpostgres.Open(connStr), &gorm.Config{})
	require.NoError(t, err)

	var sqlDB *sql.DB
	sqlDB, err = db.DB()
	require.NoError(t, err)
	require.NoError(t, migrations.Up(ctx, sqlDB))

	return NewAccountRepository(db)
}

func TestAccountRepository_Integration(t *testing.T) {
	repo := setupAccountRepository(t)
	ctx := context.Background()

	_, err := repo.FindByLogin(ctx, "test@example.com")
	require.ErrorIs(t, err, repository.ErrAccountNotFound)

	saved, err := repo.Save(ctx, &entity.Account{
		Login:        "test@example.com",
		Name:         "Test User",
		PasswordHash: "$2a$10$hash",
		Role:         entity.RoleUser,
	})
	require.NoError(t, err)
	assert.False(t, saved.CreatedAt.IsZero())

	found, err := repo.FindByLogin(ctx, "test@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Test User", found.Name)
	assert.Equal(t, entity.RoleUser, found.Role)

	// Logins are case-sensitive.
	_, err = repo.FindByLogin(ctx, "TEST@example.com")
	require.ErrorIs(t, err, repository.ErrAccountNotFound)

	_, err = repo.Save(ctx, &entity.Account{Login: "test@example.com", Name: "Dup", PasswordHash: "x", Role: entity.RoleUser})
	require.ErrorIs(t, err, domainerrors.ErrAccountAlreadyExists)

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Test User", all[0].Name)
}

func TestAccountRepository_ConcurrentSaveSameLogin(t *testing.T) {
	repo := setupAccountRepository(t)
	ctx := context.Background()

	const workers = 8
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
		conflicts int
	)
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.Save(ctx, &entity.Account{Login: "race@example.com", Name: "Racer", PasswordHash: "x", Role: entity.RoleUser})
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				successes++

				return
			}
			assert.ErrorIs(t, err, domainerrors.ErrAccountAlreadyExists)
			conflicts++
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, successes)
	assert.Equal(t, workers-1, conflicts)
}
