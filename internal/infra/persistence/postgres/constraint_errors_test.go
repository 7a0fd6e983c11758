package postgres

import (
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"warden/internal/errors"
)

func TestIsUniqueConstraintViolation(t *testing.T) {
	pgErr := &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "accounts_pkey"}

	assert.True(t, isUniqueConstraintViolation(pgErr))
	assert.True(t, isUniqueConstraintViolation(fmt.Errorf("insert: %w", pgErr)))
	assert.True(t, isUniqueConstraintViolation(errors.Wrap(gorm.ErrDuplicatedKey, "create")))
	assert.False(t, isUniqueConstraintViolation(&pgconn.PgError{Code: pgerrcode.NotNullViolation}))
	assert.False(t, isUniqueConstraintViolation(errors.New("duplicate key value")))
}

func TestIsNotNullConstraintViolation(t *testing.T) {
	assert.True(t, isNotNullConstraintViolation(&pgconn.PgError{Code: pgerrcode.NotNullViolation}))
	assert.False(t, isNotNullConstraintViolation(&pgconn.PgError{Code: pgerrcode.UniqueViolation}))
	assert.False(t, isNotNullConstraintViolation(errors.New("null value")))
}

func TestIsCheckConstraintViolation(t *testing.T) {
	assert.True(t, isCheckConstraintViolation(&pgconn.PgError{Code: pgerrcode.CheckViolation}))
	assert.True(t, isCheckConstraintViolation(gorm.ErrCheckConstraintViolated))
	assert.False(t, isCheckConstraintViolation(gorm.ErrRecordNotFound))
}
