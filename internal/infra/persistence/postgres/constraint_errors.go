package postgres

import (
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"warden/internal/errors"
)

// Helper functions for PostgreSQL error checking.
// GORM only translates driver errors when TranslateError is enabled, so the
// SQLSTATE on the underlying *pgconn.PgError is checked as well.

func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	return hasSQLState(err, pgerrcode.UniqueViolation)
}

func isNotNullConstraintViolation(err error) bool {
	return hasSQLState(err, pgerrcode.NotNullViolation)
}

func isCheckConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrCheckConstraintViolated) {
		return true
	}

	return hasSQLState(err, pgerrcode.CheckViolation)
}

func hasSQLState(err error, code string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	return pgErr.Code == code
}
