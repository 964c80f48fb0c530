package postgres

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Helper functions for PostgreSQL error checking
func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	// pgx surfaces SQLSTATE 23505 for unique_violation when the GORM
	// translator is not active.
	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "23505") ||
		strings.Contains(errMsg, "duplicate key")
}

func isForeignKeyConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}

	// SQLSTATE 23503 is foreign_key_violation.
	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "23503")
}

func isCheckConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrCheckConstraintViolated) {
		return true
	}

	// SQLSTATE 23514 is check_violation.
	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "23514")
}
