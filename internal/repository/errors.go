package repository

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"hbnb/internal/pkg/apperr"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// translateError maps storage errors onto the apperr kinds. Errors that
// already carry a kind pass through unchanged.
func translateError(err error, entity string) error {
	if err == nil {
		return nil
	}

	var appErr *apperr.Error
	switch {
	case errors.As(err, &appErr):
		return err
	case errors.Is(err, gorm.ErrRecordNotFound):
		return apperr.NotFound("%s not found", entity)
	case isUniqueViolation(err):
		return apperr.Conflict("%s already exists", entity)
	case isForeignKeyViolation(err):
		return apperr.NotFound("%s references a missing record", entity)
	default:
		return fmt.Errorf("%s: %w", entity, err)
	}
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") || strings.Contains(msg, "duplicate key")
}

func isForeignKeyViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgForeignKeyViolation
	}
	return strings.Contains(strings.ToLower(err.Error()), "foreign key constraint")
}

// column resolves a public attribute name to its column, rejecting
// anything outside the entity's whitelist.
func column(allowed map[string]string, name string) (string, error) {
	col, ok := allowed[strings.TrimSpace(name)]
	if !ok {
		return "", apperr.Invalid(name, "is not a searchable attribute")
	}
	return col, nil
}
