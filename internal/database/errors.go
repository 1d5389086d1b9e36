package database

import (
	"errors"
	"fmt"

	"github.com/SergeyKozhin/event-reminder-backend/internal/model"
	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
)

const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
)

// MapError converts pgx errors to model errors and wraps the rest.
func MapError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return model.ErrNoRecord
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolation:
			return fmt.Errorf("%v: %w", pgErr.ConstraintName, model.ErrAlreadyExists)
		case foreignKeyViolation:
			return fmt.Errorf("%v: %w", pgErr.ConstraintName, model.ErrNoRecord)
		}
	}

	return fmt.Errorf("SQL request: %w", err)
}
