package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/palitools/paligloss/internal/domain"
)

// mapError converts database/sql errors to domain errors.
// context.DeadlineExceeded and context.Canceled pass through unmapped.
func mapError(err error, table string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s: %w", table, err)
	}
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s: %w", table, domain.ErrNotFound)
	}
	return fmt.Errorf("%s: %w", table, err)
}
