package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/osse101/EmberForge_Go/internal/domain"
	"github.com/osse101/EmberForge_Go/internal/logger"
)

// SafeRollback rolls back a transaction and logs any error that isn't ErrTxClosed
func SafeRollback(ctx context.Context, tx pgx.Tx) {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		logger.FromContext(ctx).Error("Failed to rollback transaction", "error", err)
	}
}

// parseProfileUUID parses a profile id; malformed ids cannot name a stored
// profile, so they report not found
func parseProfileUUID(profileID string) (uuid.UUID, error) {
	u, err := uuid.Parse(profileID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %s", domain.ErrProfileNotFound, profileID)
	}
	return u, nil
}

// nullableUUID maps "" to SQL NULL
func nullableUUID(id string) (any, error) {
	if id == "" {
		return nil, nil
	}
	u, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("%w: instance id %q", domain.ErrInvalidEncoding, id)
	}
	return u, nil
}
