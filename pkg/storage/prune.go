package storage

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// PruneRegistrations deletes the registration records fetched before t in a single
// transaction and returns how many were removed. With dryRun the transaction is
// rolled back, so only the count is reported.
func PruneRegistrations(ctx context.Context, s Storage, t time.Time, dryRun bool) (int64, error) {
	var deleted int64
	err := s.WithTx(ctx, func(tx AllStorage) error {
		n, err := tx.DeleteRegistrationsBefore(ctx, t)
		if err != nil {
			return err //nolint: wrapcheck
		}
		deleted = n
		if dryRun {
			return ErrDryRun
		}

		return nil
	})
	if err != nil && !errors.Is(err, ErrDryRun) {
		return 0, fmt.Errorf("could not prune registrations: %w", err)
	}

	return deleted, nil
}
