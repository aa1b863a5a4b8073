package zone

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/imespro/reid-backend/internal/domain"
)

// DeleteZone detaches every user assigned to the zone and removes the zone,
// in one transaction. Users survive the delete with zone_id set to NULL.
func (s *Service) DeleteZone(ctx context.Context, zoneID string) error {
	if zoneID == "" {
		return domain.NewValidationError("zone_id", "required")
	}

	var cleared int64
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var clearErr error
		cleared, clearErr = s.users.ClearZone(txCtx, zoneID)
		if clearErr != nil {
			return fmt.Errorf("clear user references: %w", clearErr)
		}

		deleted, delErr := s.zones.Delete(txCtx, zoneID)
		if delErr != nil {
			return fmt.Errorf("delete zone: %w", delErr)
		}
		if !deleted {
			return fmt.Errorf("delete zone: zone %q: %w", zoneID, domain.ErrNotFound)
		}

		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "zone deleted",
		slog.String("zone_id", zoneID),
		slog.Int64("users_detached", cleared),
	)

	return nil
}
