package commands

import (
	"context"

	"coffeebot/internal/domain/order"
)

// BaristaNotifier delivers the operator-facing notification for an admitted
// order. Best-effort: callers log and continue when it fails.
type BaristaNotifier interface {
	OrderAccepted(ctx context.Context, rec *order.Record, ordinal, limit int) error
}
