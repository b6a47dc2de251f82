package workflow

import (
	"context"
	"fmt"
	"time"

	"copydesk/internal/store"
)

// ScheduleBatch assigns staggered future publish timestamps to a batch of
// approved items and transitions them to scheduled.
//
// Items are processed in the order given. A running cursor starts at start;
// each approved item receives the current cursor value and advances it by
// intervalDays days. Items that are not currently approved are skipped
// silently and the cursor does not advance for them, so assigned timestamps
// stay strictly increasing with exactly intervalDays between consecutive
// scheduled items.
//
// The returned count is the number of items actually transitioned. One
// aggregate notification reports that count.
func (e *Engine) ScheduleBatch(ctx context.Context, itemIDs []string, start time.Time, intervalDays int, actor store.User) (int, error) {
	if actor.Role != store.RoleEditor {
		return 0, fmt.Errorf("%w: bulk scheduling requires an editor", ErrUnauthorized)
	}
	if intervalDays <= 0 {
		return 0, fmt.Errorf("%w: %d days", ErrInvalidInterval, intervalDays)
	}
	if start.IsZero() {
		return 0, ErrInvalidStartDate
	}

	cursor := start.UTC()
	count := 0
	for _, id := range itemIDs {
		item, err := e.store.GetItem(ctx, id)
		if err != nil {
			return count, err
		}
		if item == nil || item.Status != store.StatusApproved {
			continue
		}

		when := cursor
		item.Status = store.StatusScheduled
		item.ScheduledFor = &when
		if _, err := e.store.UpdateItem(ctx, item); err != nil {
			return count, err
		}
		count++
		cursor = cursor.AddDate(0, 0, intervalDays)
	}

	e.logger.Info("bulk schedule applied",
		"requested", len(itemIDs), "scheduled", count, "start", start.UTC(), "interval_days", intervalDays)
	e.center.Scheduled(ctx, count)
	return count, nil
}
