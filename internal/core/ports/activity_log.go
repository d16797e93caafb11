package ports

import (
	"context"
	"time"
)

// ActivityEntry is one human readable line of the administrator's log.
type ActivityEntry struct {
	At   time.Time
	Text string
}

// ActivityLog is an append-only record of business events.
type ActivityLog interface {
	Append(ctx context.Context, entry ActivityEntry) error
	List(ctx context.Context) ([]ActivityEntry, error)
}
