package memory

import (
	"context"
	"sync"

	"fooddelivery/internal/core/ports"
)

var _ ports.ActivityLog = &ActivityLog{}

// ActivityLog keeps the most recent entries, dropping the oldest beyond limit.
type ActivityLog struct {
	mu      sync.RWMutex
	limit   int
	entries []ports.ActivityEntry
}

// NewActivityLog creates a log holding at most limit entries; limit <= 0 means unbounded.
func NewActivityLog(limit int) *ActivityLog {
	return &ActivityLog{limit: limit}
}

func (l *ActivityLog) Append(_ context.Context, entry ports.ActivityEntry) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.entries = append(l.entries, entry)
	if l.limit > 0 && len(l.entries) > l.limit {
		l.entries = append([]ports.ActivityEntry(nil), l.entries[len(l.entries)-l.limit:]...)
	}
	return nil
}

// List returns entries oldest first.
func (l *ActivityLog) List(_ context.Context) ([]ports.ActivityEntry, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return append([]ports.ActivityEntry(nil), l.entries...), nil
}
