package events

import (
	"context"
	"fmt"

	"fooddelivery/internal/core/ports"
)

var _ ports.EventPublisher = &ActivityRecorder{}

// ActivityRecorder writes each event as a line of the administrator's
// activity log, e.g. "order.claimed [9b2f6c] shipper1: order claimed by shipper1".
type ActivityRecorder struct {
	log ports.ActivityLog
}

func NewActivityRecorder(log ports.ActivityLog) *ActivityRecorder {
	return &ActivityRecorder{log: log}
}

func (r *ActivityRecorder) Publish(ctx context.Context, event ports.Event) error {
	return r.log.Append(ctx, ports.ActivityEntry{At: event.OccurredAt, Text: Describe(event)})
}

// Describe renders the human readable activity line of an event.
func Describe(event ports.Event) string {
	subject := event.Subject
	if event.OrderID != "" {
		subject = event.OrderID
		if len(subject) > 6 {
			subject = subject[:6]
		}
	}

	line := string(event.Type)
	if subject != "" {
		line += fmt.Sprintf(" [%s]", subject)
	}
	if event.Actor != "" {
		line += " " + event.Actor
	}
	if event.Message != "" {
		line += ": " + event.Message
	}
	return line
}
