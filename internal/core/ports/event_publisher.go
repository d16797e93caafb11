package ports

import (
	"context"
	"time"
)

// EventType names a business event emitted after a successful operation.
type EventType string

const (
	OrderPlaced          EventType = "order.placed"
	OrderStatusChanged   EventType = "order.status_changed"
	OrderClaimed         EventType = "order.claimed"
	OrderRated           EventType = "order.rated"
	OrderMessagePosted   EventType = "order.message_posted"
	OrderComplaintFiled  EventType = "order.complaint_attached"
	OrderComplaintClosed EventType = "order.complaint_resolved"
	ComplaintFiled       EventType = "complaint.filed"
	ComplaintResolved    EventType = "complaint.resolved"
	CatalogChanged       EventType = "catalog.changed"
	UserRegistered       EventType = "user.registered"
	UserUpdated          EventType = "user.updated"
	UserDeleted          EventType = "user.deleted"
)

// Event is the payload every sink receives. Fields that do not apply to an
// event type are left empty.
type Event struct {
	Type       EventType `json:"type"`
	OrderID    string    `json:"order_id,omitempty"`
	Actor      string    `json:"actor,omitempty"`
	Status     string    `json:"status,omitempty"`
	Total      string    `json:"total,omitempty"`
	Subject    string    `json:"subject,omitempty"`
	Message    string    `json:"message"`
	OccurredAt time.Time `json:"occurred_at"`
}

// EventPublisher delivers events to downstream sinks. Publishing happens after
// state has been stored; a failure is reported but never undoes the change.
type EventPublisher interface {
	Publish(ctx context.Context, event Event) error
}
