package order

import "time"

// Message is one chat line between the customer and the assigned shipper.
type Message struct {
	Sender string
	Text   string
	SentAt time.Time
}
