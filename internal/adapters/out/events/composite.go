package events

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"fooddelivery/internal/core/ports"
)

var _ ports.EventPublisher = &CompositePublisher{}

// Sink is a named downstream publisher.
type Sink struct {
	Name      string
	Publisher ports.EventPublisher
}

// CompositePublisher delivers every event to all sinks. A failing sink is
// logged and reported, but never prevents delivery to the others.
type CompositePublisher struct {
	sinks  []Sink
	logger *slog.Logger
}

func NewCompositePublisher(logger *slog.Logger, sinks ...Sink) *CompositePublisher {
	return &CompositePublisher{
		sinks:  sinks,
		logger: logger.With("component", "event_publisher"),
	}
}

func (p *CompositePublisher) Publish(ctx context.Context, event ports.Event) error {
	var errList []error
	for _, s := range p.sinks {
		if err := s.Publisher.Publish(ctx, event); err != nil {
			p.logger.WarnContext(ctx, "Event sink failed", "sink", s.Name, "type", event.Type, "error", err)
			errList = append(errList, fmt.Errorf("%s: %w", s.Name, err))
		}
	}
	return errors.Join(errList...)
}
