package metrics

import (
	"context"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/ports"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var _ ports.EventPublisher = &Sink{}

// Sink turns business events into Prometheus series.
type Sink struct {
	events      *prometheus.CounterVec
	transitions *prometheus.CounterVec
	orderTotals prometheus.Histogram
}

// NewSink registers the fulfillment metrics on reg.
func NewSink(reg prometheus.Registerer) *Sink {
	factory := promauto.With(reg)
	return &Sink{
		events: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "food_delivery_events_total",
			Help: "Business events emitted by the fulfillment engine",
		}, []string{"type"}),
		transitions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "food_delivery_order_transitions_total",
			Help: "Order status transitions by target status",
		}, []string{"status"}),
		orderTotals: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "food_delivery_order_total_amount",
			Help:    "Totals of placed orders in currency units",
			Buckets: []float64{5, 10, 20, 50, 100, 200},
		}),
	}
}

func (s *Sink) Publish(_ context.Context, event ports.Event) error {
	s.events.WithLabelValues(string(event.Type)).Inc()

	switch event.Type {
	case ports.OrderStatusChanged, ports.OrderClaimed, ports.OrderPlaced:
		if event.Status != "" {
			s.transitions.WithLabelValues(event.Status).Inc()
		}
	default:
	}

	if event.Type == ports.OrderPlaced && event.Total != "" {
		total, err := kernel.ParseMoney(event.Total)
		if err != nil {
			return err
		}
		s.orderTotals.Observe(float64(total.Cents()) / 100)
	}
	return nil
}
