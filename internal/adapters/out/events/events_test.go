package events_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"fooddelivery/internal/adapters/out/events"
	"fooddelivery/internal/adapters/out/memory"
	"fooddelivery/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockPublisher struct{ mock.Mock }

func (m *MockPublisher) Publish(ctx context.Context, event ports.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

var claimed = ports.Event{
	Type:       ports.OrderClaimed,
	OrderID:    "9b2f6c1e-aaaa-bbbb-cccc-000000000001",
	Actor:      "shipper1",
	Status:     "ACCEPTED_BY_SHIPPER",
	Message:    "order claimed",
	OccurredAt: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
}

func TestCompositePublisher(t *testing.T) {
	ctx := t.Context()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("should deliver to every sink even when one fails", func(t *testing.T) {
		failing, healthy := new(MockPublisher), new(MockPublisher)
		boom := errors.New("broker down")
		failing.On("Publish", ctx, claimed).Return(boom).Once()
		healthy.On("Publish", ctx, claimed).Return(nil).Once()
		publisher := events.NewCompositePublisher(logger,
			events.Sink{Name: "kafka", Publisher: failing},
			events.Sink{Name: "metrics", Publisher: healthy},
		)

		err := publisher.Publish(ctx, claimed)

		require.ErrorIs(t, err, boom)
		assert.ErrorContains(t, err, "kafka")
		failing.AssertExpectations(t)
		healthy.AssertExpectations(t)
	})

	t.Run("should succeed without sinks", func(t *testing.T) {
		assert.NoError(t, events.NewCompositePublisher(logger).Publish(ctx, claimed))
	})
}

func TestActivityRecorder(t *testing.T) {
	ctx := t.Context()
	log := memory.NewActivityLog(0)
	recorder := events.NewActivityRecorder(log)

	require.NoError(t, recorder.Publish(ctx, claimed))
	require.NoError(t, recorder.Publish(ctx, ports.Event{Type: ports.UserDeleted, Subject: "customer9", Actor: "admin"}))

	entries, err := log.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "order.claimed [9b2f6c] shipper1: order claimed", entries[0].Text)
	assert.Equal(t, claimed.OccurredAt, entries[0].At)
	assert.Equal(t, "user.deleted [customer9] admin", entries[1].Text)
}
