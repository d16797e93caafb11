package websocket_test

import (
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"fooddelivery/internal/adapters/out/websocket"
	"fooddelivery/internal/core/ports"

	gorilla "github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dial(t *testing.T, server *httptest.Server, query string) *gorilla.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(server.URL, "http") + query
	conn, resp, err := gorilla.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	_ = resp.Body.Close()
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func TestHub_Publish(t *testing.T) {
	hub := websocket.NewHub(slog.New(slog.NewTextHandler(io.Discard, nil)))
	go hub.Run(t.Context())
	server := httptest.NewServer(hub)
	defer server.Close()

	all := dial(t, server, "")
	onlyB := dial(t, server, "?order=order-b")
	require.Eventually(t, func() bool { return hub.ClientCount() == 2 }, time.Second, 10*time.Millisecond)

	require.NoError(t, hub.Publish(t.Context(), ports.Event{
		Type:       ports.OrderStatusChanged,
		OrderID:    "order-a",
		Status:     "PREPARING",
		OccurredAt: time.Now(),
	}))
	require.NoError(t, hub.Publish(t.Context(), ports.Event{
		Type:       ports.OrderClaimed,
		OrderID:    "order-b",
		Actor:      "shipper1",
		OccurredAt: time.Now(),
	}))

	var msg websocket.Message
	require.NoError(t, all.SetReadDeadline(time.Now().Add(2*time.Second)))
	require.NoError(t, all.ReadJSON(&msg))
	assert.Equal(t, "order.status_changed", msg.Type)
	assert.Equal(t, "order-a", msg.Data.OrderID)

	require.NoError(t, onlyB.SetReadDeadline(time.Now().Add(2*time.Second)))
	require.NoError(t, onlyB.ReadJSON(&msg))
	assert.Equal(t, "order.claimed", msg.Type)
	assert.Equal(t, "shipper1", msg.Data.Actor)
}
