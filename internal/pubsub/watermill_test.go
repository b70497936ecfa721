package pubsub

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pingPayload struct {
	Count int `json:"count"`
}

var testPing = NewEvent[pingPayload]("test.ping", "used by the pubsub tests")

func TestWatermillBridge_RoundTrip(t *testing.T) {
	bridge := NewWatermillBridge()
	defer bridge.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	received := make(chan Message, 1)
	err := bridge.Subscribe(ctx, "test.topic", func(ctx context.Context, msg Message) error {
		received <- msg
		return nil
	})
	require.NoError(t, err)

	err = bridge.Publish(ctx, Message{
		Topic:    "test.topic",
		Source:   "visitor-1",
		Payload:  []byte(`{"hello":"world"}`),
		Metadata: map[string]string{"request_id": "req-1"},
	})
	require.NoError(t, err)

	select {
	case msg := <-received:
		assert.Equal(t, "test.topic", msg.Topic)
		assert.Equal(t, "visitor-1", msg.Source)
		assert.JSONEq(t, `{"hello":"world"}`, string(msg.Payload))
		assert.Equal(t, "req-1", msg.Metadata["request_id"])
		assert.NotContains(t, msg.Metadata, metaKeyTopic)
	case <-time.After(2 * time.Second):
		t.Fatal("message was not delivered")
	}
}

func TestTypedEvents(t *testing.T) {
	bridge := NewWatermillBridge()
	defer bridge.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	got := make(chan pingPayload, 1)
	require.NoError(t, Subscribe(ctx, bridge, testPing, func(ctx context.Context, source string, p pingPayload) error {
		assert.Equal(t, SourceSystem, source)
		got <- p
		return nil
	}))

	require.NoError(t, Publish(ctx, bridge, testPing, SourceSystem, pingPayload{Count: 3}))

	select {
	case p := <-got:
		assert.Equal(t, 3, p.Count)
	case <-time.After(2 * time.Second):
		t.Fatal("typed event was not delivered")
	}

	t.Run("declared events are listed", func(t *testing.T) {
		assert.Contains(t, Events(), EventInfo{Name: "test.ping", Description: "used by the pubsub tests"})
	})

	t.Run("declaring a name twice panics", func(t *testing.T) {
		assert.Panics(t, func() { NewEvent[pingPayload]("test.ping", "again") })
	})
}

func TestWatermillBridge_FailedMessageIsNotRedelivered(t *testing.T) {
	var logs syncBuffer
	bridge := NewWatermillBridgeWithLogger(slog.New(slog.NewTextHandler(&logs, nil)))
	defer bridge.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var calls atomic.Int32
	require.NoError(t, bridge.Subscribe(ctx, "test.poison", func(ctx context.Context, msg Message) error {
		calls.Add(1)
		return errors.New("cannot decode")
	}))
	require.NoError(t, bridge.Publish(ctx, Message{Topic: "test.poison", Source: SourceSystem, Payload: []byte("{")}))

	require.Eventually(t, func() bool {
		return strings.Contains(logs.String(), "dropping it")
	}, 2*time.Second, 10*time.Millisecond)

	time.Sleep(100 * time.Millisecond)
	assert.EqualValues(t, 1, calls.Load())
}

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}
