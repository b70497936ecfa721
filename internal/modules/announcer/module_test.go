package announcer

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cjrsolutions/cjrweb/internal/catalog"
	"github.com/cjrsolutions/cjrweb/internal/config"
	"github.com/cjrsolutions/cjrweb/internal/contact"
	"github.com/cjrsolutions/cjrweb/internal/pubsub"
	"github.com/cjrsolutions/cjrweb/internal/registry"
)

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

func TestAnnouncerWritesAuditRecords(t *testing.T) {
	bus := pubsub.NewWatermillBridge()
	defer bus.Close()

	var out syncBuffer
	m := New(Dependencies{Subscriber: bus, Logger: slog.New(slog.NewJSONHandler(&out, nil))})

	ctx := context.Background()
	require.NoError(t, m.Boot(ctx, nil, registry.New(&config.Config{})))
	defer m.Shutdown(ctx)

	require.NoError(t, pubsub.Publish(ctx, bus, contact.Submitted, "visitor-1", contact.SubmittedEvent{
		VisitorID: "visitor-1",
		Service:   "Metalmecánica",
		Delivery:  "mailto",
		HandedOff: true,
		At:        time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}))
	require.NoError(t, pubsub.Publish(ctx, bus, catalog.Reloaded, pubsub.SourceSystem, catalog.ReloadedEvent{
		Path:     "/etc/cjr/catalog.yaml",
		Services: 9,
	}))

	require.Eventually(t, func() bool {
		s := out.String()
		return strings.Contains(s, `"msg":"contact submitted"`) && strings.Contains(s, `"msg":"catalog reloaded"`)
	}, 2*time.Second, 10*time.Millisecond)

	s := out.String()
	assert.Contains(t, s, `"component":"audit"`)
	assert.Contains(t, s, `"service":"Metalmecánica"`)
	assert.Contains(t, s, `"services":9`)
	assert.NotContains(t, s, "ana@example.com")
}
