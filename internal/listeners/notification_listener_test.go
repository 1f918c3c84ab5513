package listeners

import (
	"context"
	"sync"
	"testing"

	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"requestquote/internal/dto"
	"requestquote/internal/events"
	"requestquote/pkg/eventbus"
)

type captureNotifier struct {
	mu       sync.Mutex
	messages []string
}

func (c *captureNotifier) NotifyAdmin(_ context.Context, text string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.messages = append(c.messages, text)
	return nil
}

func submittedEvent() events.QuoteSubmittedEvent {
	return events.QuoteSubmittedEvent{Quote: dto.QuoteDTO{
		ID:          1,
		ProductID:   42,
		ProductName: "Pallet Rack System",
		ClientName:  "Jane Smith",
		Email:       "jane@example.com",
		Phone:       null.StringFrom("+12345678901"),
		Note:        null.StringFrom("need 20 units"),
		CreatedAt:   "2026-01-15 10:30:00",
	}}
}

func TestNotificationListener_FormatsMessage(t *testing.T) {
	notifier := &captureNotifier{}
	bus := eventbus.New(zap.NewNop())
	NewNotificationListener(notifier, zap.NewNop()).Register(bus)

	bus.Publish(context.Background(), submittedEvent())
	bus.Wait()

	notifier.mu.Lock()
	defer notifier.mu.Unlock()
	require.Len(t, notifier.messages, 1)
	msg := notifier.messages[0]
	assert.Contains(t, msg, "New quote request received:")
	assert.Contains(t, msg, "Client: Jane Smith")
	assert.Contains(t, msg, "Email: jane@example.com")
	assert.Contains(t, msg, "Phone: +12345678901")
	assert.Contains(t, msg, "Product: Pallet Rack System (ID: 42)")
	assert.Contains(t, msg, "Note: need 20 units")
	assert.Contains(t, msg, "Date: 2026-01-15 10:30:00")
}

func TestNotificationListener_PlaceholdersForEmptyOptionals(t *testing.T) {
	notifier := &captureNotifier{}
	bus := eventbus.New(zap.NewNop())
	NewNotificationListener(notifier, zap.NewNop()).Register(bus)

	event := submittedEvent()
	event.Quote.Phone = null.String{}
	event.Quote.Note = null.String{}

	bus.Publish(context.Background(), event)
	bus.Wait()

	notifier.mu.Lock()
	defer notifier.mu.Unlock()
	require.Len(t, notifier.messages, 1)
	assert.Contains(t, notifier.messages[0], "Phone: N/A")
	assert.Contains(t, notifier.messages[0], "Note: -")
}
