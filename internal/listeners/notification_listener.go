package listeners

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"requestquote/internal/events"
	"requestquote/internal/services"
	"requestquote/pkg/eventbus"
)

// NotificationListener turns quote.submitted events into admin
// notifications. It runs off the request path; a delivery failure is logged
// by the bus and swallowed, never surfaced to the customer.
type NotificationListener struct {
	notificationService services.NotificationServiceInterface
	logger              *zap.Logger
}

func NewNotificationListener(
	notificationService services.NotificationServiceInterface,
	logger *zap.Logger,
) *NotificationListener {
	return &NotificationListener{
		notificationService: notificationService,
		logger:              logger,
	}
}

func (l *NotificationListener) Register(bus *eventbus.Bus) {
	bus.Subscribe("quote.submitted", l.handleQuoteSubmitted)
	l.logger.Info("NotificationListener subscribed to 'quote.submitted'")
}

func (l *NotificationListener) handleQuoteSubmitted(ctx context.Context, event eventbus.Event) error {
	submitted, ok := event.(events.QuoteSubmittedEvent)
	if !ok {
		return fmt.Errorf("unexpected event type for %q", event.Name())
	}

	quote := submitted.Quote

	phone := "N/A"
	if quote.Phone.Valid {
		phone = quote.Phone.String
	}
	note := "-"
	if quote.Note.Valid {
		note = quote.Note.String
	}

	var b strings.Builder
	b.WriteString("New quote request received:\n\n")
	fmt.Fprintf(&b, "Client: %s\n", quote.ClientName)
	fmt.Fprintf(&b, "Email: %s\n", quote.Email)
	fmt.Fprintf(&b, "Phone: %s\n", phone)
	fmt.Fprintf(&b, "Product: %s (ID: %d)\n", quote.ProductName, quote.ProductID)
	fmt.Fprintf(&b, "Note: %s\n", note)
	fmt.Fprintf(&b, "Date: %s\n", quote.CreatedAt)

	return l.notificationService.NotifyAdmin(ctx, b.String())
}
