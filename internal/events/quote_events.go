package events

import "requestquote/internal/dto"

// QuoteSubmittedEvent fires after a quote request row has been written.
// Listeners must treat it as best-effort: the submission has already
// succeeded by the time this is published.
type QuoteSubmittedEvent struct {
	Quote dto.QuoteDTO
}

func (e QuoteSubmittedEvent) Name() string {
	return "quote.submitted"
}
