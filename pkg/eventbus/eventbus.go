package eventbus

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Event is anything that can be published on the bus.
type Event interface {
	Name() string
}

// Listener handles a published event.
type Listener func(ctx context.Context, event Event) error

// Bus is a minimal in-process publish/subscribe bus. Listeners run in their
// own goroutine with a bounded context; a failing listener is logged and
// never propagates back to the publisher.
type Bus struct {
	listeners map[string][]Listener
	mu        sync.RWMutex
	logger    *zap.Logger

	// wg lets tests wait for in-flight listeners.
	wg sync.WaitGroup
}

func New(logger *zap.Logger) *Bus {
	return &Bus{
		listeners: make(map[string][]Listener),
		logger:    logger,
	}
}

// Subscribe registers a listener for the named event.
func (b *Bus) Subscribe(eventName string, listener Listener) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.listeners[eventName] = append(b.listeners[eventName], listener)
}

// Publish dispatches the event to every subscriber asynchronously.
func (b *Bus) Publish(ctx context.Context, event Event) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	eventName := event.Name()
	for _, listener := range b.listeners[eventName] {
		b.wg.Add(1)
		go func(l Listener) {
			defer b.wg.Done()
			// A listener must not outlive its usefulness; one minute is the
			// ceiling for any notification attempt.
			ctxWithTimeout, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
			defer cancel()

			if err := l(ctxWithTimeout, event); err != nil {
				b.logger.Error("event listener failed",
					zap.String("event", eventName),
					zap.Error(err),
				)
			}
		}(listener)
	}
}

// Wait blocks until all dispatched listeners have returned.
func (b *Bus) Wait() {
	b.wg.Wait()
}
