package messagebus

import (
	"errors"
	"github.com/burenotti/go_imc/internal/domain"
	"log/slog"
)

type EventHandler func(event domain.Event) error

// MessageBus dispatches events to their handlers in registration order on
// the caller's goroutine.
type MessageBus struct {
	logger   *slog.Logger
	handlers map[string][]EventHandler
}

func New(logger *slog.Logger) *MessageBus {
	return &MessageBus{
		logger:   logger,
		handlers: make(map[string][]EventHandler),
	}
}

func (b *MessageBus) Register(eventType string, handler EventHandler) {
	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

// PublishEvents runs every handler even if some fail and returns the joined
// handler errors.
func (b *MessageBus) PublishEvents(events ...domain.Event) error {
	var errs []error
	for _, event := range events {
		for _, handler := range b.handlers[event.Type()] {
			if err := handler(event); err != nil {
				b.logger.Error("failed to handle event", "type", event.Type(), "err", err)
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}
