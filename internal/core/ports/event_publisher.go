package ports

import "context"

// EventPublisher delivers authentication events to an external broker.
// Delivery is best-effort: callers log failures but never fail the operation
// that triggered the event.
type EventPublisher interface {
	Publish(ctx context.Context, topic string, payload map[string]string) error
}
