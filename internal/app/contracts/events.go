package contracts

import "context"

type EventPublisher interface {
	Publish(ctx context.Context, event string, payload interface{}) error
}
