package kafka

import (
	"context"
)

// Producer publishes records to a single topic.
type Producer interface {
	Send(ctx context.Context, msg Message) error
}
