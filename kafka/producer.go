package kafka

import (
	"context"

	"fitapi/models"
)

// ProducerAdapter implements the api producer interfaces using the writers above.
type ProducerAdapter struct{}

func (ProducerAdapter) PublishChat(ctx context.Context, msg models.ChatMessage) error {
	return PublishChat(ctx, msg)
}

func (ProducerAdapter) PublishActivity(ctx context.Context, ev models.ActivityEvent) error {
	return PublishActivity(ctx, ev)
}

func (ProducerAdapter) PublishDLQ(ctx context.Context, msg models.ChatMessage, reason string) error {
	return DLQWriter(ctx, msg, reason)
}
