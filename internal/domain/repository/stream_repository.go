package repository

import (
	"context"

	"github.com/hatamimatt/SCDOT-BufferWidget/internal/domain"
)

// StreamRepository wraps the Redis Streams used for async intersection runs.
type StreamRepository interface {
	// CreateConsumerGroup creates the consumer group, tolerating an existing one.
	CreateConsumerGroup(ctx context.Context, stream, group string) error

	// ConsumeStream reads messages via the consumer group and delivers them on
	// the returned channel until the context is cancelled.
	ConsumeStream(ctx context.Context, stream, group, consumer string) (<-chan domain.StreamMessage, error)

	// AckMessage acknowledges a processed message.
	AckMessage(ctx context.Context, stream, group, messageID string) error

	// PublishToStream JSON-encodes data and appends it to the stream.
	PublishToStream(ctx context.Context, stream string, data interface{}) error
}
