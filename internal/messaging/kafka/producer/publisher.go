package producer

import (
	"context"
	"encoding/json"
	"fmt"

	"speed-hrm/internal/events"

	kafkago "github.com/segmentio/kafka-go"
)

// MessageWriter is the subset of *kafkago.Writer the publisher needs.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafkago.Message) error
}

type ActivityPublisher struct {
	writer MessageWriter
}

func NewActivityPublisher(writer MessageWriter) *ActivityPublisher {
	return &ActivityPublisher{writer: writer}
}

// PublishActivityLogged keys messages by module so one module's entries stay
// ordered within a partition.
func (p *ActivityPublisher) PublishActivityLogged(ctx context.Context, event events.ActivityLoggedEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal activity event: %w", err)
	}

	return publishEvent(ctx, p.writer, kafkago.Message{
		Topic: events.ActivityLoggedTopic,
		Key:   []byte(event.Module),
		Value: payload,
		Headers: []kafkago.Header{
			{Key: "event_type", Value: []byte(event.EventType)},
			{Key: "request_id", Value: []byte(event.RequestID)},
		},
	})
}

func publishEvent(ctx context.Context, writer MessageWriter, msg kafkago.Message) error {
	return writer.WriteMessages(ctx, msg)
}
