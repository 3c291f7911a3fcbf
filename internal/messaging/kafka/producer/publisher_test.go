package producer_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"speed-hrm/internal/events"
	"speed-hrm/internal/messaging/kafka/producer"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
)

type fakeWriter struct {
	msgs []kafkago.Message
	err  error
}

func (f *fakeWriter) WriteMessages(ctx context.Context, msgs ...kafkago.Message) error {
	f.msgs = append(f.msgs, msgs...)
	return f.err
}

func TestActivityPublisher(t *testing.T) {
	w := &fakeWriter{}
	pub := producer.NewActivityPublisher(w)

	ev := events.ActivityLoggedEvent{
		EventType: events.ActivityLoggedEventType,
		RequestID: "rid-9",
		Action:    "create",
		Module:    "bonus",
		Status:    "success",
		NewValues: json.RawMessage(`{"amount":"1000"}`),
	}

	assert.NoError(t, pub.PublishActivityLogged(context.Background(), ev))
	assert.Len(t, w.msgs, 1)

	msg := w.msgs[0]
	assert.Equal(t, events.ActivityLoggedTopic, msg.Topic)
	assert.Equal(t, "bonus", string(msg.Key))
	assert.Equal(t, "rid-9", string(msg.Headers[1].Value))

	var decoded events.ActivityLoggedEvent
	assert.NoError(t, json.Unmarshal(msg.Value, &decoded))
	assert.Equal(t, "create", decoded.Action)
	assert.JSONEq(t, `{"amount":"1000"}`, string(decoded.NewValues))

	w.err = errors.New("broker down")
	assert.Error(t, pub.PublishActivityLogged(context.Background(), ev))
}
