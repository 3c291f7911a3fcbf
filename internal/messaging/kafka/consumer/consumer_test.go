package consumer_test

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"testing"
	"time"

	"speed-hrm/internal/activitylog"
	activitylogMock "speed-hrm/internal/activitylog/mock"
	"speed-hrm/internal/events"
	"speed-hrm/internal/messaging/kafka/consumer"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

// scriptedReader hands out queued messages, then cancels the consumer.
type scriptedReader struct {
	msgs      []kafkago.Message
	committed []int64
	cancel    context.CancelFunc
}

func (r *scriptedReader) FetchMessage(ctx context.Context) (kafkago.Message, error) {
	if len(r.msgs) == 0 {
		r.cancel()
		return kafkago.Message{}, context.Canceled
	}
	msg := r.msgs[0]
	r.msgs = r.msgs[1:]
	return msg, nil
}

func (r *scriptedReader) CommitMessages(ctx context.Context, msgs ...kafkago.Message) error {
	for _, m := range msgs {
		r.committed = append(r.committed, m.Offset)
	}
	return nil
}

func TestMain(m *testing.M) {
	consumer.RetryBackoff = time.Millisecond
	os.Exit(m.Run())
}

func TestConsumeActivityLogged(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := activitylogMock.NewMockRepository(ctrl)

	good, _ := json.Marshal(events.ActivityLoggedEvent{
		EventType: events.ActivityLoggedEventType,
		Action:    "create",
		Module:    "department",
		Status:    "success",
	})
	failing, _ := json.Marshal(events.ActivityLoggedEvent{Module: "bonus", Status: "success"})

	ctx, cancel := context.WithCancel(context.Background())
	reader := &scriptedReader{
		msgs: []kafkago.Message{
			{Offset: 1, Value: good},
			{Offset: 2, Value: []byte("not json")},
			{Offset: 3, Value: failing},
		},
		cancel: cancel,
	}

	gomock.InOrder(
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, row *activitylog.ActivityLog) error {
			assert.Equal(t, "department", row.Module)
			return nil
		}),
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("db down")),
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, row *activitylog.ActivityLog) error {
			assert.Equal(t, []int64{1, 2}, reader.committed)
			assert.Equal(t, "bonus", row.Module)
			return nil
		}),
	)

	consumer.ConsumeActivityLogged(ctx, reader, repo, zap.NewNop())

	assert.Equal(t, []int64{1, 2, 3}, reader.committed)
}

func TestConsumeActivityLogged_StopDuringRetryLeavesOffset(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := activitylogMock.NewMockRepository(ctrl)

	payload, _ := json.Marshal(events.ActivityLoggedEvent{Module: "payroll", Status: "failed"})

	ctx, cancel := context.WithCancel(context.Background())
	reader := &scriptedReader{
		msgs:   []kafkago.Message{{Offset: 7, Value: payload}},
		cancel: cancel,
	}

	calls := 0
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, row *activitylog.ActivityLog) error {
		calls++
		if calls == 2 {
			cancel()
		}
		return errors.New("db down")
	}).Times(2)

	consumer.ConsumeActivityLogged(ctx, reader, repo, zap.NewNop())

	assert.Empty(t, reader.committed)
}
