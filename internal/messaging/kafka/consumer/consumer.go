package consumer

import (
	"context"
	"encoding/json"
	"time"

	"speed-hrm/internal/activitylog"
	"speed-hrm/internal/events"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// MessageReader is the subset of *kafkago.Reader the consumer needs.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

// RetryBackoff is the pause between attempts to persist the same event.
var RetryBackoff = 2 * time.Second

// ConsumeActivityLogged persists activity events until ctx is cancelled.
// Undecodable messages are committed and skipped. A failed write is retried
// for the same message and its offset is committed only once the row is
// stored, so a shutdown mid-retry leaves it for redelivery.
func ConsumeActivityLogged(
	ctx context.Context,
	reader MessageReader,
	repo activitylog.Repository,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.activity_logged")
	log.Info("activity log consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("activity log consumer stopped")
				return
			}
			log.Error("fetch activity log message failed", zap.Error(err))
			continue
		}

		var event events.ActivityLoggedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode activity_logged event failed",
				zap.Int64("offset", msg.Offset),
				zap.Error(err),
			)
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		if !persist(ctx, repo, event, log) {
			log.Info("activity log consumer stopped before event was stored",
				zap.Int64("offset", msg.Offset),
			)
			return
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit activity log message failed", zap.Error(err))
			continue
		}

		log.Debug("activity log persisted from event",
			zap.String("request_id", event.RequestID),
			zap.String("module", event.Module),
			zap.String("action", event.Action),
		)
	}
}

func persist(ctx context.Context, repo activitylog.Repository, event events.ActivityLoggedEvent, log *zap.Logger) bool {
	for attempt := 1; ; attempt++ {
		err := repo.Create(ctx, activitylog.ModelFromEvent(event))
		if err == nil {
			return true
		}
		log.Error("persist activity log failed",
			zap.String("request_id", event.RequestID),
			zap.String("module", event.Module),
			zap.Int("attempt", attempt),
			zap.Error(err),
		)

		select {
		case <-ctx.Done():
			return false
		case <-time.After(RetryBackoff):
		}
	}
}
