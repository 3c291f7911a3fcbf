package app

import (
	"speed-hrm/internal/activitylog"
	"speed-hrm/internal/config"
	"speed-hrm/internal/messaging/kafka/producer"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	sinkDB    = "db"
	sinkKafka = "kafka"
)

// newRecorder picks the activity log sink. The returned func flushes it on
// shutdown.
func newRecorder(cfg config.Config, db *gorm.DB, infra *Infra, logger *zap.Logger) (activitylog.Recorder, func()) {
	if cfg.ActivityLogSink == sinkKafka && infra.Kafka != nil {
		logger.Info("activity log sink: kafka")
		publisher := producer.NewActivityPublisher(infra.Kafka)
		return activitylog.NewPublishingRecorder(publisher, logger), func() {}
	}

	logger.Info("activity log sink: database", zap.Int("buffer", cfg.ActivityLogBuffer))
	rec := activitylog.NewAsyncRecorder(activitylog.NewRepository(db), cfg.ActivityLogBuffer, logger)
	return rec, rec.Close
}
