package app

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"speed-hrm/internal/activitylog"
	"speed-hrm/internal/config"
	"speed-hrm/internal/events"
	"speed-hrm/internal/messaging/kafka/consumer"
	"speed-hrm/internal/shared/connection"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const activityConsumerGroup = "speed-hrm-activity-log"

// RunConsumer persists activity events published by the API until SIGINT
// or SIGTERM.
func RunConsumer(cfg config.Config) error {
	logger := zap.L().Named("app.consumer")

	if cfg.KafkaBroker == "" {
		return errors.New("KAFKA_BROKER is required")
	}

	gormDB, err := connection.ConnectGORMWithRetry(
		cfg.DBHost,
		cfg.DBUser,
		cfg.DBPassword,
		cfg.DBName,
		cfg.DBPort,
		cfg.DBSSLMode,
		cfg.ConnectRetries,
	)
	if err != nil {
		return err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{cfg.KafkaBroker},
		Topic:          events.ActivityLoggedTopic,
		GroupID:        activityConsumerGroup,
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
	defer reader.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	done := make(chan struct{})
	go func() {
		defer close(done)
		consumer.ConsumeActivityLogged(ctx, reader, activitylog.NewRepository(gormDB), logger)
	}()

	<-ctx.Done()
	logger.Info("consumer shutting down")
	<-done

	return nil
}
