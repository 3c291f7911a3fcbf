package app

import (
	"errors"

	"speed-hrm/internal/config"
	"speed-hrm/internal/shared/connection"

	"github.com/redis/go-redis/v9"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Infra holds the shared connections. Redis and Kafka are optional and stay
// nil when their address is not configured.
type Infra struct {
	DB    *gorm.DB
	Redis *redis.Client
	Kafka *kafkago.Writer
}

func Connect(cfg config.Config, logger *zap.Logger) (*Infra, error) {
	db, err := connection.ConnectGORMWithRetry(
		cfg.DBHost,
		cfg.DBUser,
		cfg.DBPassword,
		cfg.DBName,
		cfg.DBPort,
		cfg.DBSSLMode,
		cfg.ConnectRetries,
	)
	if err != nil {
		return nil, err
	}
	infra := &Infra{DB: db}

	if cfg.RedisAddr != "" {
		rdb, err := connection.ConnectRedisWithRetry(cfg.RedisAddr, cfg.ConnectRetries)
		if err != nil {
			infra.Close()
			return nil, err
		}
		infra.Redis = rdb
	} else {
		logger.Warn("REDIS_ADDR not set, list cache and idempotency disabled")
	}

	if cfg.ActivityLogSink == sinkKafka {
		if cfg.KafkaBroker == "" {
			infra.Close()
			return nil, errors.New("KAFKA_BROKER is required when ACTIVITY_LOG_SINK=kafka")
		}
		w, err := connection.ConnectKafkaWithRetry(cfg.KafkaBroker, cfg.ConnectRetries)
		if err != nil {
			infra.Close()
			return nil, err
		}
		infra.Kafka = w
	}

	return infra, nil
}

func (i *Infra) Close() {
	if i.Kafka != nil {
		if err := i.Kafka.Close(); err != nil {
			zap.L().Warn("close kafka writer failed", zap.Error(err))
		}
	}
	if i.Redis != nil {
		_ = i.Redis.Close()
	}
	if i.DB != nil {
		if sqlDB, err := i.DB.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
}
