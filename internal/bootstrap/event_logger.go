package bootstrap

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// LifecycleEvent describes a server state change such as start or shutdown.
type LifecycleEvent struct {
	Action  string
	Message string
	Meta    map[string]any
}

type EventLogger interface {
	Log(ctx context.Context, event LifecycleEvent)
}

// ZapEventLogger writes lifecycle events to the "lifecycle" logger.
type ZapEventLogger struct {
	logger *zap.Logger
}

func NewZapEventLogger(logger ...*zap.Logger) *ZapEventLogger {
	l := zap.L()
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0]
	}
	return &ZapEventLogger{logger: l.Named("lifecycle")}
}

func (l *ZapEventLogger) Log(_ context.Context, event LifecycleEvent) {
	l.logger.Info("lifecycle event",
		zap.String("timestamp", time.Now().UTC().Format(time.RFC3339)),
		zap.String("action", event.Action),
		zap.String("message", event.Message),
		zap.Any("meta", event.Meta),
	)
}
