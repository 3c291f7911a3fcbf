package activitylog

import (
	"context"
	"sync"
	"time"

	"speed-hrm/internal/events"

	"go.uber.org/zap"
)

// Recorder accepts activity entries after the primary operation has
// finished. Implementations are best-effort: Record never fails the caller
// and never blocks on storage.
type Recorder interface {
	Record(ctx context.Context, entry Entry)
}

// EventPublisher ships entries to an external consumer.
type EventPublisher interface {
	PublishActivityLogged(ctx context.Context, event events.ActivityLoggedEvent) error
}

type NopRecorder struct{}

func (NopRecorder) Record(context.Context, Entry) {}

const persistTimeout = 5 * time.Second

// AsyncRecorder persists entries on a single background goroutine fed by a
// bounded channel. When the buffer is full the entry is dropped.
type AsyncRecorder struct {
	repo   Repository
	queue  chan *ActivityLog
	logger *zap.Logger

	mu     sync.RWMutex
	closed bool
	done   chan struct{}
}

func NewAsyncRecorder(repo Repository, buffer int, logger ...*zap.Logger) *AsyncRecorder {
	l := zap.L().Named("activitylog.recorder")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("activitylog.recorder")
	}
	if buffer <= 0 {
		buffer = 1
	}

	r := &AsyncRecorder{
		repo:   repo,
		queue:  make(chan *ActivityLog, buffer),
		logger: l,
		done:   make(chan struct{}),
	}
	go r.run()
	return r
}

func (r *AsyncRecorder) Record(ctx context.Context, entry Entry) {
	row := ModelFromEvent(entry.Event(ctx))

	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.closed {
		r.logger.Warn("activity log dropped after close",
			zap.String("module", row.Module),
			zap.String("action", row.Action),
		)
		return
	}

	select {
	case r.queue <- row:
	default:
		r.logger.Warn("activity log buffer full, entry dropped",
			zap.String("module", row.Module),
			zap.String("action", row.Action),
			zap.Stringp("entity_id", row.EntityID),
		)
	}
}

// Close stops accepting entries and waits until the queue is drained.
func (r *AsyncRecorder) Close() {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		<-r.done
		return
	}
	r.closed = true
	close(r.queue)
	r.mu.Unlock()

	<-r.done
}

func (r *AsyncRecorder) run() {
	defer close(r.done)

	for row := range r.queue {
		ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
		if err := r.repo.Create(ctx, row); err != nil {
			r.logger.Error("persist activity log failed",
				zap.String("module", row.Module),
				zap.String("action", row.Action),
				zap.Error(err),
			)
		}
		cancel()
	}
}

// PublishingRecorder hands entries to an EventPublisher, typically kafka.
type PublishingRecorder struct {
	publisher EventPublisher
	logger    *zap.Logger
}

func NewPublishingRecorder(publisher EventPublisher, logger ...*zap.Logger) *PublishingRecorder {
	l := zap.L().Named("activitylog.publisher")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("activitylog.publisher")
	}
	return &PublishingRecorder{publisher: publisher, logger: l}
}

func (r *PublishingRecorder) Record(ctx context.Context, entry Entry) {
	event := entry.Event(ctx)

	// The request context may be cancelled right after the response is sent.
	pubCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), persistTimeout)
	defer cancel()

	if err := r.publisher.PublishActivityLogged(pubCtx, event); err != nil {
		r.logger.Error("publish activity log failed",
			zap.String("request_id", event.RequestID),
			zap.String("module", event.Module),
			zap.String("action", event.Action),
			zap.Error(err),
		)
	}
}
