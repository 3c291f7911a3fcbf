package activitylog_test

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"speed-hrm/internal/activitylog"
	"speed-hrm/internal/events"
	"speed-hrm/internal/shared/contextutil"

	"github.com/stretchr/testify/assert"
)

type fakeRepo struct {
	mu      sync.Mutex
	rows    []*activitylog.ActivityLog
	started chan struct{}
	release chan struct{}
	err     error
}

func (f *fakeRepo) Create(ctx context.Context, row *activitylog.ActivityLog) error {
	if f.started != nil {
		select {
		case f.started <- struct{}{}:
		default:
		}
	}
	if f.release != nil {
		<-f.release
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rows = append(f.rows, row)
	return f.err
}

func (f *fakeRepo) List(ctx context.Context, filter activitylog.ListFilter) ([]activitylog.ActivityLog, int64, error) {
	return nil, 0, nil
}

func (f *fakeRepo) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.rows)
}

func actorContext() context.Context {
	ctx := contextutil.WithRequestID(context.Background(), "rid-1")
	return contextutil.WithActor(ctx, contextutil.Actor{
		UserID:    "6f1d4a9e-9e52-4a4b-8d0e-6a3b1f7c2d10",
		Role:      "admin",
		IPAddress: "10.0.0.1",
		UserAgent: "test-agent",
	})
}

func TestEntry_Event(t *testing.T) {
	entry := activitylog.Entry{
		Action:      activitylog.ActionCreate,
		Module:      "department",
		Entity:      "department",
		EntityID:    "d-1",
		Description: "Created department HR",
		NewValues:   map[string]string{"name": "HR"},
	}

	ev := entry.Event(actorContext())

	assert.Equal(t, events.ActivityLoggedEventType, ev.EventType)
	assert.Equal(t, "rid-1", ev.RequestID)
	assert.Equal(t, "6f1d4a9e-9e52-4a4b-8d0e-6a3b1f7c2d10", ev.UserID)
	assert.Equal(t, "10.0.0.1", ev.IPAddress)
	assert.Equal(t, "success", ev.Status)
	assert.JSONEq(t, `{"name":"HR"}`, string(ev.NewValues))
	assert.Nil(t, ev.OldValues)
	assert.False(t, ev.OccurredAt.IsZero())
}

func TestEntry_Failed(t *testing.T) {
	entry := activitylog.Entry{Action: activitylog.ActionCreate}.Failed(errors.New(`duplicate key value violates unique constraint "uq_departments_code"`))

	ev := entry.Event(context.Background())
	assert.Equal(t, "failure", ev.Status)
	assert.Contains(t, ev.ErrorMessage, "uq_departments_code")

	row := activitylog.ModelFromEvent(ev)
	assert.Nil(t, row.UserID)
	assert.Equal(t, "failure", row.Status)
	assert.NotNil(t, row.ErrorMessage)
}

func TestModelFromEvent(t *testing.T) {
	ev := activitylog.Entry{
		Action:    activitylog.ActionUpdate,
		Module:    "employee",
		Entity:    "employee",
		EntityID:  "e-1",
		OldValues: map[string]any{"full_name": "A"},
		NewValues: map[string]any{"full_name": "B"},
	}.Event(actorContext())

	row := activitylog.ModelFromEvent(ev)

	assert.NotNil(t, row.UserID)
	assert.Equal(t, "e-1", *row.EntityID)
	assert.Equal(t, "rid-1", *row.RequestID)

	var oldValues map[string]string
	assert.NoError(t, json.Unmarshal(row.OldValues, &oldValues))
	assert.Equal(t, "A", oldValues["full_name"])
}

func TestAsyncRecorder_PersistsAndDrains(t *testing.T) {
	repo := &fakeRepo{}
	rec := activitylog.NewAsyncRecorder(repo, 16)

	for i := 0; i < 5; i++ {
		rec.Record(actorContext(), activitylog.Entry{Action: activitylog.ActionCreate, Module: "department"})
	}
	rec.Close()

	assert.Equal(t, 5, repo.count())
}

func TestAsyncRecorder_DropsWhenFull(t *testing.T) {
	repo := &fakeRepo{started: make(chan struct{}, 1), release: make(chan struct{})}
	rec := activitylog.NewAsyncRecorder(repo, 1)

	rec.Record(context.Background(), activitylog.Entry{Module: "a"})
	select {
	case <-repo.started:
	case <-time.After(time.Second):
		t.Fatal("recorder never picked up the first entry")
	}

	rec.Record(context.Background(), activitylog.Entry{Module: "b"})
	rec.Record(context.Background(), activitylog.Entry{Module: "c"})

	close(repo.release)
	rec.Close()

	assert.Equal(t, 2, repo.count())
}

func TestAsyncRecorder_RepoErrorDoesNotStop(t *testing.T) {
	repo := &fakeRepo{err: errors.New("db down")}
	rec := activitylog.NewAsyncRecorder(repo, 4)

	rec.Record(context.Background(), activitylog.Entry{Module: "a"})
	rec.Record(context.Background(), activitylog.Entry{Module: "b"})
	rec.Close()

	assert.Equal(t, 2, repo.count())
}

func TestAsyncRecorder_RecordAfterClose(t *testing.T) {
	repo := &fakeRepo{}
	rec := activitylog.NewAsyncRecorder(repo, 4)
	rec.Close()

	assert.NotPanics(t, func() {
		rec.Record(context.Background(), activitylog.Entry{Module: "late"})
	})
	rec.Close()
	assert.Equal(t, 0, repo.count())
}

type fakePublisher struct {
	events []events.ActivityLoggedEvent
	err    error
}

func (f *fakePublisher) PublishActivityLogged(ctx context.Context, ev events.ActivityLoggedEvent) error {
	f.events = append(f.events, ev)
	return f.err
}

func TestPublishingRecorder(t *testing.T) {
	pub := &fakePublisher{}
	rec := activitylog.NewPublishingRecorder(pub)

	ctx, cancel := context.WithCancel(actorContext())
	cancel()
	rec.Record(ctx, activitylog.Entry{Action: activitylog.ActionDelete, Module: "bonus"})

	assert.Len(t, pub.events, 1)
	assert.Equal(t, "delete", pub.events[0].Action)
	assert.Equal(t, "rid-1", pub.events[0].RequestID)

	pub.err = errors.New("broker down")
	assert.NotPanics(t, func() {
		rec.Record(context.Background(), activitylog.Entry{Module: "bonus"})
	})
}
