// Package testutil holds helpers shared by service tests.
package testutil

import (
	"context"
	"database/sql"
	"sync"
	"testing"

	"speed-hrm/internal/activitylog"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// NewGormMock returns a gorm handle backed by sqlmock. Services under test
// only open transactions on it, so callers usually just expect Begin and
// Commit or Rollback.
func NewGormMock(t *testing.T) (*gorm.DB, *sql.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	t.Cleanup(func() { _ = sqlDB.Close() })
	return db, sqlDB, mock
}

func ExpectTx(mock sqlmock.Sqlmock, commit bool) {
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

// RecorderSpy keeps every entry it receives.
type RecorderSpy struct {
	mu      sync.Mutex
	entries []activitylog.Entry
}

func (r *RecorderSpy) Record(_ context.Context, entry activitylog.Entry) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, entry)
}

func (r *RecorderSpy) Entries() []activitylog.Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]activitylog.Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

func (r *RecorderSpy) Last() activitylog.Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.entries) == 0 {
		return activitylog.Entry{}
	}
	return r.entries[len(r.entries)-1]
}

func (r *RecorderSpy) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = nil
}
