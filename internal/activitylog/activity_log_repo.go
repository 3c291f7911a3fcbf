package activitylog

import (
	"context"

	"gorm.io/gorm"
)

type ListFilter struct {
	Module string
	Entity string
	Action string
	Status string
	UserID string
	Limit  int
	Offset int
}

//go:generate mockgen -source=activity_log_repo.go -destination=mock/activity_log_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, log *ActivityLog) error
	List(ctx context.Context, filter ListFilter) ([]ActivityLog, int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, log *ActivityLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}

func (r *repository) List(ctx context.Context, filter ListFilter) ([]ActivityLog, int64, error) {
	q := r.db.WithContext(ctx).Model(&ActivityLog{}).Scopes(filterScope(filter))

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var logs []ActivityLog
	err := q.Order("created_at DESC").
		Limit(filter.Limit).
		Offset(filter.Offset).
		Find(&logs).Error
	return logs, total, err
}

func filterScope(f ListFilter) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if f.Module != "" {
			db = db.Where("module = ?", f.Module)
		}
		if f.Entity != "" {
			db = db.Where("entity = ?", f.Entity)
		}
		if f.Action != "" {
			db = db.Where("action = ?", f.Action)
		}
		if f.Status != "" {
			db = db.Where("status = ?", f.Status)
		}
		if f.UserID != "" {
			db = db.Where("user_id = ?", f.UserID)
		}
		return db
	}
}
