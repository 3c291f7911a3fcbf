package attendance

import (
	"context"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -source=attendance_repo.go -destination=mock/attendance_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, a *Attendance) error
	FindByID(ctx context.Context, id string) (*Attendance, error)
	FindByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Attendance, error)
	FindAll(ctx context.Context, filter ListFilter, from, to *time.Time) ([]Attendance, int64, error)
	Update(ctx context.Context, a *Attendance) error
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: tx}
}

func (r *repository) Create(ctx context.Context, a *Attendance) error {
	return r.db.WithContext(ctx).Omit("Employee").Create(a).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*Attendance, error) {
	var a Attendance
	if err := r.db.WithContext(ctx).Preload("Employee").First(&a, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *repository) FindByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Attendance, error) {
	var a Attendance
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Where("attendance_date = ?", date.Format(dateLayout)).
		First(&a).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *repository) FindAll(ctx context.Context, filter ListFilter, from, to *time.Time) ([]Attendance, int64, error) {
	scope := func(db *gorm.DB) *gorm.DB {
		if filter.EmployeeID != "" {
			db = db.Where("employee_id = ?", filter.EmployeeID)
		}
		if filter.Status != "" {
			db = db.Where("status = ?", filter.Status)
		}
		if from != nil {
			db = db.Where("attendance_date >= ?", from.Format(dateLayout))
		}
		if to != nil {
			db = db.Where("attendance_date <= ?", to.Format(dateLayout))
		}
		return db
	}

	var total int64
	if err := r.db.WithContext(ctx).Model(&Attendance{}).Scopes(scope).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	rows := []Attendance{}
	q := r.db.WithContext(ctx).
		Preload("Employee").
		Scopes(scope).
		Order("attendance_date DESC, clock_in DESC")
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit).Offset(filter.Offset)
	}
	err := q.Find(&rows).Error
	return rows, total, err
}

func (r *repository) Update(ctx context.Context, a *Attendance) error {
	return r.db.WithContext(ctx).Omit("Employee").Save(a).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&Attendance{}, "id = ?", id).Error
}
