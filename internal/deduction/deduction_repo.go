package deduction

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=deduction_repo.go -destination=mock/deduction_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	FindAll(ctx context.Context, filter ListFilter) ([]Deduction, error)
	FindByID(ctx context.Context, id string) (*Deduction, error)
	FindByIDs(ctx context.Context, ids []string) ([]Deduction, error)
	FindByPeriod(ctx context.Context, employeeID, headID string, month, year int) (*Deduction, error)
	Create(ctx context.Context, d *Deduction) error
	Update(ctx context.Context, d *Deduction) error
	Delete(ctx context.Context, id string) error
	DeleteBulk(ctx context.Context, ids []string) (int64, error)
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

func (r *repository) FindAll(ctx context.Context, filter ListFilter) ([]Deduction, error) {
	q := r.db.WithContext(ctx).Preload("Employee")
	if filter.EmployeeID != "" {
		q = q.Where("employee_id = ?", filter.EmployeeID)
	}
	if filter.DeductionHeadID != "" {
		q = q.Where("deduction_head_id = ?", filter.DeductionHeadID)
	}
	if filter.Month != 0 {
		q = q.Where("month = ?", filter.Month)
	}
	if filter.Year != 0 {
		q = q.Where("year = ?", filter.Year)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}

	rows := []Deduction{}
	err := q.Order("year DESC, month DESC, created_at DESC").Find(&rows).Error
	return rows, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Deduction, error) {
	var d Deduction
	if err := r.db.WithContext(ctx).Preload("Employee").First(&d, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *repository) FindByIDs(ctx context.Context, ids []string) ([]Deduction, error) {
	var rows []Deduction
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&rows).Error
	return rows, err
}

func (r *repository) FindByPeriod(ctx context.Context, employeeID, headID string, month, year int) (*Deduction, error) {
	var d Deduction
	err := r.db.WithContext(ctx).
		Where("employee_id = ? AND deduction_head_id = ? AND month = ? AND year = ?", employeeID, headID, month, year).
		First(&d).Error
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *repository) Create(ctx context.Context, d *Deduction) error {
	return r.db.WithContext(ctx).Omit("Employee").Create(d).Error
}

func (r *repository) Update(ctx context.Context, d *Deduction) error {
	return r.db.WithContext(ctx).Omit("Employee").Save(d).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&Deduction{}, "id = ?", id).Error
}

func (r *repository) DeleteBulk(ctx context.Context, ids []string) (int64, error) {
	res := r.db.WithContext(ctx).Where("id IN ?", ids).Delete(&Deduction{})
	return res.RowsAffected, res.Error
}
