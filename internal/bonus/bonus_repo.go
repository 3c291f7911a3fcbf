package bonus

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

//go:generate mockgen -source=bonus_repo.go -destination=mock/bonus_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	FindAll(ctx context.Context, filter ListFilter) ([]Bonus, error)
	FindByID(ctx context.Context, id string) (*Bonus, error)
	FindByIDs(ctx context.Context, ids []string) ([]Bonus, error)
	FindByPeriod(ctx context.Context, employeeID, bonusTypeID, monthYear string) (*Bonus, error)
	EmployeeSalary(ctx context.Context, employeeID string) (decimal.Decimal, error)
	Create(ctx context.Context, b *Bonus) error
	Update(ctx context.Context, b *Bonus) error
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

func (r *repository) FindAll(ctx context.Context, filter ListFilter) ([]Bonus, error) {
	q := r.db.WithContext(ctx).Preload("Employee")
	if filter.EmployeeID != "" {
		q = q.Where("employee_id = ?", filter.EmployeeID)
	}
	if filter.BonusTypeID != "" {
		q = q.Where("bonus_type_id = ?", filter.BonusTypeID)
	}
	if filter.BonusMonthYear != "" {
		q = q.Where("bonus_month_year = ?", filter.BonusMonthYear)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}

	rows := []Bonus{}
	err := q.Order("bonus_month_year DESC, created_at DESC").Find(&rows).Error
	return rows, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Bonus, error) {
	var b Bonus
	if err := r.db.WithContext(ctx).Preload("Employee").First(&b, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *repository) FindByIDs(ctx context.Context, ids []string) ([]Bonus, error) {
	var rows []Bonus
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&rows).Error
	return rows, err
}

func (r *repository) FindByPeriod(ctx context.Context, employeeID, bonusTypeID, monthYear string) (*Bonus, error) {
	var b Bonus
	err := r.db.WithContext(ctx).
		Where("employee_id = ? AND bonus_type_id = ? AND bonus_month_year = ?", employeeID, bonusTypeID, monthYear).
		First(&b).Error
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *repository) EmployeeSalary(ctx context.Context, employeeID string) (decimal.Decimal, error) {
	var ref EmployeeRef
	if err := r.db.WithContext(ctx).Select("id", "salary").Take(&ref, "id = ?", employeeID).Error; err != nil {
		return decimal.Zero, err
	}
	return ref.Salary, nil
}

func (r *repository) Create(ctx context.Context, b *Bonus) error {
	return r.db.WithContext(ctx).Omit("Employee").Create(b).Error
}

func (r *repository) Update(ctx context.Context, b *Bonus) error {
	return r.db.WithContext(ctx).Omit("Employee").Save(b).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&Bonus{}, "id = ?", id).Error
}

func (r *repository) DeleteBulk(ctx context.Context, ids []string) (int64, error) {
	res := r.db.WithContext(ctx).Where("id IN ?", ids).Delete(&Bonus{})
	return res.RowsAffected, res.Error
}
