package contribution

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=contribution_repo.go -destination=mock/contribution_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	FindAll(ctx context.Context, scheme Scheme, filter ListFilter) ([]Contribution, error)
	FindByID(ctx context.Context, scheme Scheme, id string) (*Contribution, error)
	FindByIDs(ctx context.Context, scheme Scheme, ids []string) ([]Contribution, error)
	EmployeeSalary(ctx context.Context, employeeID string) (decimal.Decimal, error)
	Create(ctx context.Context, scheme Scheme, c *Contribution) error
	CreateBulk(ctx context.Context, scheme Scheme, rows []Contribution) (int64, error)
	Update(ctx context.Context, scheme Scheme, c *Contribution) error
	Delete(ctx context.Context, scheme Scheme, id string) error
	DeleteBulk(ctx context.Context, scheme Scheme, ids []string) (int64, error)
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

func (r *repository) table(ctx context.Context, scheme Scheme) *gorm.DB {
	return r.db.WithContext(ctx).Table(scheme.Table)
}

func (r *repository) FindAll(ctx context.Context, scheme Scheme, filter ListFilter) ([]Contribution, error) {
	q := r.table(ctx, scheme)
	if filter.EmployeeID != "" {
		q = q.Where("employee_id = ?", filter.EmployeeID)
	}
	if filter.MonthYear != "" {
		q = q.Where("month_year = ?", filter.MonthYear)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}

	rows := []Contribution{}
	err := q.Order("month_year DESC, created_at DESC").Find(&rows).Error
	return rows, err
}

func (r *repository) FindByID(ctx context.Context, scheme Scheme, id string) (*Contribution, error) {
	var c Contribution
	if err := r.table(ctx, scheme).Where("id = ?", id).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *repository) FindByIDs(ctx context.Context, scheme Scheme, ids []string) ([]Contribution, error) {
	var rows []Contribution
	err := r.table(ctx, scheme).Where("id IN ?", ids).Find(&rows).Error
	return rows, err
}

func (r *repository) EmployeeSalary(ctx context.Context, employeeID string) (decimal.Decimal, error) {
	var row struct {
		Salary decimal.Decimal
	}
	err := r.db.WithContext(ctx).Table("employees").Select("salary").Where("id = ?", employeeID).Take(&row).Error
	return row.Salary, err
}

func (r *repository) Create(ctx context.Context, scheme Scheme, c *Contribution) error {
	return r.table(ctx, scheme).Create(c).Error
}

func (r *repository) CreateBulk(ctx context.Context, scheme Scheme, rows []Contribution) (int64, error) {
	res := r.table(ctx, scheme).Clauses(clause.OnConflict{DoNothing: true}).Create(&rows)
	return res.RowsAffected, res.Error
}

func (r *repository) Update(ctx context.Context, scheme Scheme, c *Contribution) error {
	return r.table(ctx, scheme).Save(c).Error
}

func (r *repository) Delete(ctx context.Context, scheme Scheme, id string) error {
	res := r.table(ctx, scheme).Where("id = ?", id).Delete(&Contribution{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) DeleteBulk(ctx context.Context, scheme Scheme, ids []string) (int64, error) {
	res := r.table(ctx, scheme).Where("id IN ?", ids).Delete(&Contribution{})
	return res.RowsAffected, res.Error
}
