package employee

import (
	"context"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var sortColumns = map[string]string{
	"name":         "full_name",
	"email":        "email",
	"code":         "employee_code",
	"joining_date": "joining_date",
}

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	FindAll(ctx context.Context, filter ListFilter) ([]Employee, int64, error)
	FindOptions(ctx context.Context) ([]Employee, error)
	FindByID(ctx context.Context, id string) (*Employee, error)
	FindByIDs(ctx context.Context, ids []string) ([]Employee, error)
	Create(ctx context.Context, empl *Employee) error
	CreateBulk(ctx context.Context, empls []Employee) (int64, error)
	Update(ctx context.Context, empl *Employee) error
	Delete(ctx context.Context, id string) error
	DeleteBulk(ctx context.Context, ids []string) (int64, error)
	CreateTransfer(ctx context.Context, transfer *EmployeeTransfer) error
	FindTransfers(ctx context.Context, employeeID string) ([]EmployeeTransfer, error)
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

func filterScope(filter ListFilter) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if filter.DepartmentID != "" {
			db = db.Where("department_id = ?", filter.DepartmentID)
		}
		if filter.Status != "" {
			db = db.Where("status = ?", filter.Status)
		}
		if s := strings.TrimSpace(filter.Search); s != "" {
			like := "%" + s + "%"
			db = db.Where("full_name ILIKE ? OR email ILIKE ? OR employee_code ILIKE ?", like, like, like)
		}
		return db
	}
}

func orderClause(filter ListFilter) string {
	col, ok := sortColumns[filter.SortBy]
	if !ok {
		col = "full_name"
	}
	if filter.SortDir == "desc" {
		return col + " DESC"
	}
	return col + " ASC"
}

func (r *repository) FindAll(ctx context.Context, filter ListFilter) ([]Employee, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).
		Model(&Employee{}).
		Scopes(filterScope(filter)).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	empls := []Employee{}
	q := r.db.WithContext(ctx).
		Preload("Department").
		Scopes(filterScope(filter)).
		Order(orderClause(filter))
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit).Offset(filter.Offset)
	}
	err := q.Find(&empls).Error
	return empls, total, err
}

func (r *repository) FindOptions(ctx context.Context) ([]Employee, error) {
	empls := []Employee{}
	err := r.db.WithContext(ctx).
		Select("id", "employee_code", "full_name").
		Where("status = ?", "active").
		Order("full_name ASC").
		Find(&empls).Error
	return empls, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Employee, error) {
	var empl Employee
	if err := r.db.WithContext(ctx).Preload("Department").First(&empl, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &empl, nil
}

func (r *repository) FindByIDs(ctx context.Context, ids []string) ([]Employee, error) {
	var empls []Employee
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&empls).Error
	return empls, err
}

func (r *repository) Create(ctx context.Context, empl *Employee) error {
	return r.db.WithContext(ctx).Omit("Department").Create(empl).Error
}

func (r *repository) CreateBulk(ctx context.Context, empls []Employee) (int64, error) {
	res := r.db.WithContext(ctx).
		Omit("Department").
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&empls)
	return res.RowsAffected, res.Error
}

func (r *repository) Update(ctx context.Context, empl *Employee) error {
	return r.db.WithContext(ctx).Omit("Department").Save(empl).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&Employee{}, "id = ?", id).Error
}

func (r *repository) DeleteBulk(ctx context.Context, ids []string) (int64, error) {
	res := r.db.WithContext(ctx).Where("id IN ?", ids).Delete(&Employee{})
	return res.RowsAffected, res.Error
}

func (r *repository) CreateTransfer(ctx context.Context, transfer *EmployeeTransfer) error {
	return r.db.WithContext(ctx).Omit("Employee").Create(transfer).Error
}

func (r *repository) FindTransfers(ctx context.Context, employeeID string) ([]EmployeeTransfer, error) {
	transfers := []EmployeeTransfer{}
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("effective_date DESC, created_at DESC").
		Find(&transfers).Error
	return transfers, err
}
