package department

import (
	"context"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=department_repo.go -destination=mock/department_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	FindAll(ctx context.Context, filter ListFilter) ([]Department, error)
	FindByID(ctx context.Context, id string) (*Department, error)
	FindByIDs(ctx context.Context, ids []string) ([]Department, error)
	Create(ctx context.Context, dept *Department) error
	CreateBulk(ctx context.Context, depts []Department) (int64, error)
	Update(ctx context.Context, dept *Department) error
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

func (r *repository) FindAll(ctx context.Context, filter ListFilter) ([]Department, error) {
	q := r.db.WithContext(ctx).Model(&Department{})
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if s := strings.TrimSpace(filter.Search); s != "" {
		like := "%" + s + "%"
		q = q.Where("name ILIKE ? OR code ILIKE ?", like, like)
	}

	depts := []Department{}
	err := q.Order("name ASC").Find(&depts).Error
	return depts, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Department, error) {
	var dept Department
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&dept).Error; err != nil {
		return nil, err
	}
	return &dept, nil
}

func (r *repository) FindByIDs(ctx context.Context, ids []string) ([]Department, error) {
	var depts []Department
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&depts).Error
	return depts, err
}

func (r *repository) Create(ctx context.Context, dept *Department) error {
	return r.db.WithContext(ctx).Create(dept).Error
}

func (r *repository) CreateBulk(ctx context.Context, depts []Department) (int64, error) {
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&depts)
	return res.RowsAffected, res.Error
}

func (r *repository) Update(ctx context.Context, dept *Department) error {
	return r.db.WithContext(ctx).Save(dept).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&Department{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) DeleteBulk(ctx context.Context, ids []string) (int64, error) {
	res := r.db.WithContext(ctx).Where("id IN ?", ids).Delete(&Department{})
	return res.RowsAffected, res.Error
}
