package workinghours

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=workinghours_repo.go -destination=mock/workinghours_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	FindAll(ctx context.Context, filter ListFilter) ([]Policy, error)
	FindByID(ctx context.Context, id string) (*Policy, error)
	FindByIDs(ctx context.Context, ids []string) ([]Policy, error)
	Create(ctx context.Context, p *Policy) error
	Update(ctx context.Context, p *Policy) error
	ClearDefault(ctx context.Context, except uuid.UUID) error
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

func (r *repository) FindAll(ctx context.Context, filter ListFilter) ([]Policy, error) {
	q := r.db.WithContext(ctx).Model(&Policy{})
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}

	policies := []Policy{}
	err := q.Order("is_default DESC, name ASC").Find(&policies).Error
	return policies, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Policy, error) {
	var p Policy
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) FindByIDs(ctx context.Context, ids []string) ([]Policy, error) {
	var policies []Policy
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&policies).Error
	return policies, err
}

func (r *repository) Create(ctx context.Context, p *Policy) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *repository) Update(ctx context.Context, p *Policy) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *repository) ClearDefault(ctx context.Context, except uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&Policy{}).
		Where("is_default = ? AND id <> ?", true, except).
		Update("is_default", false).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&Policy{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) DeleteBulk(ctx context.Context, ids []string) (int64, error) {
	res := r.db.WithContext(ctx).Where("id IN ?", ids).Delete(&Policy{})
	return res.RowsAffected, res.Error
}
