package taxslab

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=taxslab_repo.go -destination=mock/taxslab_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	FindAll(ctx context.Context, filter ListFilter) ([]TaxSlab, error)
	FindByID(ctx context.Context, id string) (*TaxSlab, error)
	FindByIDs(ctx context.Context, ids []string) ([]TaxSlab, error)
	Create(ctx context.Context, slab *TaxSlab) error
	CreateBulk(ctx context.Context, slabs []TaxSlab) (int64, error)
	Update(ctx context.Context, slab *TaxSlab) error
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

func (r *repository) FindAll(ctx context.Context, filter ListFilter) ([]TaxSlab, error) {
	q := r.db.WithContext(ctx).Model(&TaxSlab{})
	if filter.FiscalYear != "" {
		q = q.Where("fiscal_year = ?", filter.FiscalYear)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}

	slabs := []TaxSlab{}
	err := q.Order("fiscal_year DESC, min_income ASC").Find(&slabs).Error
	return slabs, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*TaxSlab, error) {
	var slab TaxSlab
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&slab).Error; err != nil {
		return nil, err
	}
	return &slab, nil
}

func (r *repository) FindByIDs(ctx context.Context, ids []string) ([]TaxSlab, error) {
	var slabs []TaxSlab
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&slabs).Error
	return slabs, err
}

func (r *repository) Create(ctx context.Context, slab *TaxSlab) error {
	return r.db.WithContext(ctx).Create(slab).Error
}

func (r *repository) CreateBulk(ctx context.Context, slabs []TaxSlab) (int64, error) {
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&slabs)
	return res.RowsAffected, res.Error
}

func (r *repository) Update(ctx context.Context, slab *TaxSlab) error {
	return r.db.WithContext(ctx).Save(slab).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&TaxSlab{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) DeleteBulk(ctx context.Context, ids []string) (int64, error) {
	res := r.db.WithContext(ctx).Where("id IN ?", ids).Delete(&TaxSlab{})
	return res.RowsAffected, res.Error
}
