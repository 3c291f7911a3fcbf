package masterdata

import (
	"context"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=masterdata_repo.go -destination=mock/masterdata_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	FindAll(ctx context.Context, kind Kind, filter ListFilter) ([]Item, error)
	FindByID(ctx context.Context, kind Kind, id string) (*Item, error)
	FindByIDs(ctx context.Context, kind Kind, ids []string) ([]Item, error)
	Create(ctx context.Context, kind Kind, item *Item) error
	CreateBulk(ctx context.Context, kind Kind, items []Item) (int64, error)
	Update(ctx context.Context, kind Kind, item *Item) error
	Delete(ctx context.Context, kind Kind, id string) error
	DeleteBulk(ctx context.Context, kind Kind, ids []string) (int64, error)
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

func (r *repository) table(ctx context.Context, kind Kind) *gorm.DB {
	return r.db.WithContext(ctx).Table(kind.Table)
}

func (r *repository) FindAll(ctx context.Context, kind Kind, filter ListFilter) ([]Item, error) {
	q := r.table(ctx, kind)
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if s := strings.TrimSpace(filter.Search); s != "" {
		q = q.Where("name ILIKE ?", "%"+s+"%")
	}

	items := []Item{}
	err := q.Order("name ASC").Find(&items).Error
	return items, err
}

func (r *repository) FindByID(ctx context.Context, kind Kind, id string) (*Item, error) {
	var item Item
	if err := r.table(ctx, kind).Where("id = ?", id).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *repository) FindByIDs(ctx context.Context, kind Kind, ids []string) ([]Item, error) {
	var items []Item
	err := r.table(ctx, kind).Where("id IN ?", ids).Find(&items).Error
	return items, err
}

func (r *repository) Create(ctx context.Context, kind Kind, item *Item) error {
	return r.table(ctx, kind).Create(item).Error
}

// CreateBulk inserts in one statement and skips rows that hit a unique key.
func (r *repository) CreateBulk(ctx context.Context, kind Kind, items []Item) (int64, error) {
	res := r.table(ctx, kind).Clauses(clause.OnConflict{DoNothing: true}).Create(&items)
	return res.RowsAffected, res.Error
}

func (r *repository) Update(ctx context.Context, kind Kind, item *Item) error {
	return r.table(ctx, kind).Save(item).Error
}

func (r *repository) Delete(ctx context.Context, kind Kind, id string) error {
	return r.table(ctx, kind).Where("id = ?", id).Delete(&Item{}).Error
}

func (r *repository) DeleteBulk(ctx context.Context, kind Kind, ids []string) (int64, error) {
	res := r.table(ctx, kind).Where("id IN ?", ids).Delete(&Item{})
	return res.RowsAffected, res.Error
}
