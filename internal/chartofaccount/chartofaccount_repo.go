package chartofaccount

import (
	"context"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=chartofaccount_repo.go -destination=mock/chartofaccount_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	FindAll(ctx context.Context, filter ListFilter) ([]Account, error)
	FindByID(ctx context.Context, id string) (*Account, error)
	FindByIDs(ctx context.Context, ids []string) ([]Account, error)
	FindByCode(ctx context.Context, code string) (*Account, error)
	CountChildren(ctx context.Context, ids []string) (int64, error)
	Create(ctx context.Context, acc *Account) error
	CreateBulk(ctx context.Context, accs []Account) (int64, error)
	Update(ctx context.Context, acc *Account) error
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

func (r *repository) FindAll(ctx context.Context, filter ListFilter) ([]Account, error) {
	q := r.db.WithContext(ctx).Model(&Account{})
	if filter.Type != "" {
		q = q.Where("type = ?", filter.Type)
	}
	if filter.ParentID != "" {
		q = q.Where("parent_id = ?", filter.ParentID)
	}
	if filter.IsGroup != nil {
		q = q.Where("is_group = ?", *filter.IsGroup)
	}
	if s := strings.TrimSpace(filter.Search); s != "" {
		like := "%" + s + "%"
		q = q.Where("code ILIKE ? OR name ILIKE ?", like, like)
	}

	accs := []Account{}
	err := q.Order("code ASC").Find(&accs).Error
	return accs, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Account, error) {
	var acc Account
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&acc).Error; err != nil {
		return nil, err
	}
	return &acc, nil
}

func (r *repository) FindByIDs(ctx context.Context, ids []string) ([]Account, error) {
	var accs []Account
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&accs).Error
	return accs, err
}

func (r *repository) FindByCode(ctx context.Context, code string) (*Account, error) {
	var acc Account
	if err := r.db.WithContext(ctx).Where("code = ?", code).First(&acc).Error; err != nil {
		return nil, err
	}
	return &acc, nil
}

// CountChildren counts accounts under ids, skipping those that are in ids
// themselves.
func (r *repository) CountChildren(ctx context.Context, ids []string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&Account{}).
		Where("parent_id IN ? AND id NOT IN ?", ids, ids).
		Count(&n).Error
	return n, err
}

func (r *repository) Create(ctx context.Context, acc *Account) error {
	return r.db.WithContext(ctx).Omit("Parent").Create(acc).Error
}

func (r *repository) CreateBulk(ctx context.Context, accs []Account) (int64, error) {
	res := r.db.WithContext(ctx).
		Omit("Parent").
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&accs)
	return res.RowsAffected, res.Error
}

func (r *repository) Update(ctx context.Context, acc *Account) error {
	return r.db.WithContext(ctx).Omit("Parent").Save(acc).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&Account{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) DeleteBulk(ctx context.Context, ids []string) (int64, error) {
	res := r.db.WithContext(ctx).Where("id IN ?", ids).Delete(&Account{})
	return res.RowsAffected, res.Error
}
