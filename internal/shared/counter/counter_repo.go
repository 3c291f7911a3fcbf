package counter

import (
	"context"

	"gorm.io/gorm"
)

// Counter is one named monotonically increasing sequence.
type Counter struct {
	Name      string `gorm:"type:varchar(60);primaryKey"`
	LastValue int64  `gorm:"not null;default:0"`
	UpdatedAt int64  `gorm:"autoUpdateTime"`
}

func (Counter) TableName() string {
	return "counters"
}

//go:generate mockgen -destination=mock/counter_repo_mock.go -package=mock . Repository
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	GetNextValue(ctx context.Context, name string) (int64, error)
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

func (r *repository) GetNextValue(ctx context.Context, name string) (int64, error) {
	var nextValue int64

	// Single statement upsert so concurrent callers never receive the same value.
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO counters (name, last_value, updated_at)
		VALUES (?, 1, extract(epoch from now())::bigint)
		ON CONFLICT (name) DO UPDATE
		SET last_value = counters.last_value + 1, updated_at = extract(epoch from now())::bigint
		RETURNING last_value
	`, name).Scan(&nextValue).Error

	if err != nil {
		return 0, err
	}

	return nextValue, nil
}
