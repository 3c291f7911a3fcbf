package rbac

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=rbac_repo.go -destination=mock/rbac_repo_mock.go -package=mock
type Repository interface {
	ListPermissions(ctx context.Context) ([]RolePermission, error)
	ListInheritances(ctx context.Context) ([]RoleInheritance, error)
	SeedDefaults(ctx context.Context) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) ListPermissions(ctx context.Context) ([]RolePermission, error) {
	var rows []RolePermission
	err := r.db.WithContext(ctx).Order("role, resource, action").Find(&rows).Error
	return rows, err
}

func (r *repository) ListInheritances(ctx context.Context) ([]RoleInheritance, error) {
	var rows []RoleInheritance
	err := r.db.WithContext(ctx).Order("role, parent").Find(&rows).Error
	return rows, err
}

// SeedDefaults inserts the default policy rows, leaving existing ones untouched.
func (r *repository) SeedDefaults(ctx context.Context) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		perms := DefaultPermissions()
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&perms).Error; err != nil {
			return err
		}
		inh := DefaultInheritances()
		return tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&inh).Error
	})
}
