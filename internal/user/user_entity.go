package user

import (
	"speed-hrm/internal/shared/model"

	"github.com/google/uuid"
)

const emailIndex = "uq_users_email"

type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email    string    `gorm:"size:255;not null;uniqueIndex:uq_users_email"`
	Name     string    `gorm:"size:150;not null"`
	Password string    `gorm:"size:255;not null"`
	Role     string    `gorm:"size:50;not null;default:viewer"`
	IsActive bool      `gorm:"not null;default:true"`
	model.Audit
}

func (User) TableName() string {
	return "users"
}
