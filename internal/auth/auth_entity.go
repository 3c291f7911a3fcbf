package auth

import (
	"time"

	"github.com/google/uuid"
)

// User is the credential view of the users table managed by package user.
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email     string
	Name      string
	Password  string
	Role      string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (User) TableName() string {
	return "users"
}
