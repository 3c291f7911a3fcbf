package user

type CreateUserRequest struct {
	Email    string `json:"email" binding:"required,email,max=255"`
	Name     string `json:"name" binding:"required,min=2,max=150"`
	Password string `json:"password" binding:"required,min=8,max=72"`
	Role     string `json:"role" binding:"required,oneof=admin hr viewer"`
}

type UpdateUserRequest struct {
	Name     *string `json:"name" binding:"omitempty,min=2,max=150"`
	Role     *string `json:"role" binding:"omitempty,oneof=admin hr viewer"`
	IsActive *bool   `json:"is_active"`
}

type ResetPasswordRequest struct {
	NewPassword string `json:"new_password" binding:"required,min=8,max=72"`
}

type ListFilter struct {
	Role     string `form:"role" binding:"omitempty,oneof=admin hr viewer"`
	IsActive *bool  `form:"is_active"`
	Search   string `form:"q"`
}

// UserResponse never carries the password hash.
type UserResponse struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	Name        string `json:"name"`
	Role        string `json:"role"`
	IsActive    bool   `json:"is_active"`
	CreatedByID string `json:"created_by_id,omitempty"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}
