package department

type CreateDepartmentRequest struct {
	Name        string  `json:"name" binding:"required,min=1,max=150"`
	Code        *string `json:"code" binding:"omitempty,min=1,max=50"`
	Description *string `json:"description" binding:"omitempty,max=1000"`
	Status      string  `json:"status" binding:"omitempty,oneof=active inactive"`
}

type BulkCreateDepartmentRequest struct {
	Items []CreateDepartmentRequest `json:"items" binding:"required,min=1,max=500,dive"`
}

type UpdateDepartmentRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=150"`
	Code        *string `json:"code" binding:"omitempty,min=1,max=50"`
	Description *string `json:"description" binding:"omitempty,max=1000"`
	Status      *string `json:"status" binding:"omitempty,oneof=active inactive"`
}

type ListFilter struct {
	Status string `form:"status" binding:"omitempty,oneof=active inactive"`
	Search string `form:"q"`
}

func (f ListFilter) IsZero() bool {
	return f.Status == "" && f.Search == ""
}

type DepartmentResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Code        string `json:"code,omitempty"`
	Description string `json:"description,omitempty"`
	Status      string `json:"status"`
	CreatedByID string `json:"created_by_id,omitempty"`
	UpdatedByID string `json:"updated_by_id,omitempty"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}
