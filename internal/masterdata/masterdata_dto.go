package masterdata

type CreateItemRequest struct {
	Name        string  `json:"name" binding:"required,min=1,max=150"`
	Description *string `json:"description" binding:"omitempty,max=1000"`
	Status      string  `json:"status" binding:"omitempty,oneof=active inactive"`
}

type BulkCreateItemRequest struct {
	Items []CreateItemRequest `json:"items" binding:"required,min=1,max=500,dive"`
}

// UpdateItemRequest applies only the fields that are present.
type UpdateItemRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=150"`
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

type ItemResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Status      string `json:"status"`
	CreatedByID string `json:"created_by_id,omitempty"`
	UpdatedByID string `json:"updated_by_id,omitempty"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

type KindResponse struct {
	Slug       string `json:"slug"`
	Resource   string `json:"resource"`
	Label      string `json:"label"`
	UniqueName bool   `json:"unique_name"`
}
