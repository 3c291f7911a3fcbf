package response

type BulkCreateResult struct {
	Created int64 `json:"created"`
	Skipped int64 `json:"skipped"`
}

// NewBulkCreateResult derives skipped rows from the submitted count.
func NewBulkCreateResult(submitted int, created int64) BulkCreateResult {
	skipped := int64(submitted) - created
	if skipped < 0 {
		skipped = 0
	}
	return BulkCreateResult{Created: created, Skipped: skipped}
}

type BulkDeleteResult struct {
	Deleted  int64    `json:"deleted"`
	NotFound []string `json:"not_found,omitempty"`
}

type BulkDeleteRequest struct {
	IDs []string `json:"ids" binding:"required,min=1,dive,uuid"`
}
