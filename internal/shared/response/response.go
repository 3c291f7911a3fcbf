package response

import (
	"github.com/gin-gonic/gin"
)

type PaginationMeta struct {
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
	Page       int   `json:"page"`
	PageSize   int   `json:"pageSize"`
}

func NewPaginationMeta(total int64, page, limit int) PaginationMeta {
	totalPages := 0
	if limit > 0 {
		// round up: (total + limit - 1) / limit
		totalPages = int((total + int64(limit) - 1) / int64(limit))
	}

	return PaginationMeta{
		Total:      total,
		TotalPages: totalPages,
		Page:       page,
		PageSize:   limit,
	}
}

// ApiEnvelope is the body of every response. Clients treat Status as the
// success signal.
type ApiEnvelope struct {
	Status  bool            `json:"status"`
	Data    any             `json:"data,omitempty"`
	Message string          `json:"message,omitempty"`
	Meta    *PaginationMeta `json:"meta,omitempty"`
	Error   *ErrorBody      `json:"error,omitempty"`
}

type ErrorBody struct {
	Code    string `json:"code"`
	Details any    `json:"details,omitempty"`
}

func Success(c *gin.Context, status int, data interface{}, meta *PaginationMeta) {
	c.JSON(status, ApiEnvelope{
		Status: true,
		Data:   data,
		Meta:   meta,
	})
}

func SuccessMessage(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, ApiEnvelope{
		Status:  true,
		Data:    data,
		Message: message,
	})
}

func Error(c *gin.Context, status int, errorCode string, message string, details interface{}) {
	c.JSON(status, ApiEnvelope{
		Status:  false,
		Message: message,
		Error: &ErrorBody{
			Code:    errorCode,
			Details: details,
		},
	})
}
