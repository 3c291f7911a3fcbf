package masterdata

import (
	"net/http"

	"speed-hrm/internal/shared/apperror"
	"speed-hrm/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("masterdata.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("masterdata.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("master data request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) writeBindError(c *gin.Context, err error) {
	appErr := apperror.MapValidationError(err)
	h.logger.Warn("master data validation failed", zap.String("path", c.FullPath()), zap.Error(err))
	response.Error(c, appErr.HTTPStatus, appErr.Code, appErr.Message, err.Error())
}

func (h *Handler) Kinds(c *gin.Context) {
	response.Success(c, http.StatusOK, h.service.Kinds(), nil)
}

func (h *Handler) GetAll(kind Kind) gin.HandlerFunc {
	return func(c *gin.Context) {
		var filter ListFilter
		if err := c.ShouldBindQuery(&filter); err != nil {
			h.writeBindError(c, err)
			return
		}

		resp, err := h.service.GetAll(c.Request.Context(), kind, filter)
		if err != nil {
			h.writeServiceError(c, err)
			return
		}
		response.Success(c, http.StatusOK, resp, nil)
	}
}

func (h *Handler) GetByID(kind Kind) gin.HandlerFunc {
	return func(c *gin.Context) {
		resp, err := h.service.GetByID(c.Request.Context(), kind, c.Param("id"))
		if err != nil {
			h.writeServiceError(c, err)
			return
		}
		response.Success(c, http.StatusOK, resp, nil)
	}
}

func (h *Handler) Create(kind Kind) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			h.writeBindError(c, err)
			return
		}

		resp, err := h.service.Create(c.Request.Context(), kind, req)
		if err != nil {
			h.writeServiceError(c, err)
			return
		}
		response.SuccessMessage(c, http.StatusCreated, kind.Label+" created", resp)
	}
}

func (h *Handler) BulkCreate(kind Kind) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req BulkCreateItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			h.writeBindError(c, err)
			return
		}

		resp, err := h.service.BulkCreate(c.Request.Context(), kind, req)
		if err != nil {
			h.writeServiceError(c, err)
			return
		}
		response.Success(c, http.StatusCreated, resp, nil)
	}
}

func (h *Handler) Update(kind Kind) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdateItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			h.writeBindError(c, err)
			return
		}

		resp, err := h.service.Update(c.Request.Context(), kind, c.Param("id"), req)
		if err != nil {
			h.writeServiceError(c, err)
			return
		}
		response.SuccessMessage(c, http.StatusOK, kind.Label+" updated", resp)
	}
}

func (h *Handler) Delete(kind Kind) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := h.service.Delete(c.Request.Context(), kind, c.Param("id")); err != nil {
			h.writeServiceError(c, err)
			return
		}
		response.SuccessMessage(c, http.StatusOK, kind.Label+" deleted", gin.H{"deleted": true})
	}
}

func (h *Handler) BulkDelete(kind Kind) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req response.BulkDeleteRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			h.writeBindError(c, err)
			return
		}

		resp, err := h.service.BulkDelete(c.Request.Context(), kind, req.IDs)
		if err != nil {
			h.writeServiceError(c, err)
			return
		}
		response.Success(c, http.StatusOK, resp, nil)
	}
}
