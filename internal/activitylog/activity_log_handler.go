package activitylog

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
	l := zap.L().Named("activitylog.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("activitylog.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) GetAll(c *gin.Context) {
	var q ListActivityLogsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		appErr := apperror.MapValidationError(err)
		response.Error(c, appErr.HTTPStatus, appErr.Code, appErr.Message, err.Error())
		return
	}

	page := response.ParsePage(c)
	logs, total, err := h.service.List(c.Request.Context(), ListFilter{
		Module: q.Module,
		Entity: q.Entity,
		Action: q.Action,
		Status: q.Status,
		UserID: q.UserID,
		Limit:  page.PageSize,
		Offset: page.Offset(),
	})
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		h.logger.Warn("activity log request failed", zap.Int("status", httpErr.Status), zap.Error(err))
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
		return
	}

	meta := response.NewPaginationMeta(total, page.Page, page.PageSize)
	response.Success(c, http.StatusOK, logs, &meta)
}
