package rbac

import (
	"net/http"

	"speed-hrm/internal/shared/apperror"
	"speed-hrm/internal/shared/contextutil"
	"speed-hrm/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("rbac.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("rbac.handler")
	}
	return &Handler{service: service, logger: l}
}

// Enforce checks a permission for the calling user's role.
func (h *Handler) Enforce(c *gin.Context) {
	var req EnforceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		appErr := apperror.MapValidationError(err)
		response.Error(c, appErr.HTTPStatus, appErr.Code, appErr.Message, nil)
		return
	}

	role := contextutil.GetActor(c.Request.Context()).Role
	allowed, err := h.service.Enforce(role, req.Resource, req.Action)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		h.logger.Warn("rbac enforce request failed", zap.Error(err))
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, EnforceResponse{
		Role:     role,
		Resource: req.Resource,
		Action:   req.Action,
		Allowed:  allowed,
	}, nil)
}

func (h *Handler) Policies(c *gin.Context) {
	response.Success(c, http.StatusOK, h.service.Policies(), nil)
}
