package user

import (
	"speed-hrm/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts account administration. Mutations need the "manage"
// action, which the default policy grants to admin only.
func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService middleware.RBACService) {
	users := r.Group("/users")
	{
		users.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "user", "read"),
			h.GetAll,
		)
		users.GET("/:id",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "user", "read"),
			h.GetByID,
		)
		users.POST("",
			middleware.RateLimitByUser(0.1, 1),
			middleware.RBACAuthorize(rbacService, "user", "manage"),
			h.Create,
		)
		users.PUT("/:id",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "user", "manage"),
			h.Update,
		)
		users.POST("/:id/reset-password",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "user", "manage"),
			h.ResetPassword,
		)
		users.DELETE("/:id",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "user", "manage"),
			h.Delete,
		)
	}
}
