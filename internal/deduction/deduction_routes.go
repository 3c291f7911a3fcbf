package deduction

import (
	"speed-hrm/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService middleware.RBACService,
	rdb *redis.Client,
) {
	deductions := r.Group("/deductions")
	{
		deductions.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "deduction", "read"),
			handler.GetAll,
		)

		deductions.GET("/:id",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "deduction", "read"),
			handler.GetByID,
		)

		// POST "" already accepts a batch, so /bulk shares its reconciling handler.
		deductions.POST("",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "deduction", "create"),
			middleware.Idempotency(rdb),
			handler.Create,
		)

		deductions.POST("/bulk",
			middleware.RateLimitByUser(0.1, 1),
			middleware.RBACAuthorize(rbacService, "deduction", "create"),
			middleware.Idempotency(rdb),
			handler.Create,
		)

		deductions.PUT("/:id",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "deduction", "update"),
			handler.Update,
		)

		deductions.DELETE("/bulk",
			middleware.RateLimitByUser(0.1, 1),
			middleware.RBACAuthorize(rbacService, "deduction", "delete"),
			middleware.Idempotency(rdb),
			handler.BulkDelete,
		)

		deductions.DELETE("/:id",
			middleware.RateLimitByUser(0.05, 1),
			middleware.RBACAuthorize(rbacService, "deduction", "delete"),
			handler.Delete,
		)
	}
}
