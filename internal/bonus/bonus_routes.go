package bonus

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
	bonuses := r.Group("/bonuses")
	{
		bonuses.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "bonus", "read"),
			handler.GetAll,
		)

		bonuses.GET("/:id",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "bonus", "read"),
			handler.GetByID,
		)

		// POST "" already accepts a batch, so /bulk shares its reconciling handler.
		bonuses.POST("",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "bonus", "create"),
			middleware.Idempotency(rdb),
			handler.Create,
		)

		bonuses.POST("/bulk",
			middleware.RateLimitByUser(0.1, 1),
			middleware.RBACAuthorize(rbacService, "bonus", "create"),
			middleware.Idempotency(rdb),
			handler.Create,
		)

		bonuses.PUT("/:id",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "bonus", "update"),
			handler.Update,
		)

		bonuses.DELETE("/bulk",
			middleware.RateLimitByUser(0.1, 1),
			middleware.RBACAuthorize(rbacService, "bonus", "delete"),
			middleware.Idempotency(rdb),
			handler.BulkDelete,
		)

		bonuses.DELETE("/:id",
			middleware.RateLimitByUser(0.05, 1),
			middleware.RBACAuthorize(rbacService, "bonus", "delete"),
			handler.Delete,
		)
	}
}
