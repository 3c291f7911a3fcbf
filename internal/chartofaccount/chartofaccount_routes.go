package chartofaccount

import (
	"speed-hrm/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	h *Handler,
	rbacService middleware.RBACService,
	rdb *redis.Client,
) {
	accounts := r.Group("/chart-of-accounts")
	{
		accounts.GET("",
			middleware.RateLimitByUser(5, 20),
			middleware.RBACAuthorize(rbacService, "chart_of_account", "read"),
			h.GetAll,
		)
		accounts.GET("/tree",
			middleware.RateLimitByUser(5, 20),
			middleware.RBACAuthorize(rbacService, "chart_of_account", "read"),
			h.GetTree,
		)
		accounts.GET("/:id",
			middleware.RateLimitByUser(5, 20),
			middleware.RBACAuthorize(rbacService, "chart_of_account", "read"),
			h.GetByID,
		)
		accounts.POST("",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, "chart_of_account", "create"),
			h.Create,
		)
		accounts.POST("/bulk",
			middleware.RateLimitByUser(0.2, 2),
			middleware.RBACAuthorize(rbacService, "chart_of_account", "create"),
			middleware.Idempotency(rdb),
			h.BulkCreate,
		)
		accounts.POST("/seed",
			middleware.RateLimitByUser(0.2, 2),
			middleware.RBACAuthorize(rbacService, "chart_of_account", "seed"),
			middleware.Idempotency(rdb),
			h.Seed,
		)
		accounts.PUT("/:id",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, "chart_of_account", "update"),
			h.Update,
		)
		accounts.DELETE("/bulk",
			middleware.RateLimitByUser(0.2, 2),
			middleware.RBACAuthorize(rbacService, "chart_of_account", "delete"),
			middleware.Idempotency(rdb),
			h.BulkDelete,
		)
		accounts.DELETE("/:id",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "chart_of_account", "delete"),
			h.Delete,
		)
	}
}
