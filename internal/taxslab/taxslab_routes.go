package taxslab

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
	slabs := r.Group("/tax-slabs")
	{
		slabs.GET("",
			middleware.RateLimitByUser(5, 20),
			middleware.RBACAuthorize(rbacService, "tax_slab", "read"),
			h.GetAll,
		)
		slabs.GET("/:id",
			middleware.RateLimitByUser(5, 20),
			middleware.RBACAuthorize(rbacService, "tax_slab", "read"),
			h.GetByID,
		)
		slabs.POST("",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, "tax_slab", "create"),
			h.Create,
		)
		slabs.POST("/bulk",
			middleware.RateLimitByUser(0.2, 2),
			middleware.RBACAuthorize(rbacService, "tax_slab", "create"),
			middleware.Idempotency(rdb),
			h.BulkCreate,
		)
		slabs.PUT("/:id",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, "tax_slab", "update"),
			h.Update,
		)
		slabs.DELETE("/bulk",
			middleware.RateLimitByUser(0.2, 2),
			middleware.RBACAuthorize(rbacService, "tax_slab", "delete"),
			middleware.Idempotency(rdb),
			h.BulkDelete,
		)
		slabs.DELETE("/:id",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "tax_slab", "delete"),
			h.Delete,
		)
	}
}
