package masterdata

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
	r.GET("/master-data/kinds", middleware.RateLimitByUser(3, 10), handler.Kinds)

	for _, kind := range Kinds() {
		group := r.Group("/" + kind.Slug)
		{
			group.GET("",
				middleware.RateLimitByUser(5, 20),
				middleware.RBACAuthorize(rbacService, kind.Resource, "read"),
				handler.GetAll(kind),
			)
			group.GET("/:id",
				middleware.RateLimitByUser(5, 20),
				middleware.RBACAuthorize(rbacService, kind.Resource, "read"),
				handler.GetByID(kind),
			)
			group.POST("",
				middleware.RateLimitByUser(1, 5),
				middleware.RBACAuthorize(rbacService, kind.Resource, "create"),
				handler.Create(kind),
			)
			group.POST("/bulk",
				middleware.RateLimitByUser(0.2, 2),
				middleware.RBACAuthorize(rbacService, kind.Resource, "create"),
				middleware.Idempotency(rdb),
				handler.BulkCreate(kind),
			)
			group.PUT("/:id",
				middleware.RateLimitByUser(1, 5),
				middleware.RBACAuthorize(rbacService, kind.Resource, "update"),
				handler.Update(kind),
			)
			group.DELETE("/bulk",
				middleware.RateLimitByUser(0.2, 2),
				middleware.RBACAuthorize(rbacService, kind.Resource, "delete"),
				middleware.Idempotency(rdb),
				handler.BulkDelete(kind),
			)
			group.DELETE("/:id",
				middleware.RateLimitByUser(0.5, 2),
				middleware.RBACAuthorize(rbacService, kind.Resource, "delete"),
				handler.Delete(kind),
			)
		}
	}
}
