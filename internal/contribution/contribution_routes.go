package contribution

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
	for _, scheme := range Schemes() {
		group := r.Group("/" + scheme.Slug)
		{
			group.GET("",
				middleware.RateLimitByUser(5, 20),
				middleware.RBACAuthorize(rbacService, scheme.Resource, "read"),
				handler.GetAll(scheme),
			)
			group.GET("/:id",
				middleware.RateLimitByUser(5, 20),
				middleware.RBACAuthorize(rbacService, scheme.Resource, "read"),
				handler.GetByID(scheme),
			)
			group.POST("",
				middleware.RateLimitByUser(1, 5),
				middleware.RBACAuthorize(rbacService, scheme.Resource, "create"),
				handler.Create(scheme),
			)
			group.POST("/bulk",
				middleware.RateLimitByUser(0.2, 2),
				middleware.RBACAuthorize(rbacService, scheme.Resource, "create"),
				middleware.Idempotency(rdb),
				handler.BulkCreate(scheme),
			)
			group.PUT("/:id",
				middleware.RateLimitByUser(1, 5),
				middleware.RBACAuthorize(rbacService, scheme.Resource, "update"),
				handler.Update(scheme),
			)
			group.DELETE("/bulk",
				middleware.RateLimitByUser(0.2, 2),
				middleware.RBACAuthorize(rbacService, scheme.Resource, "delete"),
				middleware.Idempotency(rdb),
				handler.BulkDelete(scheme),
			)
			group.DELETE("/:id",
				middleware.RateLimitByUser(0.5, 2),
				middleware.RBACAuthorize(rbacService, scheme.Resource, "delete"),
				handler.Delete(scheme),
			)
		}
	}
}
