package geography

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
	countries := r.Group("/countries")
	{
		countries.GET("",
			middleware.RateLimitByUser(5, 20),
			middleware.RBACAuthorize(rbacService, "country", "read"),
			h.GetCountries,
		)
		countries.GET("/:id",
			middleware.RateLimitByUser(5, 20),
			middleware.RBACAuthorize(rbacService, "country", "read"),
			h.GetCountryByID,
		)
		countries.POST("",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, "country", "create"),
			h.CreateCountry,
		)
		countries.PUT("/:id",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, "country", "update"),
			h.UpdateCountry,
		)
		countries.DELETE("/:id",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "country", "delete"),
			h.DeleteCountry,
		)
	}

	states := r.Group("/states")
	{
		states.GET("",
			middleware.RateLimitByUser(5, 20),
			middleware.RBACAuthorize(rbacService, "state", "read"),
			h.GetStates,
		)
		states.GET("/:id",
			middleware.RateLimitByUser(5, 20),
			middleware.RBACAuthorize(rbacService, "state", "read"),
			h.GetStateByID,
		)
		states.POST("",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, "state", "create"),
			h.CreateState,
		)
		states.PUT("/:id",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, "state", "update"),
			h.UpdateState,
		)
		states.DELETE("/:id",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "state", "delete"),
			h.DeleteState,
		)
	}

	cities := r.Group("/cities")
	{
		cities.GET("",
			middleware.RateLimitByUser(5, 20),
			middleware.RBACAuthorize(rbacService, "city", "read"),
			h.GetCities,
		)
		cities.GET("/:id",
			middleware.RateLimitByUser(5, 20),
			middleware.RBACAuthorize(rbacService, "city", "read"),
			h.GetCityByID,
		)
		cities.POST("",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, "city", "create"),
			h.CreateCity,
		)
		cities.PUT("/:id",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, "city", "update"),
			h.UpdateCity,
		)
		cities.DELETE("/:id",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "city", "delete"),
			h.DeleteCity,
		)
		cities.GET("/resolve-province",
			middleware.RateLimitByUser(5, 20),
			middleware.RBACAuthorize(rbacService, "city", "read"),
			h.ResolveProvince,
		)
		cities.POST("/bulk",
			middleware.RateLimitByUser(0.2, 2),
			middleware.RBACAuthorize(rbacService, "city", "create"),
			middleware.Idempotency(rdb),
			h.BulkCreateCities,
		)
		cities.DELETE("/bulk",
			middleware.RateLimitByUser(0.2, 2),
			middleware.RBACAuthorize(rbacService, "city", "delete"),
			middleware.Idempotency(rdb),
			h.BulkDeleteCities,
		)
	}
}
