package auth

import (
	"speed-hrm/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, jwtSecret string) {
	auth := r.Group("/auth")
	{
		auth.POST("/login", middleware.RateLimitByIP(0.1, 5), h.Login)
		auth.POST("/logout", h.Logout)
		auth.GET("/me",
			middleware.AuthMiddleware(jwtSecret),
			middleware.RateLimitByUser(2, 5),
			h.Me,
		)
		auth.PUT("/password",
			middleware.AuthMiddleware(jwtSecret),
			middleware.RateLimitByUser(0.1, 2),
			h.ChangePassword,
		)
	}
}
