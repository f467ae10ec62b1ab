package employee

import (
	"github.com/FurowKick/phone-directory/internal/config"
	"github.com/FurowKick/phone-directory/internal/domain"
	"github.com/FurowKick/phone-directory/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	jwtCfg config.JWT,
	logger *zap.Logger,
) {
	employees := r.Group("/employees")
	employees.Use(middleware.AuthMiddleware(jwtCfg))
	employees.Use(middleware.ContextLogger(logger))
	{
		employees.GET("", middleware.RateLimitByUser(5, 20), handler.GetAll)
		employees.GET("/search", middleware.RateLimitByUser(5, 20), handler.Search)
		employees.GET("/profile", handler.GetProfile)
		employees.PUT("/profile", middleware.RateLimitByUser(1, 3), handler.UpdateProfile)

		employees.POST("",
			middleware.RequireRole(domain.RoleAdmin),
			middleware.RateLimitByUser(0.5, 2),
			handler.Create,
		)
		employees.PUT("/:id",
			middleware.RequireRole(domain.RoleAdmin),
			middleware.RateLimitByUser(1, 3),
			handler.UpdateByID,
		)
		employees.DELETE("/:id",
			middleware.RequireRole(domain.RoleAdmin),
			middleware.RateLimitByUser(0.5, 2),
			handler.Delete,
		)
	}
}
