package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Robindeep5394188/Material-Review/internal/core/container"
	"github.com/Robindeep5394188/Material-Review/internal/middleware"
	"github.com/Robindeep5394188/Material-Review/pkg/security"
)

// RegisterPublicRoutes wires the endpoints reachable without a token.
func RegisterPublicRoutes(router *gin.Engine, container *container.Container) {
	container.LoginHandler.RegisterRoutes(router)
}

// RegisterProtectedRoutes wires the authenticated API under /api.
func RegisterProtectedRoutes(router *gin.Engine, container *container.Container) {
	api := router.Group("/api")
	api.Use(security.JWTMiddleware())

	container.ReviewHandler.RegisterRoutes(api)
	container.ScreeningHandler.RegisterRoutes(api)
	container.IncomingHandler.RegisterRoutes(api)
	container.UserHandler.RegisterRoutes(api)
}

// RegisterUtilityRoutes wires the unauthenticated operational endpoints.
func RegisterUtilityRoutes(router *gin.Engine) {
	router.GET("/health", middleware.HealthCheckMiddleware())
}
