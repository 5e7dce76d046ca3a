package router

import (
	"github.com/labstack/echo/v4"

	"mentorhub/internal/adapter/api/handler"
	"mentorhub/internal/adapter/api/middleware"
)

// SetupAuthRouter initializes auth routes
func SetupAuthRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	authHandler := handler.GetAuthHandler()

	// Public routes, tightly rate limited
	public := e.Group("/v1/auth")
	public.Use(middleware.AuthRateLimit())

	public.POST("/student/register", authHandler.RegisterStudent)
	public.POST("/staff/register", authHandler.RegisterStaff)
	public.POST("/login", authHandler.Login)
	public.POST("/google/signin", authHandler.GoogleSignIn)
	public.POST("/google/signup", authHandler.GoogleSignUp)

	// Protected routes
	protected := e.Group("/v1/auth")
	protected.Use(authMiddleware.Authenticate)

	protected.POST("/logout", authHandler.Logout)
}
