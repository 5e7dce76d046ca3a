package router

import (
	"github.com/labstack/echo/v4"

	"mentorhub/internal/adapter/api/handler"
	"mentorhub/internal/adapter/api/middleware"
)

func SetupCategoryRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	categoryHandler := handler.GetCategoryHandler()

	e.GET("/v1/categories", categoryHandler.List)
	e.GET("/v1/categories/:id", categoryHandler.GetByID)

	admin := e.Group("/v1/admin/categories")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(adminMiddleware.AdminOnly)

	admin.POST("", categoryHandler.Create)
	admin.POST("/:id/subcategories", categoryHandler.AddSubCategory)
	admin.DELETE("/:id", categoryHandler.Delete)
}
