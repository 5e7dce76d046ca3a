package router

import (
	"github.com/labstack/echo/v4"

	"mentorhub/internal/adapter/api/handler"
	"mentorhub/internal/adapter/api/middleware"
)

func SetupAdminRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	adminHandler := handler.GetAdminHandler()
	eventsHandler := handler.GetAdminEventsHandler()

	admin := e.Group("/v1/admin")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(adminMiddleware.AdminOnly)

	admin.GET("/users", adminHandler.ListUsers)
	admin.PATCH("/users/:id/status", adminHandler.UpdateUserStatus)
	admin.POST("/staff/:id/approve", adminHandler.ApproveStaff)
	admin.POST("/staff/:id/reject", adminHandler.RejectStaff)
	admin.GET("/stats", adminHandler.GetStats)
	admin.GET("/state", adminHandler.GetStoreState)
	admin.POST("/refresh", adminHandler.Refresh)

	// Websocket handshake authenticates via query token, not the header
	// middleware.
	e.GET("/v1/admin/events", eventsHandler.Stream)
}
