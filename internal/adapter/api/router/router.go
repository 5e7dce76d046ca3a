package router

import (
	"github.com/labstack/echo/v4"

	"mentorhub/internal/adapter/api/middleware"
)

func Setup(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	SetupAuthRouter(e, authMiddleware)
	SetupProfileRouter(e, authMiddleware)
	SetupWizardRouter(e, authMiddleware)
	SetupCategoryRouter(e, authMiddleware, adminMiddleware)
	SetupAdminRouter(e, authMiddleware, adminMiddleware)
	SetupHealthRouter(e)
}
