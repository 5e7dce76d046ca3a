package router

import (
	"github.com/labstack/echo/v4"

	"mentorhub/internal/adapter/api/handler"
	"mentorhub/internal/adapter/api/middleware"
)

func SetupWizardRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	wizardHandler := handler.GetWizardHandler()

	setup := e.Group("/v1/setup")
	setup.Use(authMiddleware.Authenticate)

	setup.GET("", wizardHandler.Current)
	setup.POST("/start", wizardHandler.Start)
	setup.POST("/next", wizardHandler.Next)
	setup.POST("/back", wizardHandler.Back)
	setup.POST("/expertise", wizardHandler.ToggleExpertise)
	setup.POST("/skip", wizardHandler.Skip)
	setup.POST("/complete", wizardHandler.Complete)
}
