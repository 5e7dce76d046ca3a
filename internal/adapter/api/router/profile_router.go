package router

import (
	"github.com/labstack/echo/v4"

	"mentorhub/internal/adapter/api/handler"
	"mentorhub/internal/adapter/api/middleware"
	"mentorhub/internal/domain/service"
)

func SetupProfileRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	profileHandler := handler.GetProfileHandler()

	students := e.Group("/v1/students")
	students.Use(authMiddleware.Authenticate)

	students.GET("/me", profileHandler.GetMyStudentProfile)
	students.PATCH("/:id", profileHandler.UpdateProfile(service.RoleStudent))
	students.PATCH("/:id/basic-info", profileHandler.UpdateBasicInfo(service.RoleStudent))
	students.PATCH("/:id/contact", profileHandler.UpdateContact(service.RoleStudent))
	students.PATCH("/:id/social-links", profileHandler.UpdateSocialLinks(service.RoleStudent))
	students.POST("/:id/image", profileHandler.UploadImage(service.RoleStudent))

	staff := e.Group("/v1/staff")
	staff.Use(authMiddleware.Authenticate)

	staff.GET("/me", profileHandler.GetMyStaffProfile)
	staff.GET("/:id", profileHandler.GetStaffProfile)
	staff.PATCH("/:id", profileHandler.UpdateProfile(service.RoleExpert))
	staff.PATCH("/:id/basic-info", profileHandler.UpdateBasicInfo(service.RoleExpert))
	staff.PATCH("/:id/contact", profileHandler.UpdateContact(service.RoleExpert))
	staff.PATCH("/:id/social-links", profileHandler.UpdateSocialLinks(service.RoleExpert))
	staff.PATCH("/:id/professional-info", profileHandler.UpdateProfessionalInfo)
	staff.PATCH("/:id/expertise", profileHandler.UpdateExpertise)
	staff.POST("/:id/image", profileHandler.UploadImage(service.RoleExpert))
	staff.POST("/:id/cv", profileHandler.UploadCV)
	staff.POST("/:id/certificates", profileHandler.AddCertificate)
	staff.PATCH("/:id/certificates/:certId", profileHandler.UpdateCertificate)
	staff.DELETE("/:id/certificates/:certId", profileHandler.DeleteCertificate)
}
