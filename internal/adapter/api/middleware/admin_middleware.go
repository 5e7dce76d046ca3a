package middleware

import (
	"github.com/labstack/echo/v4"

	"mentorhub/internal/domain/repository"
	"mentorhub/pkg/errors"
	"mentorhub/pkg/logger"
	"mentorhub/pkg/response"
)

type AdminMiddleware struct {
	staffRepo repository.StaffRepository
}

func NewAdminMiddleware(staffRepo repository.StaffRepository) *AdminMiddleware {
	return &AdminMiddleware{
		staffRepo: staffRepo,
	}
}

// AdminOnly requires an authenticated admin. A genuine authorization denial
// is logged and answered with a generic forbidden notice; it never forces a
// logout.
func (m *AdminMiddleware) AdminOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		uid, ok := c.Get("uid").(string)
		if !ok {
			return response.Error(c, errors.Unauthorized("Authentication required", nil))
		}

		userType, _ := c.Get("userType").(string)
		if userType != "admin" {
			logger.Warn("Forbidden admin access attempt by %s (type %s)", uid, userType)
			return response.Error(c, errors.Forbidden("Admin privileges required", nil))
		}

		staff, err := m.staffRepo.GetByID(c.Request().Context(), uid)
		if err != nil {
			return response.Error(c, errors.Internal("Failed to verify admin privileges", err))
		}
		if staff.Role != "admin" || !staff.IsActive {
			logger.Warn("Forbidden admin access attempt by %s", uid)
			return response.Error(c, errors.Forbidden("Admin privileges required", nil))
		}

		return next(c)
	}
}
