package handler

import (
	"github.com/labstack/echo/v4"

	"mentorhub/internal/domain/service"
	"mentorhub/internal/usecase"
	"mentorhub/pkg/errors"
	"mentorhub/pkg/response"
)

type WizardHandler struct {
	wizardUseCase *usecase.WizardUseCase
}

func NewWizardHandler(wizardUseCase *usecase.WizardUseCase) *WizardHandler {
	return &WizardHandler{
		wizardUseCase: wizardUseCase,
	}
}

type stepRequest struct {
	Username    *string  `json:"username"`
	Phone       *string  `json:"phone"`
	Bio         *string  `json:"bio"`
	Image       *string  `json:"image"`
	LinkedinUrl *string  `json:"linkedinUrl"`
	WebsiteUrl  *string  `json:"websiteUrl"`
	OtherUrls   []string `json:"otherUrls"`
	Rate        *float64 `json:"rate"`
}

type toggleExpertiseRequest struct {
	CategoryID    string `json:"categoryId" validate:"required"`
	SubCategoryID string `json:"subCategoryId" validate:"required"`
}

func (r stepRequest) toInput() usecase.StepInput {
	return usecase.StepInput{
		Username:    r.Username,
		Phone:       r.Phone,
		Bio:         r.Bio,
		Image:       r.Image,
		LinkedinUrl: r.LinkedinUrl,
		WebsiteUrl:  r.WebsiteUrl,
		OtherUrls:   r.OtherUrls,
		Rate:        r.Rate,
	}
}

// sessionRole maps the authenticated user type onto a wizard role. Admins
// have no profile to set up.
func sessionRole(c echo.Context) (string, service.Role, error) {
	uid, _ := c.Get("uid").(string)
	switch c.Get("userType") {
	case usecase.UserTypeStaff:
		return uid, service.RoleExpert, nil
	case usecase.UserTypeStudent:
		return uid, service.RoleStudent, nil
	}
	return "", "", errors.Forbidden("Profile setup is not available for this account", nil)
}

func (h *WizardHandler) Start(c echo.Context) error {
	uid, role, err := sessionRole(c)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, h.wizardUseCase.Start(uid, role))
}

func (h *WizardHandler) Current(c echo.Context) error {
	uid, _, err := sessionRole(c)
	if err != nil {
		return response.Error(c, err)
	}
	view, err := h.wizardUseCase.Current(uid)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, view)
}

func (h *WizardHandler) Next(c echo.Context) error {
	uid, _, err := sessionRole(c)
	if err != nil {
		return response.Error(c, err)
	}

	var req stepRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	view, err := h.wizardUseCase.Next(uid, req.toInput())
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, view)
}

func (h *WizardHandler) Back(c echo.Context) error {
	uid, _, err := sessionRole(c)
	if err != nil {
		return response.Error(c, err)
	}
	view, err := h.wizardUseCase.Back(uid)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, view)
}

func (h *WizardHandler) ToggleExpertise(c echo.Context) error {
	uid, _, err := sessionRole(c)
	if err != nil {
		return response.Error(c, err)
	}

	var req toggleExpertiseRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	view, err := h.wizardUseCase.ToggleExpertise(uid, req.CategoryID, req.SubCategoryID)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, view)
}

func (h *WizardHandler) Skip(c echo.Context) error {
	uid, _, err := sessionRole(c)
	if err != nil {
		return response.Error(c, err)
	}
	view, err := h.wizardUseCase.Skip(uid)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, view)
}

func (h *WizardHandler) Complete(c echo.Context) error {
	uid, _, err := sessionRole(c)
	if err != nil {
		return response.Error(c, err)
	}

	var req stepRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	view, err := h.wizardUseCase.Complete(c.Request().Context(), uid, req.toInput())
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, view)
}
