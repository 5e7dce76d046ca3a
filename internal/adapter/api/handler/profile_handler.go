package handler

import (
	"github.com/labstack/echo/v4"

	"mentorhub/internal/domain/entity"
	"mentorhub/internal/domain/service"
	"mentorhub/internal/usecase"
	"mentorhub/pkg/errors"
	"mentorhub/pkg/response"
)

type ProfileHandler struct {
	profileUseCase *usecase.ProfileUseCase
}

func NewProfileHandler(profileUseCase *usecase.ProfileUseCase) *ProfileHandler {
	return &ProfileHandler{
		profileUseCase: profileUseCase,
	}
}

// authorizeOwner allows the owner of the record and any admin.
func authorizeOwner(c echo.Context, id string) error {
	uid, _ := c.Get("uid").(string)
	userType, _ := c.Get("userType").(string)
	if uid == id || userType == usecase.UserTypeAdmin {
		return nil
	}
	return errors.Forbidden("You can only edit your own profile", nil)
}

type basicInfoRequest struct {
	Username string `json:"username" validate:"required,min=3"`
	Bio      string `json:"bio" validate:"required,min=50"`
	Image    string `json:"image"`
}

type contactRequest struct {
	Phone string `json:"phone" validate:"required"`
}

type socialLinksRequest struct {
	LinkedinUrl string   `json:"linkedinUrl" validate:"omitempty,url"`
	WebsiteUrl  string   `json:"websiteUrl" validate:"omitempty,url"`
	OtherUrls   []string `json:"otherUrls" validate:"omitempty,dive,url"`
}

type professionalInfoRequest struct {
	Rate           float64  `json:"rate" validate:"required,gt=0"`
	AdvisoryTopics []string `json:"advisoryTopics"`
}

type expertiseRequest struct {
	ExpertiseAreas []entity.ExpertiseArea `json:"expertiseAreas" validate:"required,min=1,dive"`
}

type combinedUpdateRequest struct {
	Username       string                 `json:"username"`
	Phone          string                 `json:"phone"`
	Bio            string                 `json:"bio"`
	Image          string                 `json:"image"`
	LinkedinUrl    string                 `json:"linkedinUrl" validate:"omitempty,url"`
	WebsiteUrl     string                 `json:"websiteUrl" validate:"omitempty,url"`
	OtherUrls      []string               `json:"otherUrls" validate:"omitempty,dive,url"`
	Rate           *float64               `json:"rate"`
	ExpertiseAreas []entity.ExpertiseArea `json:"expertiseAreas"`
}

type certificateRequest struct {
	Name        string `form:"name" json:"name" validate:"required"`
	Description string `form:"description" json:"description"`
	IssueDate   string `form:"issueDate" json:"issueDate"`
}

func (h *ProfileHandler) GetMyStudentProfile(c echo.Context) error {
	uid, _ := c.Get("uid").(string)
	profile, err := h.profileUseCase.GetStudentProfile(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, profile)
}

func (h *ProfileHandler) GetMyStaffProfile(c echo.Context) error {
	uid, _ := c.Get("uid").(string)
	profile, err := h.profileUseCase.GetStaffProfile(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, profile)
}

func (h *ProfileHandler) GetStaffProfile(c echo.Context) error {
	profile, err := h.profileUseCase.GetStaffProfile(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, profile)
}

func (h *ProfileHandler) UpdateBasicInfo(role service.Role) echo.HandlerFunc {
	return func(c echo.Context) error {
		id := c.Param("id")
		if err := authorizeOwner(c, id); err != nil {
			return response.Error(c, err)
		}

		var req basicInfoRequest
		if err := c.Bind(&req); err != nil {
			return response.Error(c, errors.BadRequest("Invalid request body", err))
		}
		if err := c.Validate(&req); err != nil {
			return response.Error(c, err)
		}

		status, err := h.profileUseCase.UpdateBasicInfo(c.Request().Context(), role, id, usecase.BasicInfoInput{
			Username: req.Username,
			Bio:      req.Bio,
			Image:    req.Image,
		})
		if err != nil {
			return response.Error(c, err)
		}
		return response.Success(c, map[string]interface{}{
			"message":       "Basic info updated",
			"profileStatus": status,
		})
	}
}

func (h *ProfileHandler) UpdateContact(role service.Role) echo.HandlerFunc {
	return func(c echo.Context) error {
		id := c.Param("id")
		if err := authorizeOwner(c, id); err != nil {
			return response.Error(c, err)
		}

		var req contactRequest
		if err := c.Bind(&req); err != nil {
			return response.Error(c, errors.BadRequest("Invalid request body", err))
		}
		if err := c.Validate(&req); err != nil {
			return response.Error(c, err)
		}

		status, err := h.profileUseCase.UpdateContact(c.Request().Context(), role, id, usecase.ContactInput{
			Phone: req.Phone,
		})
		if err != nil {
			return response.Error(c, err)
		}
		return response.Success(c, map[string]interface{}{
			"message":       "Contact info updated",
			"profileStatus": status,
		})
	}
}

func (h *ProfileHandler) UpdateSocialLinks(role service.Role) echo.HandlerFunc {
	return func(c echo.Context) error {
		id := c.Param("id")
		if err := authorizeOwner(c, id); err != nil {
			return response.Error(c, err)
		}

		var req socialLinksRequest
		if err := c.Bind(&req); err != nil {
			return response.Error(c, errors.BadRequest("Invalid request body", err))
		}
		if err := c.Validate(&req); err != nil {
			return response.Error(c, err)
		}

		status, err := h.profileUseCase.UpdateSocialLinks(c.Request().Context(), role, id, usecase.SocialLinksInput{
			LinkedinUrl: req.LinkedinUrl,
			WebsiteUrl:  req.WebsiteUrl,
			OtherUrls:   req.OtherUrls,
		})
		if err != nil {
			return response.Error(c, err)
		}
		return response.Success(c, map[string]interface{}{
			"message":       "Social links updated",
			"profileStatus": status,
		})
	}
}

func (h *ProfileHandler) UpdateProfessionalInfo(c echo.Context) error {
	id := c.Param("id")
	if err := authorizeOwner(c, id); err != nil {
		return response.Error(c, err)
	}

	var req professionalInfoRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	status, err := h.profileUseCase.UpdateProfessionalInfo(c.Request().Context(), id, usecase.ProfessionalInfoInput{
		Rate:           req.Rate,
		AdvisoryTopics: req.AdvisoryTopics,
	})
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]interface{}{
		"message":       "Professional info updated",
		"profileStatus": status,
	})
}

func (h *ProfileHandler) UpdateExpertise(c echo.Context) error {
	id := c.Param("id")
	if err := authorizeOwner(c, id); err != nil {
		return response.Error(c, err)
	}

	var req expertiseRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	status, err := h.profileUseCase.UpdateExpertise(c.Request().Context(), id, req.ExpertiseAreas)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]interface{}{
		"message":       "Expertise updated",
		"profileStatus": status,
	})
}

func (h *ProfileHandler) UpdateProfile(role service.Role) echo.HandlerFunc {
	return func(c echo.Context) error {
		id := c.Param("id")
		if err := authorizeOwner(c, id); err != nil {
			return response.Error(c, err)
		}

		var req combinedUpdateRequest
		if err := c.Bind(&req); err != nil {
			return response.Error(c, errors.BadRequest("Invalid request body", err))
		}
		if err := c.Validate(&req); err != nil {
			return response.Error(c, err)
		}

		input := usecase.CombinedUpdateInput{
			Username:       req.Username,
			Phone:          req.Phone,
			Bio:            req.Bio,
			Image:          req.Image,
			LinkedinUrl:    req.LinkedinUrl,
			WebsiteUrl:     req.WebsiteUrl,
			OtherUrls:      req.OtherUrls,
			ExpertiseAreas: req.ExpertiseAreas,
		}
		if req.Rate != nil {
			input.Rate = *req.Rate
			input.HasRate = true
		}

		status, err := h.profileUseCase.ApplyCombinedUpdate(c.Request().Context(), role, id, input)
		if err != nil {
			return response.Error(c, err)
		}
		return response.Success(c, map[string]interface{}{
			"message":       "Profile updated",
			"profileStatus": status,
		})
	}
}

func (h *ProfileHandler) UploadImage(role service.Role) echo.HandlerFunc {
	return func(c echo.Context) error {
		id := c.Param("id")
		if err := authorizeOwner(c, id); err != nil {
			return response.Error(c, err)
		}

		fileHeader, err := c.FormFile("file")
		if err != nil {
			return response.Error(c, errors.BadRequest("Image file is required", err))
		}
		file, err := fileHeader.Open()
		if err != nil {
			return response.Error(c, errors.Internal("Failed to read uploaded file", err))
		}
		defer file.Close()

		status, err := h.profileUseCase.UploadImage(
			c.Request().Context(), role, id,
			file, fileHeader.Header.Get("Content-Type"), fileHeader.Size,
		)
		if err != nil {
			return response.Error(c, err)
		}
		return response.Success(c, map[string]interface{}{
			"message":       "Profile image uploaded",
			"profileStatus": status,
		})
	}
}

func (h *ProfileHandler) UploadCV(c echo.Context) error {
	id := c.Param("id")
	if err := authorizeOwner(c, id); err != nil {
		return response.Error(c, err)
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return response.Error(c, errors.BadRequest("CV file is required", err))
	}
	file, err := fileHeader.Open()
	if err != nil {
		return response.Error(c, errors.Internal("Failed to read uploaded file", err))
	}
	defer file.Close()

	status, err := h.profileUseCase.UploadCV(
		c.Request().Context(), id,
		file, fileHeader.Header.Get("Content-Type"), fileHeader.Filename, fileHeader.Size,
	)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]interface{}{
		"message":       "CV uploaded",
		"profileStatus": status,
	})
}

func (h *ProfileHandler) AddCertificate(c echo.Context) error {
	id := c.Param("id")
	if err := authorizeOwner(c, id); err != nil {
		return response.Error(c, err)
	}

	var req certificateRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return response.Error(c, errors.BadRequest("Certificate file is required", err))
	}
	file, err := fileHeader.Open()
	if err != nil {
		return response.Error(c, errors.Internal("Failed to read uploaded file", err))
	}
	defer file.Close()

	cert, err := h.profileUseCase.AddCertificate(
		c.Request().Context(), id,
		usecase.CertificateInput{
			Name:        req.Name,
			Description: req.Description,
			IssueDate:   req.IssueDate,
		},
		file, fileHeader.Header.Get("Content-Type"), fileHeader.Filename, fileHeader.Size,
	)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, cert)
}

func (h *ProfileHandler) UpdateCertificate(c echo.Context) error {
	id := c.Param("id")
	if err := authorizeOwner(c, id); err != nil {
		return response.Error(c, err)
	}

	var req certificateRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	cert, err := h.profileUseCase.UpdateCertificateDetails(
		c.Request().Context(), id, c.Param("certId"),
		usecase.CertificateInput{
			Name:        req.Name,
			Description: req.Description,
			IssueDate:   req.IssueDate,
		},
	)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, cert)
}

func (h *ProfileHandler) DeleteCertificate(c echo.Context) error {
	id := c.Param("id")
	if err := authorizeOwner(c, id); err != nil {
		return response.Error(c, err)
	}

	if err := h.profileUseCase.DeleteCertificate(c.Request().Context(), id, c.Param("certId")); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]string{
		"message": "Certificate deleted",
	})
}
