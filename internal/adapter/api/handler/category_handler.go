package handler

import (
	"github.com/labstack/echo/v4"

	"mentorhub/internal/usecase"
	"mentorhub/pkg/errors"
	"mentorhub/pkg/response"
)

type CategoryHandler struct {
	categoryUseCase *usecase.CategoryUseCase
}

func NewCategoryHandler(categoryUseCase *usecase.CategoryUseCase) *CategoryHandler {
	return &CategoryHandler{
		categoryUseCase: categoryUseCase,
	}
}

type createCategoryRequest struct {
	Name          string   `json:"name" validate:"required"`
	SubCategories []string `json:"subCategories" validate:"required,min=1,dive,required"`
}

type addSubCategoryRequest struct {
	Name string `json:"name" validate:"required"`
}

func (h *CategoryHandler) List(c echo.Context) error {
	categories, err := h.categoryUseCase.List(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, categories)
}

func (h *CategoryHandler) GetByID(c echo.Context) error {
	category, err := h.categoryUseCase.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, category)
}

func (h *CategoryHandler) Create(c echo.Context) error {
	var req createCategoryRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	category, err := h.categoryUseCase.Create(c.Request().Context(), usecase.CreateCategoryInput{
		Name:          req.Name,
		SubCategories: req.SubCategories,
	})
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, category)
}

func (h *CategoryHandler) AddSubCategory(c echo.Context) error {
	var req addSubCategoryRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	category, err := h.categoryUseCase.AddSubCategory(c.Request().Context(), c.Param("id"), req.Name)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, category)
}

func (h *CategoryHandler) Delete(c echo.Context) error {
	if err := h.categoryUseCase.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]string{
		"message": "Category deleted",
	})
}
