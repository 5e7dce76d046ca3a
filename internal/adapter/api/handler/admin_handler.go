package handler

import (
	"sort"
	"strings"

	"github.com/labstack/echo/v4"

	"mentorhub/internal/usecase"
	"mentorhub/pkg/errors"
	"mentorhub/pkg/response"
	"mentorhub/pkg/utils"
)

type AdminHandler struct {
	userStore *usecase.UserManagementStore
}

func NewAdminHandler(userStore *usecase.UserManagementStore) *AdminHandler {
	return &AdminHandler{
		userStore: userStore,
	}
}

type updateStatusRequest struct {
	Type   string `json:"type" validate:"required,oneof=student staff"`
	Status string `json:"status" validate:"required,oneof=active inactive blocked"`
}

// ListUsers serves the filtered admin view. Filters are applied through the
// store so its derived views stay the single source of truth; sorting and
// paging happen on the request's own copy.
func (h *AdminHandler) ListUsers(c echo.Context) error {
	ctx := c.Request().Context()
	if err := h.userStore.EnsureLoaded(ctx); err != nil {
		return response.Error(c, err)
	}

	h.userStore.SetFilters(usecase.Filters{
		Type:       c.QueryParam("type"),
		Status:     c.QueryParam("status"),
		SearchTerm: c.QueryParam("search"),
	})

	users := h.userStore.FilteredUsers()
	sortUsers(users, c.QueryParam("sortBy"), c.QueryParam("sortOrder"))

	params := utils.GetPaginationParams(c)
	total := len(users)
	start := params.Offset
	if start > total {
		start = total
	}
	end := start + params.PageSize
	if end > total {
		end = total
	}

	return response.Paginated(c, users[start:end], int64(total), params.Page, params.PageSize)
}

func sortUsers(users []usecase.User, sortBy, sortOrder string) {
	if sortBy == "" {
		return
	}
	desc := strings.EqualFold(sortOrder, "desc")
	sort.SliceStable(users, func(i, j int) bool {
		var less bool
		switch sortBy {
		case "email":
			less = strings.ToLower(users[i].Email) < strings.ToLower(users[j].Email)
		case "type":
			less = users[i].Type < users[j].Type
		case "status":
			less = users[i].Status < users[j].Status
		default:
			less = strings.ToLower(users[i].Name) < strings.ToLower(users[j].Name)
		}
		if desc {
			return !less
		}
		return less
	})
}

func (h *AdminHandler) UpdateUserStatus(c echo.Context) error {
	var req updateStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	if err := h.userStore.UpdateUserStatus(
		c.Request().Context(), c.Param("id"), req.Type, usecase.UserStatus(req.Status),
	); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]string{
		"message": "User status updated",
	})
}

func (h *AdminHandler) ApproveStaff(c echo.Context) error {
	if err := h.userStore.ApproveStaff(c.Request().Context(), c.Param("id")); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]string{
		"message": "Staff member approved",
	})
}

func (h *AdminHandler) RejectStaff(c echo.Context) error {
	if err := h.userStore.RejectStaff(c.Request().Context(), c.Param("id")); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]string{
		"message": "Staff member rejected",
	})
}

func (h *AdminHandler) GetStats(c echo.Context) error {
	if err := h.userStore.EnsureLoaded(c.Request().Context()); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, h.userStore.Stats())
}

// GetStoreState exposes per-collection load state so the dashboard can show
// a partial view when one collection failed.
func (h *AdminHandler) GetStoreState(c echo.Context) error {
	students, staff, loading, lastError := h.userStore.States()
	return response.Success(c, map[string]interface{}{
		"students":  students,
		"staff":     staff,
		"isLoading": loading,
		"lastError": lastError,
	})
}

func (h *AdminHandler) Refresh(c echo.Context) error {
	if err := h.userStore.ForceRefresh(c.Request().Context()); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]string{
		"message": "User data refreshed",
	})
}
