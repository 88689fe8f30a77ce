package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/rolebase/blog-api/internal/api/metrics"
	"github.com/rolebase/blog-api/internal/core/ports"
)

// UserHandler handles the admin-only user directory endpoints.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

type updateRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=READER WRITER ADMIN"`
}

type userResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	PostCount int64     `json:"post_count"`
}

type listUsersResponse struct {
	Users []userResponse `json:"users"`
}

// List handles GET /users (ADMIN only).
//
// @Summary      List all users with post counts
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listUsersResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /users [get]
func (h *UserHandler) List(c echo.Context) error {
	items, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}

	users := make([]userResponse, len(items))
	for i, item := range items {
		users[i] = userResponse{
			ID:        item.User.ID,
			Email:     item.User.Email,
			Name:      item.User.Name,
			Role:      string(item.User.Role),
			CreatedAt: item.User.CreatedAt.UTC(),
			UpdatedAt: item.User.UpdatedAt.UTC(),
			PostCount: item.PostCount,
		}
	}
	return c.JSON(http.StatusOK, listUsersResponse{Users: users})
}

// UpdateRole handles PATCH /users/:id/role (ADMIN only).
//
// @Summary      Change a user's role
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "User id"
// @Param        body  body      updateRoleRequest  true  "New role"
// @Success      200   {object}  userResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /users/{id}/role [patch]
func (h *UserHandler) UpdateRole(c echo.Context) error {
	var req updateRoleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.service.UpdateRole(c.Request().Context(), c.Param("id"), req.Role)
	if err != nil {
		return err
	}

	metrics.RoleChangesTotal.WithLabelValues(string(user.Role)).Inc()
	return c.JSON(http.StatusOK, userResponse{
		ID:        user.ID,
		Email:     user.Email,
		Name:      user.Name,
		Role:      string(user.Role),
		CreatedAt: user.CreatedAt.UTC(),
		UpdatedAt: user.UpdatedAt.UTC(),
	})
}
