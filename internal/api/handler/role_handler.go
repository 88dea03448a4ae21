package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bookstore/identity-service/internal/core/ports"
)

type RoleHandler struct {
	roleService ports.RoleService
}

func NewRoleHandler(roleService ports.RoleService) *RoleHandler {
	return &RoleHandler{roleService: roleService}
}

// AssignRoles adds a set of role names to a user. Admin only.
//
// @Summary      Assign roles to a user
// @Tags         roles
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        userId  path      string    true  "User ID"
// @Param        body    body      []string  true  "Role names"
// @Success      200     {object}  map[string]string
// @Failure      400     {object}  map[string]string
// @Failure      401     {object}  map[string]string
// @Failure      403     {object}  map[string]string
// @Router       /api/users/{userId}/roles [post]
func (h *RoleHandler) AssignRoles(c echo.Context) error {
	var roleNames []string
	if err := c.Bind(&roleNames); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if len(roleNames) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "role set cannot be empty")
	}

	if err := h.roleService.AssignRoles(c.Request().Context(), c.Param("userId"), roleNames); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Roles assigned"})
}

// CreateRole registers a new role name. Admin only.
//
// @Summary      Create a role
// @Tags         roles
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createRoleRequest  true  "Role"
// @Success      200   {object}  domain.Role
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /api/roles [post]
func (h *RoleHandler) CreateRole(c echo.Context) error {
	var req createRoleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	role, err := h.roleService.CreateRole(c.Request().Context(), req.Name)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, role)
}
