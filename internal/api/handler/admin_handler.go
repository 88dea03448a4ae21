package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bookstore/identity-service/internal/core/ports"
)

type AdminHandler struct {
	adminService ports.AdminService
}

func NewAdminHandler(adminService ports.AdminService) *AdminHandler {
	return &AdminHandler{adminService: adminService}
}

// Stats returns aggregate account figures. Admin only.
//
// @Summary      Account statistics
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.AdminStats
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /api/admin/stats [get]
func (h *AdminHandler) Stats(c echo.Context) error {
	stats, err := h.adminService.Stats(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, stats)
}
