package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/younivent/platform/internal/core/ports"
)

type DashboardHandler struct {
	dashboards ports.DashboardService
}

func NewDashboardHandler(dashboards ports.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboards: dashboards}
}

// Get composes and returns the dashboard for the caller's role.
//
// @Summary      Get role dashboard
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.DashboardView
// @Failure      401  {object}  errorResponse
// @Router       /v1/dashboard [get]
func (h *DashboardHandler) Get(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	view, err := h.dashboards.Compose(c.Request().Context(), identity)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, view)
}
