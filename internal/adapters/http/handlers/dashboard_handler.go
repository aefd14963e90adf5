package handlers

import (
	"assofi/internal/core/services"
	"assofi/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// DashboardHandler handles dashboard endpoints
type DashboardHandler struct {
	dashboardService *services.DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
	}
}

// Get returns the aggregated dashboard
// @Summary Dashboard
// @Description Get the association overview. Sections that fail to load are listed in failed_sections and the rest is still returned.
// @Tags Dashboard
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /dashboard [get]
func (h *DashboardHandler) Get(c *fiber.Ctx) error {
	data, err := h.dashboardService.Get(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to get dashboard")
	}

	if data.Partial {
		return response.Success(c, "Dashboard retrieved with partial data", data)
	}
	return response.Success(c, "Dashboard retrieved successfully", data)
}
