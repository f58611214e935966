package dashboard

import (
	"github.com/gofiber/fiber/v2"
	"github.com/trackfit/backend/internal/auth"
	"github.com/trackfit/backend/internal/dto"
)

type DashboardHandler struct {
	dashboardService *DashboardService
}

func NewDashboardHandler(dashboardService *DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// Get handles GET /dashboard.
func (h *DashboardHandler) Get(c *fiber.Ctx) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	snapshot, err := h.dashboardService.Snapshot(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to build dashboard",
		})
	}
	return c.JSON(snapshot)
}
