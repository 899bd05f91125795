package dashboard

import (
	"github.com/gofiber/fiber/v2"
)

type DashboardController struct {
	DashboardService DashboardService
}

func NewDashboardController(dashboardService DashboardService) *DashboardController {
	return &DashboardController{DashboardService: dashboardService}
}

// GetStats godoc
// @Summary Admin dashboard statistics
// @Tags admin
// @Produce json
// @Success 200 {object} Stats
// @Router /api/admin/dashboard-stats [get]
func (ctrl *DashboardController) GetStats(ctx *fiber.Ctx) error {
	stats, err := ctrl.DashboardService.GetStats(ctx.UserContext())
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(stats)
}
