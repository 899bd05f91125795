package dashboard

import (
	"ecosnap/internal/common/api"
	"ecosnap/internal/config"
	"ecosnap/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type DashboardApi struct {
	DashboardController *DashboardController
	Config              *config.Config
}

func NewDashboardApi(dashboardController *DashboardController, cfg *config.Config) api.Route {
	return &DashboardApi{
		DashboardController: dashboardController,
		Config:              cfg,
	}
}

func (a *DashboardApi) Setup(app *fiber.App) {
	app.Get("/api/admin/dashboard-stats",
		middleware.AuthMiddleware(a.Config.SkipAuth),
		a.DashboardController.GetStats,
	)
}
