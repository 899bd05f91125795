package report

import (
	"ecosnap/internal/common/api"
	"ecosnap/internal/config"
	"ecosnap/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type ReportApi struct {
	ReportController *ReportController
	Config           *config.Config
}

func NewReportApi(reportController *ReportController, cfg *config.Config) api.Route {
	return &ReportApi{
		ReportController: reportController,
		Config:           cfg,
	}
}

func (a *ReportApi) Setup(app *fiber.App) {
	app.Get("/api/admin/reports/payments",
		middleware.AuthMiddleware(a.Config.SkipAuth),
		a.ReportController.ExportPayments,
	)
}
