package complaint

import (
	"ecosnap/internal/common/api"
	"ecosnap/internal/config"
	"ecosnap/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type ComplaintApi struct {
	ComplaintController *ComplaintController
	Config              *config.Config
}

func NewComplaintApi(complaintController *ComplaintController, cfg *config.Config) api.Route {
	return &ComplaintApi{
		ComplaintController: complaintController,
		Config:              cfg,
	}
}

func (a *ComplaintApi) Setup(app *fiber.App) {
	group := app.Group("/api/complaints", middleware.AuthMiddleware(a.Config.SkipAuth))

	group.Post("/", a.ComplaintController.FileComplaint)
	group.Get("/", a.ComplaintController.ListComplaints)
	group.Get("/user/:userId", a.ComplaintController.ListByUser)
	group.Get("/employee/:employeeId", a.ComplaintController.ListByEmployee)
	group.Put("/:id", a.ComplaintController.UpdateComplaint)
}
