package task

import (
	"ecosnap/internal/common/api"
	"ecosnap/internal/config"
	"ecosnap/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type TaskApi struct {
	TaskController         *TaskController
	DonationTaskController *DonationTaskController
	Config                 *config.Config
}

func NewTaskApi(taskController *TaskController, donationTaskController *DonationTaskController, cfg *config.Config) api.Route {
	return &TaskApi{
		TaskController:         taskController,
		DonationTaskController: donationTaskController,
		Config:                 cfg,
	}
}

func (a *TaskApi) Setup(app *fiber.App) {
	auth := middleware.AuthMiddleware(a.Config.SkipAuth)

	tasks := app.Group("/api/tasks", auth)
	tasks.Post("/bulk", a.TaskController.AssignBulk)
	tasks.Get("/", a.TaskController.ListTasks)
	tasks.Get("/employee/:employeeId", a.TaskController.ListEmployeeTasks)
	tasks.Put("/:id", a.TaskController.UpdateTask)

	donations := app.Group("/api/donations", auth)
	donations.Post("/assign", a.DonationTaskController.AssignDonations)
	donations.Put("/:id/claim", a.DonationTaskController.ClaimDonation)
}
