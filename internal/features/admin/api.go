package admin

import (
	"ecosnap/internal/common/api"
	"ecosnap/internal/config"
	"ecosnap/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type AdminApi struct {
	AdminController *AdminController
	Config          *config.Config
}

func NewAdminApi(adminController *AdminController, cfg *config.Config) api.Route {
	return &AdminApi{
		AdminController: adminController,
		Config:          cfg,
	}
}

func (a *AdminApi) Setup(app *fiber.App) {
	group := app.Group("/api/admin")

	group.Post("/login", a.AdminController.Login)

	auth := middleware.AuthMiddleware(a.Config.SkipAuth)
	group.Post("/employee", auth, a.AdminController.AddEmployee)
	group.Put("/employee/:id/status", auth, a.AdminController.SetEmployeeStatus)
	group.Put("/user/:id/status", auth, a.AdminController.SetUserStatus)
	group.Get("/employees", auth, a.AdminController.ListEmployees)
	group.Get("/users", auth, a.AdminController.ListUsers)
}
