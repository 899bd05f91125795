package user

import (
	"ecosnap/internal/common/api"
	"ecosnap/internal/config"
	"ecosnap/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type UserApi struct {
	UserController *UserController
	Config         *config.Config
}

func NewUserApi(userController *UserController, cfg *config.Config) api.Route {
	return &UserApi{
		UserController: userController,
		Config:         cfg,
	}
}

func (a *UserApi) Setup(app *fiber.App) {
	group := app.Group("/api/users")

	// Public
	group.Post("/register", a.UserController.Register)
	group.Post("/login", a.UserController.Login)
	group.Post("/forgot-password", a.UserController.ForgotPassword)

	// Authenticated
	auth := middleware.AuthMiddleware(a.Config.SkipAuth)
	group.Get("/employees", auth, a.UserController.ListEmployees)
	group.Get("/citizens", auth, a.UserController.ListCitizens)
	group.Get("/:id/history", auth, a.UserController.GetHistory)
	group.Get("/:id/qrcode", auth, a.UserController.GetQRCode)
	group.Get("/:id", auth, a.UserController.GetUser)
	group.Put("/:id", auth, a.UserController.UpdateProfile)
}
