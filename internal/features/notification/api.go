package notification

import (
	"ecosnap/internal/common/api"
	"ecosnap/internal/config"
	"ecosnap/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type NotificationApi struct {
	NotificationController *NotificationController
	Config                 *config.Config
}

func NewNotificationApi(notificationController *NotificationController, cfg *config.Config) api.Route {
	return &NotificationApi{
		NotificationController: notificationController,
		Config:                 cfg,
	}
}

func (a *NotificationApi) Setup(app *fiber.App) {
	app.Get("/api/tasks/send-reminders",
		middleware.AuthMiddleware(a.Config.SkipAuth),
		a.NotificationController.SendReminders,
	)
}
