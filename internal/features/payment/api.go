package payment

import (
	"ecosnap/internal/common/api"
	"ecosnap/internal/config"
	"ecosnap/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type PaymentApi struct {
	PaymentController *PaymentController
	Config            *config.Config
}

func NewPaymentApi(paymentController *PaymentController, cfg *config.Config) api.Route {
	return &PaymentApi{
		PaymentController: paymentController,
		Config:            cfg,
	}
}

func (a *PaymentApi) Setup(app *fiber.App) {
	group := app.Group("/api/payments", middleware.AuthMiddleware(a.Config.SkipAuth))

	group.Post("/", a.PaymentController.ProcessPayment)
	group.Get("/completed", a.PaymentController.ListCompleted)
	group.Get("/pending", a.PaymentController.ListPending)
	group.Get("/user/:userId", a.PaymentController.ListUserPayments)
}
