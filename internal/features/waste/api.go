package waste

import (
	"ecosnap/internal/common/api"
	"ecosnap/internal/config"
	"ecosnap/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type WasteApi struct {
	WasteController *WasteController
	Config          *config.Config
}

func NewWasteApi(wasteController *WasteController, cfg *config.Config) api.Route {
	return &WasteApi{
		WasteController: wasteController,
		Config:          cfg,
	}
}

func (a *WasteApi) Setup(app *fiber.App) {
	group := app.Group("/api/waste", middleware.AuthMiddleware(a.Config.SkipAuth))

	group.Post("/request", a.WasteController.CreateRequest)
	group.Get("/requests", a.WasteController.ListRequests)
	group.Get("/requests/paymented", a.WasteController.ListPaymented)
	group.Get("/requests/:id", a.WasteController.GetRequest)
	group.Put("/requests/:id", a.WasteController.UpdateRequest)
}
