package donation

import (
	"ecosnap/internal/common/api"
	"ecosnap/internal/config"
	"ecosnap/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type DonationApi struct {
	DonationController *DonationController
	Config             *config.Config
}

func NewDonationApi(donationController *DonationController, cfg *config.Config) api.Route {
	return &DonationApi{
		DonationController: donationController,
		Config:             cfg,
	}
}

// Setup registers the plain CRUD routes. Assignment and claiming live with
// the task workflow, which owns the cross-entity transitions.
func (a *DonationApi) Setup(app *fiber.App) {
	group := app.Group("/api/donations", middleware.AuthMiddleware(a.Config.SkipAuth))

	group.Post("/", a.DonationController.CreateDonation)
	group.Get("/", a.DonationController.ListDonations)
	group.Put("/:id", a.DonationController.UpdateDonation)
}
