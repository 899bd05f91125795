package donation

import (
	"errors"

	"ecosnap/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

type DonationController struct {
	DonationService DonationService
}

func NewDonationController(donationService DonationService) *DonationController {
	return &DonationController{DonationService: donationService}
}

type createDonationInput struct {
	UserID      string `json:"userId" form:"userId"`
	ItemType    string `json:"itemType" form:"itemType"`
	Description string `json:"description" form:"description"`
	Image       string `json:"image" form:"image"`
}

type updateDonationInput struct {
	Status string `json:"status" form:"status"`
}

// CreateDonation godoc
// @Summary Create a donation offer
// @Tags donations
// @Accept json
// @Produce json
// @Success 201 {object} Donation
// @Failure 400 {object} map[string]interface{}
// @Router /api/donations [post]
func (ctrl *DonationController) CreateDonation(ctx *fiber.Ctx) error {
	var input createDonationInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if file, err := ctx.FormFile("image"); err == nil && file != nil {
		encoded, err := utils.FileToDataURI(file)
		if err != nil {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		input.Image = encoded
	}

	donation, err := ctrl.DonationService.CreateDonation(ctx.UserContext(), input.UserID, input.ItemType, input.Description, input.Image)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusCreated).JSON(donation)
}

// ListDonations godoc
// @Summary List donations
// @Tags donations
// @Produce json
// @Param userId query string false "Filter by owning user"
// @Success 200 {array} Donation
// @Router /api/donations [get]
func (ctrl *DonationController) ListDonations(ctx *fiber.Ctx) error {
	donations, err := ctrl.DonationService.ListDonations(ctx.UserContext(), ctx.Query("userId"))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(donations)
}

// UpdateDonation godoc
// @Summary Update donation status
// @Tags donations
// @Accept json
// @Produce json
// @Param id path string true "Donation ID"
// @Success 200 {object} Donation
// @Failure 404 {object} map[string]interface{}
// @Router /api/donations/{id} [put]
func (ctrl *DonationController) UpdateDonation(ctx *fiber.Ctx) error {
	var input updateDonationInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	donation, err := ctrl.DonationService.UpdateStatus(ctx.UserContext(), ctx.Params("id"), Status(input.Status))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(donation)
}
