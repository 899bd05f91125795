package payment

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

type PaymentController struct {
	PaymentService PaymentService
}

func NewPaymentController(paymentService PaymentService) *PaymentController {
	return &PaymentController{PaymentService: paymentService}
}

type processPaymentInput struct {
	UserID        string `json:"userId"`
	PaymentMethod string `json:"paymentMethod"`
}

// ProcessPayment godoc
// @Summary Pay the monthly collection fee
// @Description Records a completed payment for the current month and unlocks the user's requests for scheduling
// @Tags payments
// @Accept json
// @Produce json
// @Success 201 {object} Payment
// @Failure 400 {object} map[string]interface{}
// @Router /api/payments [post]
func (ctrl *PaymentController) ProcessPayment(ctx *fiber.Ctx) error {
	var input processPaymentInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	payment, err := ctrl.PaymentService.ProcessPayment(ctx.UserContext(), input.UserID, Method(input.PaymentMethod))
	if err != nil {
		if errors.Is(err, ErrInvalidMethod) || errors.Is(err, ErrAlreadyPaid) {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusCreated).JSON(payment)
}

// ListUserPayments godoc
// @Summary List a user's payments
// @Tags payments
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {array} Payment
// @Router /api/payments/user/{userId} [get]
func (ctrl *PaymentController) ListUserPayments(ctx *fiber.Ctx) error {
	payments, err := ctrl.PaymentService.ListUserPayments(ctx.UserContext(), ctx.Params("userId"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(payments)
}

// ListCompleted godoc
// @Summary List completed payments
// @Tags payments
// @Produce json
// @Success 200 {array} Payment
// @Router /api/payments/completed [get]
func (ctrl *PaymentController) ListCompleted(ctx *fiber.Ctx) error {
	payments, err := ctrl.PaymentService.ListByStatus(ctx.UserContext(), StatusCompleted)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(payments)
}

// ListPending godoc
// @Summary List pending payments
// @Tags payments
// @Produce json
// @Success 200 {array} Payment
// @Router /api/payments/pending [get]
func (ctrl *PaymentController) ListPending(ctx *fiber.Ctx) error {
	payments, err := ctrl.PaymentService.ListByStatus(ctx.UserContext(), StatusPending)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(payments)
}
