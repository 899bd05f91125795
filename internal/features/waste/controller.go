package waste

import (
	"errors"
	"time"

	"ecosnap/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

type WasteController struct {
	WasteService WasteService
}

func NewWasteController(wasteService WasteService) *WasteController {
	return &WasteController{WasteService: wasteService}
}

type createRequestInput struct {
	UserID         string `json:"userId" form:"userId"`
	Classification string `json:"classification" form:"classification"`
	Image          string `json:"image" form:"image"`
}

type updateRequestInput struct {
	Status        string `json:"status" form:"status"`
	ScheduledDate string `json:"scheduledDate" form:"scheduledDate"`
}

// CreateRequest godoc
// @Summary Create waste pickup request
// @Description Submit a new waste pickup request with an image (multipart upload or inline string)
// @Tags waste
// @Accept json
// @Produce json
// @Success 201 {object} WasteRequest
// @Failure 400 {object} map[string]interface{}
// @Router /api/waste/request [post]
func (ctrl *WasteController) CreateRequest(ctx *fiber.Ctx) error {
	var input createRequestInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	// Multipart upload takes precedence over an inline image string
	if file, err := ctx.FormFile("image"); err == nil && file != nil {
		encoded, err := utils.FileToDataURI(file)
		if err != nil {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		input.Image = encoded
	}

	request, err := ctrl.WasteService.CreateRequest(ctx.UserContext(), input.UserID, Classification(input.Classification), input.Image)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusCreated).JSON(request)
}

// ListRequests godoc
// @Summary List waste requests
// @Tags waste
// @Produce json
// @Param userId query string false "Filter by owning user"
// @Success 200 {array} WasteRequest
// @Router /api/waste/requests [get]
func (ctrl *WasteController) ListRequests(ctx *fiber.Ctx) error {
	requests, err := ctrl.WasteService.ListRequests(ctx.UserContext(), ctx.Query("userId"))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(requests)
}

// ListPaymented godoc
// @Summary List Paymented waste requests
// @Tags waste
// @Produce json
// @Success 200 {array} WasteRequest
// @Router /api/waste/requests/paymented [get]
func (ctrl *WasteController) ListPaymented(ctx *fiber.Ctx) error {
	requests, err := ctrl.WasteService.ListByStatus(ctx.UserContext(), StatusPaymented)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(requests)
}

// GetRequest godoc
// @Summary Get waste request by ID
// @Tags waste
// @Produce json
// @Param id path string true "Request ID"
// @Success 200 {object} WasteRequest
// @Failure 404 {object} map[string]interface{}
// @Router /api/waste/requests/{id} [get]
func (ctrl *WasteController) GetRequest(ctx *fiber.Ctx) error {
	request, err := ctrl.WasteService.GetRequest(ctx.UserContext(), ctx.Params("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(request)
}

// UpdateRequest godoc
// @Summary Update waste request status
// @Tags waste
// @Accept json
// @Produce json
// @Param id path string true "Request ID"
// @Success 200 {object} WasteRequest
// @Failure 404 {object} map[string]interface{}
// @Router /api/waste/requests/{id} [put]
func (ctrl *WasteController) UpdateRequest(ctx *fiber.Ctx) error {
	var input updateRequestInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var scheduledDate *time.Time
	if input.ScheduledDate != "" {
		parsed, err := time.Parse(time.RFC3339, input.ScheduledDate)
		if err != nil {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid scheduledDate"})
		}
		scheduledDate = &parsed
	}

	request, err := ctrl.WasteService.UpdateRequest(ctx.UserContext(), ctx.Params("id"), Status(input.Status), scheduledDate)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(request)
}
