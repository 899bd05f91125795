package complaint

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

type ComplaintController struct {
	ComplaintService ComplaintService
}

func NewComplaintController(complaintService ComplaintService) *ComplaintController {
	return &ComplaintController{ComplaintService: complaintService}
}

type fileComplaintInput struct {
	UserID         string `json:"userId"`
	EmployeeID     string `json:"employeeId"`
	WasteRequestID string `json:"wasteRequestId"`
	Description    string `json:"description"`
	ComplaintType  string `json:"complaintType"`
}

type updateComplaintInput struct {
	Status string `json:"status"`
}

// FileComplaint godoc
// @Summary File a complaint
// @Description A citizen files against an employee or vice versa
// @Tags complaints
// @Accept json
// @Produce json
// @Success 201 {object} Complaint
// @Failure 400 {object} map[string]interface{}
// @Router /api/complaints [post]
func (ctrl *ComplaintController) FileComplaint(ctx *fiber.Ctx) error {
	var input fileComplaintInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	complaint, err := ctrl.ComplaintService.FileComplaint(ctx.UserContext(), FileComplaintInput{
		UserID:         input.UserID,
		EmployeeID:     input.EmployeeID,
		WasteRequestID: input.WasteRequestID,
		Description:    input.Description,
		ComplaintType:  ComplaintType(input.ComplaintType),
	})
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusCreated).JSON(complaint)
}

// ListComplaints godoc
// @Summary List all complaints
// @Tags complaints
// @Produce json
// @Success 200 {array} Complaint
// @Router /api/complaints [get]
func (ctrl *ComplaintController) ListComplaints(ctx *fiber.Ctx) error {
	complaints, err := ctrl.ComplaintService.ListComplaints(ctx.UserContext())
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(complaints)
}

// ListByUser godoc
// @Summary List complaints filed by a user
// @Tags complaints
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {array} Complaint
// @Router /api/complaints/user/{userId} [get]
func (ctrl *ComplaintController) ListByUser(ctx *fiber.Ctx) error {
	complaints, err := ctrl.ComplaintService.ListByUser(ctx.UserContext(), ctx.Params("userId"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(complaints)
}

// ListByEmployee godoc
// @Summary List complaints involving an employee
// @Tags complaints
// @Produce json
// @Param employeeId path string true "Employee ID"
// @Success 200 {array} Complaint
// @Router /api/complaints/employee/{employeeId} [get]
func (ctrl *ComplaintController) ListByEmployee(ctx *fiber.Ctx) error {
	complaints, err := ctrl.ComplaintService.ListByEmployee(ctx.UserContext(), ctx.Params("employeeId"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(complaints)
}

// UpdateComplaint godoc
// @Summary Update complaint status
// @Tags complaints
// @Accept json
// @Produce json
// @Param id path string true "Complaint ID"
// @Success 200 {object} Complaint
// @Failure 404 {object} map[string]interface{}
// @Router /api/complaints/{id} [put]
func (ctrl *ComplaintController) UpdateComplaint(ctx *fiber.Ctx) error {
	var input updateComplaintInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	complaint, err := ctrl.ComplaintService.UpdateStatus(ctx.UserContext(), ctx.Params("id"), Status(input.Status))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(complaint)
}
