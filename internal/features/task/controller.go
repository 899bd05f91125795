package task

import (
	"errors"
	"fmt"
	"time"

	"ecosnap/internal/features/donation"
	"ecosnap/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

type TaskController struct {
	TaskService TaskService
}

func NewTaskController(taskService TaskService) *TaskController {
	return &TaskController{TaskService: taskService}
}

type assignBulkInput struct {
	EmployeeID    string       `json:"employeeId"`
	RequestID     utils.IDList `json:"requestId"`
	RequestIDs    utils.IDList `json:"requestIds"`
	ScheduledDate string       `json:"scheduledDate"`
}

type updateTaskInput struct {
	Status string `json:"status"`
}

// AssignBulk godoc
// @Summary Bulk-assign waste pickup tasks
// @Description Assigns each eligible request to the employee; ineligible ids are skipped
// @Tags tasks
// @Accept json
// @Produce json
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /api/tasks/bulk [post]
func (ctrl *TaskController) AssignBulk(ctx *fiber.Ctx) error {
	var input assignBulkInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var scheduledDate *time.Time
	if input.ScheduledDate != "" {
		parsed, err := parseDate(input.ScheduledDate)
		if err != nil {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid scheduledDate"})
		}
		scheduledDate = &parsed
	}

	ids := input.RequestIDs.Merge(input.RequestID)
	tasks, err := ctrl.TaskService.AssignBulk(ctx.UserContext(), input.EmployeeID, ids, scheduledDate)
	if err != nil {
		if errors.Is(err, ErrNoRequestIDs) || errors.Is(err, ErrInvalidEmployeeID) {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": fmt.Sprintf("%d tasks assigned successfully", len(tasks)),
		"tasks":   tasks,
	})
}

// ListTasks godoc
// @Summary List all tasks
// @Tags tasks
// @Produce json
// @Success 200 {array} Task
// @Router /api/tasks [get]
func (ctrl *TaskController) ListTasks(ctx *fiber.Ctx) error {
	tasks, err := ctrl.TaskService.ListTasks(ctx.UserContext())
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(tasks)
}

// ListEmployeeTasks godoc
// @Summary List an employee's tasks
// @Tags tasks
// @Produce json
// @Param employeeId path string true "Employee ID"
// @Success 200 {array} Task
// @Router /api/tasks/employee/{employeeId} [get]
func (ctrl *TaskController) ListEmployeeTasks(ctx *fiber.Ctx) error {
	tasks, err := ctrl.TaskService.ListEmployeeTasks(ctx.UserContext(), ctx.Params("employeeId"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(tasks)
}

// UpdateTask godoc
// @Summary Update task status
// @Description Completion also pushes a linked waste request to completed
// @Tags tasks
// @Accept json
// @Produce json
// @Param id path string true "Task ID"
// @Success 200 {object} Task
// @Failure 404 {object} map[string]interface{}
// @Router /api/tasks/{id} [put]
func (ctrl *TaskController) UpdateTask(ctx *fiber.Ctx) error {
	var input updateTaskInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	task, err := ctrl.TaskService.UpdateStatus(ctx.UserContext(), ctx.Params("id"), Status(input.Status))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(task)
}

type DonationTaskController struct {
	DonationTaskService DonationTaskService
}

func NewDonationTaskController(donationTaskService DonationTaskService) *DonationTaskController {
	return &DonationTaskController{DonationTaskService: donationTaskService}
}

type assignDonationsInput struct {
	EmployeeID     string       `json:"employeeId"`
	DonationID     utils.IDList `json:"donationId"`
	DonationIDs    utils.IDList `json:"donationIds"`
	CollectionDate string       `json:"collectionDate"`
}

// AssignDonations godoc
// @Summary Assign donation pickup tasks
// @Tags donations
// @Accept json
// @Produce json
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/donations/assign [post]
func (ctrl *DonationTaskController) AssignDonations(ctx *fiber.Ctx) error {
	var input assignDonationsInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var collectionDate *time.Time
	if input.CollectionDate != "" {
		parsed, err := parseDate(input.CollectionDate)
		if err != nil {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid collectionDate"})
		}
		collectionDate = &parsed
	}

	ids := input.DonationIDs.Merge(input.DonationID)
	tasks, err := ctrl.DonationTaskService.AssignDonations(ctx.UserContext(), input.EmployeeID, ids, collectionDate)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmployeeNotFound):
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, ErrNoDonationIDs), errors.Is(err, ErrInvalidEmployeeID):
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": fmt.Sprintf("%d donation tasks assigned successfully", len(tasks)),
		"tasks":   tasks,
	})
}

// ClaimDonation godoc
// @Summary Claim a donation
// @Description Marks the donation claimed and completes its linked task
// @Tags donations
// @Produce json
// @Param id path string true "Donation ID"
// @Success 200 {object} donation.Donation
// @Failure 404 {object} map[string]interface{}
// @Router /api/donations/{id}/claim [put]
func (ctrl *DonationTaskController) ClaimDonation(ctx *fiber.Ctx) error {
	claimed, err := ctrl.DonationTaskService.ClaimDonation(ctx.UserContext(), ctx.Params("id"))
	if err != nil {
		if errors.Is(err, donation.ErrNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(claimed)
}

// parseDate accepts both RFC3339 timestamps and plain yyyy-mm-dd dates.
func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}
