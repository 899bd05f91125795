package admin

import (
	"context"
	"errors"
	"fmt"

	"ecosnap/internal/features/user"
	"ecosnap/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

type AdminController struct {
	AdminService AdminService
}

func NewAdminController(adminService AdminService) *AdminController {
	return &AdminController{AdminService: adminService}
}

type adminLoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type addEmployeeInput struct {
	Name          string `json:"name" form:"name"`
	Email         string `json:"email" form:"email"`
	Password      string `json:"password" form:"password"`
	Phone         string `json:"phone" form:"phone"`
	Address       string `json:"address" form:"address"`
	ProfileImage  string `json:"profileImage" form:"profileImage"`
	EmployeeID    string `json:"employeeId" form:"employeeId"`
	WardNumber    string `json:"wardNumber" form:"wardNumber"`
	AadhaarNumber string `json:"aadhaarNumber" form:"aadhaarNumber"`
}

type setStatusInput struct {
	IsActive *bool `json:"isActive"`
}

// Login godoc
// @Summary Admin login
// @Tags admin
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Router /api/admin/login [post]
func (ctrl *AdminController) Login(ctx *fiber.Ctx) error {
	var input adminLoginInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	a, token, err := ctrl.AdminService.Login(ctx.UserContext(), input.Email, input.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{
		"admin":   a,
		"token":   token,
		"message": "Login successful",
	})
}

// AddEmployee godoc
// @Summary Create an employee account
// @Tags admin
// @Accept json
// @Produce json
// @Success 201 {object} user.User
// @Failure 400 {object} map[string]interface{}
// @Router /api/admin/employee [post]
func (ctrl *AdminController) AddEmployee(ctx *fiber.Ctx) error {
	var input addEmployeeInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if file, err := ctx.FormFile("profileImage"); err == nil && file != nil {
		encoded, err := utils.FileToDataURI(file)
		if err != nil {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		input.ProfileImage = encoded
	}

	employee, err := ctrl.AdminService.AddEmployee(ctx.UserContext(), AddEmployeeInput{
		Name:          input.Name,
		Email:         input.Email,
		Password:      input.Password,
		Phone:         input.Phone,
		Address:       input.Address,
		ProfileImage:  input.ProfileImage,
		EmployeeID:    input.EmployeeID,
		WardNumber:    input.WardNumber,
		AadhaarNumber: input.AadhaarNumber,
	})
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusCreated).JSON(employee)
}

// SetEmployeeStatus godoc
// @Summary Activate or deactivate an employee
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Employee ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/admin/employee/{id}/status [put]
func (ctrl *AdminController) SetEmployeeStatus(ctx *fiber.Ctx) error {
	return ctrl.setStatus(ctx, ctrl.AdminService.SetEmployeeStatus, "Employee")
}

// SetUserStatus godoc
// @Summary Activate or deactivate a citizen account
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/admin/user/{id}/status [put]
func (ctrl *AdminController) SetUserStatus(ctx *fiber.Ctx) error {
	return ctrl.setStatus(ctx, ctrl.AdminService.SetUserStatus, "User")
}

func (ctrl *AdminController) setStatus(ctx *fiber.Ctx, apply func(ctx context.Context, id string, active bool) (*user.User, error), label string) error {
	var input setStatusInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if input.IsActive == nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "isActive is required"})
	}

	u, err := apply(ctx.UserContext(), ctx.Params("id"), *input.IsActive)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": fmt.Sprintf("%s not found", label)})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	verb := "deactivated"
	if u.IsActive {
		verb = "activated"
	}
	return ctx.JSON(fiber.Map{
		"id":       u.ID,
		"name":     u.Name,
		"isActive": u.IsActive,
		"message":  fmt.Sprintf("%s %s successfully", label, verb),
	})
}

// ListEmployees godoc
// @Summary List all employees
// @Tags admin
// @Produce json
// @Success 200 {array} user.User
// @Router /api/admin/employees [get]
func (ctrl *AdminController) ListEmployees(ctx *fiber.Ctx) error {
	employees, err := ctrl.AdminService.ListEmployees(ctx.UserContext())
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(employees)
}

// ListUsers godoc
// @Summary List all citizen accounts
// @Tags admin
// @Produce json
// @Success 200 {array} user.User
// @Router /api/admin/users [get]
func (ctrl *AdminController) ListUsers(ctx *fiber.Ctx) error {
	users, err := ctrl.AdminService.ListUsers(ctx.UserContext())
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(users)
}
