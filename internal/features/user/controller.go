package user

import (
	"errors"

	"ecosnap/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

type UserController struct {
	UserService UserService
}

func NewUserController(userService UserService) *UserController {
	return &UserController{UserService: userService}
}

type registerInput struct {
	Name         string      `json:"name" form:"name"`
	Email        string      `json:"email" form:"email"`
	Password     string      `json:"password" form:"password"`
	Role         string      `json:"role" form:"role"`
	Phone        string      `json:"phone" form:"phone"`
	Address      string      `json:"address" form:"address"`
	ProfileImage string      `json:"profileImage" form:"profileImage"`
	Coordinates  Coordinates `json:"coordinates" form:"coordinates"`
}

type loginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type forgotPasswordInput struct {
	Email       string `json:"email"`
	NewPassword string `json:"newPassword"`
}

type updateProfileInput struct {
	Name         string      `json:"name" form:"name"`
	Email        string      `json:"email" form:"email"`
	Phone        string      `json:"phone" form:"phone"`
	Address      string      `json:"address" form:"address"`
	ProfileImage string      `json:"profileImage" form:"profileImage"`
	Coordinates  Coordinates `json:"coordinates" form:"coordinates"`
}

// Register godoc
// @Summary Register a new user
// @Tags users
// @Accept json
// @Produce json
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /api/users/register [post]
func (ctrl *UserController) Register(ctx *fiber.Ctx) error {
	var input registerInput
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

	result, err := ctrl.UserService.Register(ctx.UserContext(), RegisterInput{
		Name:         input.Name,
		Email:        input.Email,
		Password:     input.Password,
		Role:         Role(input.Role),
		Phone:        input.Phone,
		Address:      input.Address,
		ProfileImage: input.ProfileImage,
		Coordinates:  input.Coordinates,
	})
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"user":  result.User,
		"token": result.Token,
	})
}

// Login godoc
// @Summary Authenticate a user
// @Tags users
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Router /api/users/login [post]
func (ctrl *UserController) Login(ctx *fiber.Ctx) error {
	var input loginInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	result, err := ctrl.UserService.Login(ctx.UserContext(), input.Email, input.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) || errors.Is(err, ErrDeactivated) {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{
		"user":  result.User,
		"token": result.Token,
	})
}

// ForgotPassword godoc
// @Summary Reset password by email
// @Tags users
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/users/forgot-password [post]
func (ctrl *UserController) ForgotPassword(ctx *fiber.Ctx) error {
	var input forgotPasswordInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if err := ctrl.UserService.ForgotPassword(ctx.UserContext(), input.Email, input.NewPassword); err != nil {
		if errors.Is(err, ErrNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "user with this email does not exist"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(fiber.Map{"message": "Password updated successfully"})
}

// ListEmployees godoc
// @Summary List all employees
// @Tags users
// @Produce json
// @Success 200 {array} User
// @Router /api/users/employees [get]
func (ctrl *UserController) ListEmployees(ctx *fiber.Ctx) error {
	employees, err := ctrl.UserService.ListEmployees(ctx.UserContext())
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(employees)
}

// ListCitizens godoc
// @Summary List all citizens
// @Tags users
// @Produce json
// @Success 200 {array} User
// @Router /api/users/citizens [get]
func (ctrl *UserController) ListCitizens(ctx *fiber.Ctx) error {
	citizens, err := ctrl.UserService.ListCitizens(ctx.UserContext())
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(citizens)
}

// GetUser godoc
// @Summary Get user by ID
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} User
// @Failure 404 {object} map[string]interface{}
// @Router /api/users/{id} [get]
func (ctrl *UserController) GetUser(ctx *fiber.Ctx) error {
	u, err := ctrl.UserService.GetUser(ctx.UserContext(), ctx.Params("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(u)
}

// UpdateProfile godoc
// @Summary Update user profile
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} User
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/users/{id} [put]
func (ctrl *UserController) UpdateProfile(ctx *fiber.Ctx) error {
	var input updateProfileInput
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

	u, err := ctrl.UserService.UpdateProfile(ctx.UserContext(), ctx.Params("id"), UpdateProfileInput{
		Name:         input.Name,
		Email:        input.Email,
		Phone:        input.Phone,
		Address:      input.Address,
		ProfileImage: input.ProfileImage,
		Coordinates:  input.Coordinates,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, ErrEmailInUse), errors.Is(err, ErrPhoneInUse), errors.Is(err, ErrBadCoordinates):
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(u)
}

// GetHistory godoc
// @Summary Get user details with waste and donation history
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/users/{id}/history [get]
func (ctrl *UserController) GetHistory(ctx *fiber.Ctx) error {
	u, history, err := ctrl.UserService.GetHistory(ctx.UserContext(), ctx.Params("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(fiber.Map{
		"user":    u,
		"history": history,
	})
}

// GetQRCode godoc
// @Summary Generate a user's QR identity card
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/users/{id}/qrcode [get]
func (ctrl *UserController) GetQRCode(ctx *fiber.Ctx) error {
	qrImage, err := ctrl.UserService.GenerateQRCode(ctx.UserContext(), ctx.Params("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(fiber.Map{
		"qrImage": qrImage,
		"message": "QR Code generated successfully with history",
	})
}
