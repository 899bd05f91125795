package admin

import (
	"context"
	"errors"

	"ecosnap/internal/features/user"
	"ecosnap/pkg/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmployeeExists     = errors.New("employee with this email already exists")
	ErrEmployeeNotFound   = errors.New("employee not found")
)

type AddEmployeeInput struct {
	Name          string
	Email         string
	Password      string
	Phone         string
	Address       string
	ProfileImage  string
	EmployeeID    string
	WardNumber    string
	AadhaarNumber string
}

type AdminService interface {
	Login(ctx context.Context, email, password string) (*Admin, string, error)
	AddEmployee(ctx context.Context, input AddEmployeeInput) (*user.User, error)
	SetEmployeeStatus(ctx context.Context, id string, active bool) (*user.User, error)
	SetUserStatus(ctx context.Context, id string, active bool) (*user.User, error)
	ListEmployees(ctx context.Context) ([]user.User, error)
	ListUsers(ctx context.Context) ([]user.User, error)
}

type AdminServiceImpl struct {
	Repo     AdminRepository
	UserRepo user.UserRepository
	Logger   *zap.Logger
}

func NewAdminService(repo AdminRepository, userRepo user.UserRepository, logger *zap.Logger) AdminService {
	return &AdminServiceImpl{
		Repo:     repo,
		UserRepo: userRepo,
		Logger:   logger,
	}
}

func (s *AdminServiceImpl) Login(ctx context.Context, email, password string) (*Admin, string, error) {
	a, err := s.Repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}
	if !utils.CheckPassword(a.Password, password) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(a.ID, "admin")
	if err != nil {
		return nil, "", err
	}
	return a, token, nil
}

func (s *AdminServiceImpl) AddEmployee(ctx context.Context, input AddEmployeeInput) (*user.User, error) {
	if input.Name == "" || input.Email == "" || input.Password == "" {
		return nil, errors.New("name, email and password are required")
	}

	if _, err := s.UserRepo.FindByEmail(ctx, input.Email); err == nil {
		return nil, ErrEmployeeExists
	} else if !errors.Is(err, user.ErrNotFound) {
		return nil, err
	}

	hashed, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	employee := &user.User{
		Name:         input.Name,
		Email:        input.Email,
		Password:     hashed,
		Role:         user.RoleEmployee,
		Phone:        input.Phone,
		Address:      input.Address,
		ProfileImage: input.ProfileImage,
		IsActive:     true,
	}
	if input.EmployeeID != "" {
		employee.EmployeeID = &input.EmployeeID
	}
	if input.WardNumber != "" {
		employee.WardNumber = &input.WardNumber
	}
	if input.AadhaarNumber != "" {
		employee.AadhaarNumber = &input.AadhaarNumber
	}

	if err := s.UserRepo.Create(ctx, employee); err != nil {
		return nil, err
	}

	s.Logger.Info("employee added", zap.String("employeeId", employee.ID.Hex()))
	return employee, nil
}

func (s *AdminServiceImpl) SetEmployeeStatus(ctx context.Context, id string, active bool) (*user.User, error) {
	return s.setStatus(ctx, id, active, user.RoleEmployee)
}

func (s *AdminServiceImpl) SetUserStatus(ctx context.Context, id string, active bool) (*user.User, error) {
	return s.setStatus(ctx, id, active, user.RoleCitizen)
}

func (s *AdminServiceImpl) setStatus(ctx context.Context, id string, active bool, role user.Role) (*user.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, user.ErrNotFound
	}

	u, err := s.UserRepo.FindByID(ctx, oid)
	if err != nil {
		return nil, err
	}
	if u.Role != role {
		return nil, user.ErrNotFound
	}

	if err := s.UserRepo.SetActive(ctx, oid, active); err != nil {
		return nil, err
	}
	u.IsActive = active
	return u, nil
}

func (s *AdminServiceImpl) ListEmployees(ctx context.Context) ([]user.User, error) {
	return s.UserRepo.FindByRole(ctx, user.RoleEmployee)
}

func (s *AdminServiceImpl) ListUsers(ctx context.Context) ([]user.User, error) {
	return s.UserRepo.FindByRole(ctx, user.RoleCitizen)
}
