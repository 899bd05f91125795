package user

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"ecosnap/internal/features/donation"
	"ecosnap/internal/features/waste"
	"ecosnap/pkg/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

var (
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrDeactivated        = errors.New("account deactivated by admin")
	ErrEmailInUse         = errors.New("email already in use by another account")
	ErrPhoneInUse         = errors.New("phone number already in use by another account")
	ErrBadCoordinates     = errors.New("invalid coordinates format")
)

// Coordinates accepts either a JSON array ([lng, lat]) or a string-encoded
// array, which is what form clients send.
type Coordinates []float64

func (c *Coordinates) UnmarshalJSON(data []byte) error {
	var arr []float64
	if err := json.Unmarshal(data, &arr); err == nil {
		*c = arr
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if strings.TrimSpace(s) == "" {
		*c = nil
		return nil
	}
	if err := json.Unmarshal([]byte(s), &arr); err != nil {
		return ErrBadCoordinates
	}
	*c = arr
	return nil
}

type RegisterInput struct {
	Name         string
	Email        string
	Password     string
	Role         Role
	Phone        string
	Address      string
	ProfileImage string
	Coordinates  Coordinates
}

type UpdateProfileInput struct {
	Name         string
	Email        string
	Phone        string
	Address      string
	ProfileImage string
	Coordinates  Coordinates
}

type AuthResult struct {
	User  *User
	Token string
}

// History pairs a user with their waste and donation submissions, used by
// the employee QR-scan view.
type History struct {
	WasteRequests []waste.WasteRequest `json:"wasteRequests"`
	Donations     []donation.Donation  `json:"donations"`
}

type UserService interface {
	Register(ctx context.Context, input RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	ForgotPassword(ctx context.Context, email, newPassword string) error
	GetUser(ctx context.Context, id string) (*User, error)
	ListEmployees(ctx context.Context) ([]User, error)
	ListCitizens(ctx context.Context) ([]User, error)
	UpdateProfile(ctx context.Context, id string, input UpdateProfileInput) (*User, error)
	GetHistory(ctx context.Context, id string) (*User, *History, error)
	GenerateQRCode(ctx context.Context, id string) (string, error)
}

type UserServiceImpl struct {
	Repo         UserRepository
	WasteRepo    waste.WasteRequestRepository
	DonationRepo donation.DonationRepository
	Logger       *zap.Logger
}

func NewUserService(repo UserRepository, wasteRepo waste.WasteRequestRepository, donationRepo donation.DonationRepository, logger *zap.Logger) UserService {
	return &UserServiceImpl{
		Repo:         repo,
		WasteRepo:    wasteRepo,
		DonationRepo: donationRepo,
		Logger:       logger,
	}
}

func (s *UserServiceImpl) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	if input.Name == "" || input.Email == "" || input.Password == "" {
		return nil, errors.New("name, email and password are required")
	}

	if _, err := s.Repo.FindByEmail(ctx, input.Email); err == nil {
		return nil, ErrUserExists
	} else if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	hashed, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	role := input.Role
	if role == "" {
		role = RoleCitizen
	}

	u := &User{
		Name:         input.Name,
		Email:        input.Email,
		Password:     hashed,
		Role:         role,
		Phone:        input.Phone,
		Address:      input.Address,
		ProfileImage: input.ProfileImage,
		IsActive:     true,
	}
	if len(input.Coordinates) > 0 {
		u.Location = &GeoPoint{Type: "Point", Coordinates: input.Coordinates}
	}

	if err := s.Repo.Create(ctx, u); err != nil {
		return nil, err
	}

	token, err := utils.GenerateToken(u.ID, string(u.Role))
	if err != nil {
		return nil, err
	}

	s.Logger.Info("user registered", zap.String("userId", u.ID.Hex()), zap.String("role", string(u.Role)))
	return &AuthResult{User: u, Token: token}, nil
}

func (s *UserServiceImpl) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	u, err := s.Repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !utils.CheckPassword(u.Password, password) {
		return nil, ErrInvalidCredentials
	}
	if !u.IsActive {
		return nil, ErrDeactivated
	}

	token, err := utils.GenerateToken(u.ID, string(u.Role))
	if err != nil {
		return nil, err
	}
	return &AuthResult{User: u, Token: token}, nil
}

func (s *UserServiceImpl) ForgotPassword(ctx context.Context, email, newPassword string) error {
	u, err := s.Repo.FindByEmail(ctx, email)
	if err != nil {
		return err
	}

	hashed, err := utils.HashPassword(newPassword)
	if err != nil {
		return err
	}
	u.Password = hashed
	return s.Repo.Update(ctx, u)
}

func (s *UserServiceImpl) GetUser(ctx context.Context, id string) (*User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	return s.Repo.FindByID(ctx, oid)
}

func (s *UserServiceImpl) ListEmployees(ctx context.Context) ([]User, error) {
	return s.Repo.FindByRole(ctx, RoleEmployee)
}

func (s *UserServiceImpl) ListCitizens(ctx context.Context) ([]User, error) {
	return s.Repo.FindByRole(ctx, RoleCitizen)
}

func (s *UserServiceImpl) UpdateProfile(ctx context.Context, id string, input UpdateProfileInput) (*User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	u, err := s.Repo.FindByID(ctx, oid)
	if err != nil {
		return nil, err
	}

	if input.Email != "" && input.Email != u.Email {
		taken, err := s.Repo.EmailTaken(ctx, input.Email, oid)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, ErrEmailInUse
		}
		u.Email = input.Email
	}
	if input.Phone != "" && input.Phone != u.Phone {
		taken, err := s.Repo.PhoneTaken(ctx, input.Phone, oid)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, ErrPhoneInUse
		}
		u.Phone = input.Phone
	}
	if input.Name != "" {
		u.Name = input.Name
	}
	if input.Address != "" {
		u.Address = input.Address
	}
	if input.ProfileImage != "" {
		u.ProfileImage = input.ProfileImage
	}
	if len(input.Coordinates) > 0 {
		u.Location = &GeoPoint{Type: "Point", Coordinates: input.Coordinates}
	}

	if err := s.Repo.Update(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *UserServiceImpl) GetHistory(ctx context.Context, id string) (*User, *History, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil, ErrNotFound
	}

	u, err := s.Repo.FindByID(ctx, oid)
	if err != nil {
		return nil, nil, err
	}

	requests, err := s.WasteRepo.FindByUser(ctx, oid)
	if err != nil {
		return nil, nil, err
	}
	donations, err := s.DonationRepo.FindByUser(ctx, oid)
	if err != nil {
		return nil, nil, err
	}

	return u, &History{WasteRequests: requests, Donations: donations}, nil
}
