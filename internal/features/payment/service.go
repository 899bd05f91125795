package payment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ecosnap/internal/features/user"
	"ecosnap/internal/features/waste"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

var (
	ErrInvalidMethod = errors.New("invalid payment method, only UPI and Bank Transfer are allowed")
	ErrAlreadyPaid   = errors.New("payment already made for this month")
)

type PaymentService interface {
	ProcessPayment(ctx context.Context, userID string, method Method) (*Payment, error)
	ListUserPayments(ctx context.Context, userID string) ([]Payment, error)
	ListByStatus(ctx context.Context, status Status) ([]Payment, error)
}

type PaymentServiceImpl struct {
	Repo      PaymentRepository
	UserRepo  user.UserRepository
	WasteRepo waste.WasteRequestRepository
	Logger    *zap.Logger
}

func NewPaymentService(repo PaymentRepository, userRepo user.UserRepository, wasteRepo waste.WasteRequestRepository, logger *zap.Logger) PaymentService {
	return &PaymentServiceImpl{
		Repo:      repo,
		UserRepo:  userRepo,
		WasteRepo: wasteRepo,
		Logger:    logger,
	}
}

// ProcessPayment records a completed monthly payment and rolls the effects
// forward: the user's paymentStatus flips to completed and all of the
// user's current-month waste requests move to Paymented.
func (s *PaymentServiceImpl) ProcessPayment(ctx context.Context, userID string, method Method) (*Payment, error) {
	if !ValidMethod(method) {
		return nil, ErrInvalidMethod
	}

	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, errors.New("invalid user ID")
	}

	now := time.Now()
	month := int(now.Month())
	year := now.Year()

	if _, err := s.Repo.FindCompletedByUserMonth(ctx, oid, month, year); err == nil {
		return nil, ErrAlreadyPaid
	} else if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	payment := &Payment{
		UserID:        oid,
		Month:         month,
		Year:          year,
		Amount:        MonthlyAmount,
		Status:        StatusCompleted,
		Method:        method,
		TransactionID: fmt.Sprintf("TXN-%s", uuid.NewString()),
	}
	if err := s.Repo.Create(ctx, payment); err != nil {
		// The partial unique index rejects a concurrent duplicate
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrAlreadyPaid
		}
		return nil, err
	}

	if err := s.UserRepo.SetPaymentStatus(ctx, oid, string(StatusCompleted)); err != nil {
		return nil, err
	}

	startOfMonth := time.Date(year, now.Month(), 1, 0, 0, 0, 0, now.Location())
	endOfMonth := startOfMonth.AddDate(0, 1, 0).Add(-time.Millisecond)
	updated, err := s.WasteRepo.MarkPaymentedForRange(ctx, oid, startOfMonth, endOfMonth)
	if err != nil {
		return nil, err
	}

	s.Logger.Info("payment processed",
		zap.String("userId", userID),
		zap.String("transactionId", payment.TransactionID),
		zap.Int64("requestsPaymented", updated),
	)
	return payment, nil
}

func (s *PaymentServiceImpl) ListUserPayments(ctx context.Context, userID string) ([]Payment, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, errors.New("invalid user ID")
	}
	return s.Repo.FindByUser(ctx, oid)
}

func (s *PaymentServiceImpl) ListByStatus(ctx context.Context, status Status) ([]Payment, error) {
	return s.Repo.FindByStatus(ctx, status)
}
