package payment

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"ecosnap/internal/features/user"
	"ecosnap/internal/features/waste"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type mockPaymentRepo struct {
	payments  []*Payment
	createErr error
}

func (m *mockPaymentRepo) Create(ctx context.Context, p *Payment) error {
	if m.createErr != nil {
		return m.createErr
	}
	if p.ID.IsZero() {
		p.ID = primitive.NewObjectID()
	}
	p.CreatedAt = time.Now()
	copied := *p
	m.payments = append(m.payments, &copied)
	return nil
}

func (m *mockPaymentRepo) FindByUser(ctx context.Context, userID primitive.ObjectID) ([]Payment, error) {
	var out []Payment
	for _, p := range m.payments {
		if p.UserID == userID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (m *mockPaymentRepo) FindByStatus(ctx context.Context, status Status) ([]Payment, error) {
	var out []Payment
	for _, p := range m.payments {
		if p.Status == status {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (m *mockPaymentRepo) FindCompletedByUserMonth(ctx context.Context, userID primitive.ObjectID, month, year int) (*Payment, error) {
	for _, p := range m.payments {
		if p.UserID == userID && p.Month == month && p.Year == year && p.Status == StatusCompleted {
			copied := *p
			return &copied, nil
		}
	}
	return nil, ErrNotFound
}

func (m *mockPaymentRepo) FindAll(ctx context.Context, filter bson.M) ([]Payment, error) {
	var out []Payment
	for _, p := range m.payments {
		out = append(out, *p)
	}
	return out, nil
}

func (m *mockPaymentRepo) EnsureIndexes(ctx context.Context) error { return nil }

type mockUserRepo struct {
	paymentStatus map[primitive.ObjectID]string
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{paymentStatus: make(map[primitive.ObjectID]string)}
}

func (m *mockUserRepo) Create(ctx context.Context, u *user.User) error { return nil }
func (m *mockUserRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*user.User, error) {
	return nil, user.ErrNotFound
}
func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	return nil, user.ErrNotFound
}
func (m *mockUserRepo) FindByRole(ctx context.Context, role user.Role) ([]user.User, error) {
	return nil, nil
}
func (m *mockUserRepo) EmailTaken(ctx context.Context, email string, excludeID primitive.ObjectID) (bool, error) {
	return false, nil
}
func (m *mockUserRepo) PhoneTaken(ctx context.Context, phone string, excludeID primitive.ObjectID) (bool, error) {
	return false, nil
}
func (m *mockUserRepo) Update(ctx context.Context, u *user.User) error { return nil }
func (m *mockUserRepo) SetActive(ctx context.Context, id primitive.ObjectID, active bool) error {
	return nil
}
func (m *mockUserRepo) SetPaymentStatus(ctx context.Context, id primitive.ObjectID, status string) error {
	m.paymentStatus[id] = status
	return nil
}
func (m *mockUserRepo) CountByRole(ctx context.Context, role user.Role) (int64, error) {
	return 0, nil
}
func (m *mockUserRepo) EnsureIndexes(ctx context.Context) error { return nil }

type mockWasteRepo struct {
	markedUser primitive.ObjectID
	markedFrom time.Time
	markedTo   time.Time
	marked     int64
}

func (m *mockWasteRepo) Create(ctx context.Context, request *waste.WasteRequest) error { return nil }
func (m *mockWasteRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*waste.WasteRequest, error) {
	return nil, waste.ErrNotFound
}
func (m *mockWasteRepo) FindAll(ctx context.Context, filter bson.M) ([]waste.WasteRequest, error) {
	return nil, nil
}
func (m *mockWasteRepo) FindByUser(ctx context.Context, userID primitive.ObjectID) ([]waste.WasteRequest, error) {
	return nil, nil
}
func (m *mockWasteRepo) FindScheduledBetween(ctx context.Context, from, to time.Time) ([]waste.WasteRequest, error) {
	return nil, nil
}
func (m *mockWasteRepo) UpdateStatus(ctx context.Context, id primitive.ObjectID, status waste.Status, scheduledDate *time.Time) error {
	return nil
}
func (m *mockWasteRepo) Update(ctx context.Context, request *waste.WasteRequest) error { return nil }
func (m *mockWasteRepo) MarkPaymentedForRange(ctx context.Context, userID primitive.ObjectID, from, to time.Time) (int64, error) {
	m.markedUser = userID
	m.markedFrom = from
	m.markedTo = to
	m.marked++
	return 2, nil
}
func (m *mockWasteRepo) CountByStatus(ctx context.Context, status waste.Status) (int64, error) {
	return 0, nil
}
func (m *mockWasteRepo) MonthlyStatusCounts(ctx context.Context, year int) ([]waste.MonthStatusCount, error) {
	return nil, nil
}

func newService(repo *mockPaymentRepo, userRepo *mockUserRepo, wasteRepo *mockWasteRepo) *PaymentServiceImpl {
	return &PaymentServiceImpl{
		Repo:      repo,
		UserRepo:  userRepo,
		WasteRepo: wasteRepo,
		Logger:    zap.NewNop(),
	}
}

func TestProcessPaymentRejectsInvalidMethod(t *testing.T) {
	service := newService(&mockPaymentRepo{}, newMockUserRepo(), &mockWasteRepo{})

	_, err := service.ProcessPayment(context.Background(), primitive.NewObjectID().Hex(), "Cash")
	if !errors.Is(err, ErrInvalidMethod) {
		t.Fatalf("expected ErrInvalidMethod, got %v", err)
	}
}

func TestProcessPaymentHappyPath(t *testing.T) {
	repo := &mockPaymentRepo{}
	userRepo := newMockUserRepo()
	wasteRepo := &mockWasteRepo{}
	service := newService(repo, userRepo, wasteRepo)

	userID := primitive.NewObjectID()
	p, err := service.ProcessPayment(context.Background(), userID.Hex(), MethodUPI)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if p.Amount != MonthlyAmount {
		t.Fatalf("expected amount %d, got %d", MonthlyAmount, p.Amount)
	}
	if p.Status != StatusCompleted {
		t.Fatalf("expected completed payment, got %q", p.Status)
	}
	if !strings.HasPrefix(p.TransactionID, "TXN-") {
		t.Fatalf("transaction id %q missing TXN- prefix", p.TransactionID)
	}
	now := time.Now()
	if p.Month != int(now.Month()) || p.Year != now.Year() {
		t.Fatalf("payment stamped with wrong period: %d/%d", p.Month, p.Year)
	}

	if got := userRepo.paymentStatus[userID]; got != string(StatusCompleted) {
		t.Fatalf("user payment status not flipped, got %q", got)
	}

	if wasteRepo.marked != 1 || wasteRepo.markedUser != userID {
		t.Fatal("current-month requests not marked Paymented")
	}
	if wasteRepo.markedFrom.Month() != now.Month() || wasteRepo.markedFrom.Day() != 1 {
		t.Fatalf("range start %v is not the first of the month", wasteRepo.markedFrom)
	}
}

func TestProcessPaymentRejectsDuplicateMonth(t *testing.T) {
	repo := &mockPaymentRepo{}
	service := newService(repo, newMockUserRepo(), &mockWasteRepo{})

	userID := primitive.NewObjectID()
	if _, err := service.ProcessPayment(context.Background(), userID.Hex(), MethodBankTransfer); err != nil {
		t.Fatalf("first payment failed: %v", err)
	}

	_, err := service.ProcessPayment(context.Background(), userID.Hex(), MethodUPI)
	if !errors.Is(err, ErrAlreadyPaid) {
		t.Fatalf("expected ErrAlreadyPaid, got %v", err)
	}
}

func TestProcessPaymentMapsDuplicateKeyToAlreadyPaid(t *testing.T) {
	// Simulates the race where two requests pass the lookup and one insert
	// loses against the partial unique index.
	repo := &mockPaymentRepo{
		createErr: mongo.WriteException{
			WriteErrors: []mongo.WriteError{{Code: 11000}},
		},
	}
	service := newService(repo, newMockUserRepo(), &mockWasteRepo{})

	_, err := service.ProcessPayment(context.Background(), primitive.NewObjectID().Hex(), MethodUPI)
	if !errors.Is(err, ErrAlreadyPaid) {
		t.Fatalf("expected ErrAlreadyPaid on duplicate key, got %v", err)
	}
}
