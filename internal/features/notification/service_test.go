package notification

import (
	"context"
	"errors"
	"testing"
	"time"

	"ecosnap/internal/features/admin"
	"ecosnap/internal/features/donation"
	"ecosnap/internal/features/task"
	"ecosnap/internal/features/user"
	"ecosnap/internal/features/waste"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type mockTaskRepo struct {
	assigned   []task.Task
	byRequest  map[primitive.ObjectID]*task.Task
	byDonation map[primitive.ObjectID]*task.Task
}

func (m *mockTaskRepo) Create(ctx context.Context, t *task.Task) error { return nil }
func (m *mockTaskRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*task.Task, error) {
	return nil, task.ErrNotFound
}
func (m *mockTaskRepo) FindAll(ctx context.Context, filter bson.M) ([]task.Task, error) {
	return nil, nil
}
func (m *mockTaskRepo) FindByEmployee(ctx context.Context, employeeID primitive.ObjectID) ([]task.Task, error) {
	return nil, nil
}
func (m *mockTaskRepo) FindAssignedByRequest(ctx context.Context, requestID primitive.ObjectID) (*task.Task, error) {
	if t, ok := m.byRequest[requestID]; ok {
		return t, nil
	}
	return nil, task.ErrNotFound
}
func (m *mockTaskRepo) FindByDonation(ctx context.Context, donationID primitive.ObjectID) (*task.Task, error) {
	if t, ok := m.byDonation[donationID]; ok {
		return t, nil
	}
	return nil, task.ErrNotFound
}
func (m *mockTaskRepo) FindCompletedSince(ctx context.Context, since time.Time) ([]task.Task, error) {
	return nil, nil
}
func (m *mockTaskRepo) FindAssignedBetween(ctx context.Context, from, to time.Time) ([]task.Task, error) {
	return m.assigned, nil
}
func (m *mockTaskRepo) Update(ctx context.Context, t *task.Task) error { return nil }
func (m *mockTaskRepo) CountByStatus(ctx context.Context, status task.Status) (int64, error) {
	return 0, nil
}

type mockWasteRepo struct {
	scheduled []waste.WasteRequest
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
	return m.scheduled, nil
}
func (m *mockWasteRepo) UpdateStatus(ctx context.Context, id primitive.ObjectID, status waste.Status, scheduledDate *time.Time) error {
	return nil
}
func (m *mockWasteRepo) Update(ctx context.Context, request *waste.WasteRequest) error { return nil }
func (m *mockWasteRepo) MarkPaymentedForRange(ctx context.Context, userID primitive.ObjectID, from, to time.Time) (int64, error) {
	return 0, nil
}
func (m *mockWasteRepo) CountByStatus(ctx context.Context, status waste.Status) (int64, error) {
	return 0, nil
}
func (m *mockWasteRepo) MonthlyStatusCounts(ctx context.Context, year int) ([]waste.MonthStatusCount, error) {
	return nil, nil
}

type mockDonationRepo struct {
	due []donation.Donation
}

func (m *mockDonationRepo) Create(ctx context.Context, d *donation.Donation) error { return nil }
func (m *mockDonationRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*donation.Donation, error) {
	return nil, donation.ErrNotFound
}
func (m *mockDonationRepo) FindAll(ctx context.Context, filter bson.M) ([]donation.Donation, error) {
	return nil, nil
}
func (m *mockDonationRepo) FindByUser(ctx context.Context, userID primitive.ObjectID) ([]donation.Donation, error) {
	return nil, nil
}
func (m *mockDonationRepo) FindCollectionBetween(ctx context.Context, from, to time.Time) ([]donation.Donation, error) {
	return m.due, nil
}
func (m *mockDonationRepo) MarkAssigned(ctx context.Context, id primitive.ObjectID, collectionDate *time.Time) error {
	return nil
}
func (m *mockDonationRepo) MarkClaimed(ctx context.Context, id primitive.ObjectID) error {
	return nil
}
func (m *mockDonationRepo) UpdateStatus(ctx context.Context, id primitive.ObjectID, status donation.Status) (*donation.Donation, error) {
	return nil, donation.ErrNotFound
}
func (m *mockDonationRepo) CountByStatus(ctx context.Context, status donation.Status) (int64, error) {
	return 0, nil
}

type mockUserRepo struct {
	users map[primitive.ObjectID]*user.User
}

func (m *mockUserRepo) Create(ctx context.Context, u *user.User) error { return nil }
func (m *mockUserRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*user.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
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
	return nil
}
func (m *mockUserRepo) CountByRole(ctx context.Context, role user.Role) (int64, error) {
	return 0, nil
}
func (m *mockUserRepo) EnsureIndexes(ctx context.Context) error { return nil }

type mockAdminRepo struct {
	admins []admin.Admin
}

func (m *mockAdminRepo) Create(ctx context.Context, a *admin.Admin) error { return nil }
func (m *mockAdminRepo) FindByEmail(ctx context.Context, email string) (*admin.Admin, error) {
	return nil, admin.ErrNotFound
}
func (m *mockAdminRepo) FindAll(ctx context.Context) ([]admin.Admin, error) {
	return m.admins, nil
}

type mockEmailService struct {
	sent    []string
	failFor map[string]bool
}

func (m *mockEmailService) SendEmail(ctx context.Context, to []string, subject, body string) error {
	if m.failFor[to[0]] {
		return errors.New("smtp unavailable")
	}
	m.sent = append(m.sent, to[0])
	return nil
}

func TestSendTodayRemindersFullSweep(t *testing.T) {
	employeeID := primitive.NewObjectID()
	citizenID := primitive.NewObjectID()
	requestID := primitive.NewObjectID()
	donationID := primitive.NewObjectID()
	today := time.Now()

	empID := "EMP-7"
	users := map[primitive.ObjectID]*user.User{
		employeeID: {ID: employeeID, Name: "Ravi", Email: "ravi@example.com", Role: user.RoleEmployee, EmployeeID: &empID},
		citizenID:  {ID: citizenID, Name: "Asha", Email: "asha@example.com", Role: user.RoleCitizen},
	}

	wasteTask := task.NewWasteTask(employeeID, requestID, &today)
	donationTask := task.NewDonationTask(employeeID, donationID, &today)

	service := &NotificationServiceImpl{
		TaskRepo: &mockTaskRepo{
			assigned:   []task.Task{*wasteTask, *donationTask},
			byRequest:  map[primitive.ObjectID]*task.Task{requestID: wasteTask},
			byDonation: map[primitive.ObjectID]*task.Task{donationID: donationTask},
		},
		WasteRepo: &mockWasteRepo{
			scheduled: []waste.WasteRequest{{ID: requestID, UserID: citizenID, Status: waste.StatusScheduled, ScheduledDate: &today}},
		},
		DonationRepo: &mockDonationRepo{
			due: []donation.Donation{{ID: donationID, UserID: citizenID, ItemType: "Books", Status: donation.StatusAssigned, CollectionDate: &today}},
		},
		UserRepo:     &mockUserRepo{users: users},
		AdminRepo:    &mockAdminRepo{admins: []admin.Admin{{Email: "admin@example.com"}}},
		EmailService: &mockEmailService{},
		Logger:       zap.NewNop(),
	}

	result, err := service.SendTodayReminders(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Success {
		t.Fatal("sweep reported failure")
	}

	// admin digest + citizen waste reminder + donation employee + donation citizen
	if result.Count != 4 {
		t.Fatalf("expected 4 reminder mails, got %d", result.Count)
	}
}

func TestSendTodayRemindersSkipsFailedRecipients(t *testing.T) {
	employeeID := primitive.NewObjectID()
	citizenID := primitive.NewObjectID()
	requestID := primitive.NewObjectID()
	today := time.Now()

	wasteTask := task.NewWasteTask(employeeID, requestID, &today)

	users := map[primitive.ObjectID]*user.User{
		employeeID: {ID: employeeID, Name: "Ravi", Email: "ravi@example.com", Role: user.RoleEmployee},
		citizenID:  {ID: citizenID, Name: "Asha", Email: "asha@example.com", Role: user.RoleCitizen},
	}

	service := &NotificationServiceImpl{
		TaskRepo: &mockTaskRepo{
			assigned:  []task.Task{*wasteTask},
			byRequest: map[primitive.ObjectID]*task.Task{requestID: wasteTask},
		},
		WasteRepo: &mockWasteRepo{
			scheduled: []waste.WasteRequest{{ID: requestID, UserID: citizenID, Status: waste.StatusScheduled, ScheduledDate: &today}},
		},
		DonationRepo: &mockDonationRepo{},
		UserRepo:     &mockUserRepo{users: users},
		AdminRepo:    &mockAdminRepo{admins: []admin.Admin{{Email: "admin@example.com"}}},
		EmailService: &mockEmailService{failFor: map[string]bool{"asha@example.com": true}},
		Logger:       zap.NewNop(),
	}

	result, err := service.SendTodayReminders(context.Background())
	if err != nil {
		t.Fatalf("a failed recipient must not fail the sweep: %v", err)
	}
	// only the admin digest got through
	if result.Count != 1 {
		t.Fatalf("expected count 1, got %d", result.Count)
	}
}
