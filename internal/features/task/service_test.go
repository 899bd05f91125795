package task

import (
	"context"
	"testing"
	"time"

	"ecosnap/internal/features/donation"
	"ecosnap/internal/features/payment"
	"ecosnap/internal/features/user"
	"ecosnap/internal/features/waste"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type mockTaskRepo struct {
	tasks []*Task
}

func (m *mockTaskRepo) Create(ctx context.Context, task *Task) error {
	if task.ID.IsZero() {
		task.ID = primitive.NewObjectID()
	}
	copied := *task
	m.tasks = append(m.tasks, &copied)
	return nil
}

func (m *mockTaskRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*Task, error) {
	for _, t := range m.tasks {
		if t.ID == id {
			copied := *t
			return &copied, nil
		}
	}
	return nil, ErrNotFound
}

func (m *mockTaskRepo) FindAll(ctx context.Context, filter bson.M) ([]Task, error) {
	out := make([]Task, 0, len(m.tasks))
	for _, t := range m.tasks {
		out = append(out, *t)
	}
	return out, nil
}

func (m *mockTaskRepo) FindByEmployee(ctx context.Context, employeeID primitive.ObjectID) ([]Task, error) {
	var out []Task
	for _, t := range m.tasks {
		if t.EmployeeID == employeeID {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (m *mockTaskRepo) FindAssignedByRequest(ctx context.Context, requestID primitive.ObjectID) (*Task, error) {
	for _, t := range m.tasks {
		if t.RequestID != nil && *t.RequestID == requestID && t.Status == StatusAssigned {
			copied := *t
			return &copied, nil
		}
	}
	return nil, ErrNotFound
}

func (m *mockTaskRepo) FindByDonation(ctx context.Context, donationID primitive.ObjectID) (*Task, error) {
	for _, t := range m.tasks {
		if t.DonationID != nil && *t.DonationID == donationID {
			copied := *t
			return &copied, nil
		}
	}
	return nil, ErrNotFound
}

func (m *mockTaskRepo) FindCompletedSince(ctx context.Context, since time.Time) ([]Task, error) {
	var out []Task
	for _, t := range m.tasks {
		if t.Status == StatusCompleted && t.CompletedAt != nil && !t.CompletedAt.Before(since) {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (m *mockTaskRepo) FindAssignedBetween(ctx context.Context, from, to time.Time) ([]Task, error) {
	var out []Task
	for _, t := range m.tasks {
		if t.Status == StatusAssigned && t.ScheduledDate != nil &&
			!t.ScheduledDate.Before(from) && t.ScheduledDate.Before(to) {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (m *mockTaskRepo) Update(ctx context.Context, task *Task) error {
	for i, t := range m.tasks {
		if t.ID == task.ID {
			copied := *task
			m.tasks[i] = &copied
			return nil
		}
	}
	return ErrNotFound
}

func (m *mockTaskRepo) CountByStatus(ctx context.Context, status Status) (int64, error) {
	var n int64
	for _, t := range m.tasks {
		if t.Status == status {
			n++
		}
	}
	return n, nil
}

type mockWasteRepo struct {
	requests map[primitive.ObjectID]*waste.WasteRequest
}

func newMockWasteRepo() *mockWasteRepo {
	return &mockWasteRepo{requests: make(map[primitive.ObjectID]*waste.WasteRequest)}
}

func (m *mockWasteRepo) add(userID primitive.ObjectID, status waste.Status, createdAt time.Time) *waste.WasteRequest {
	r := &waste.WasteRequest{
		ID:        primitive.NewObjectID(),
		UserID:    userID,
		Status:    status,
		CreatedAt: createdAt,
	}
	m.requests[r.ID] = r
	return r
}

func (m *mockWasteRepo) Create(ctx context.Context, request *waste.WasteRequest) error {
	m.requests[request.ID] = request
	return nil
}

func (m *mockWasteRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*waste.WasteRequest, error) {
	if r, ok := m.requests[id]; ok {
		copied := *r
		return &copied, nil
	}
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
	r, ok := m.requests[id]
	if !ok {
		return waste.ErrNotFound
	}
	r.Status = status
	if scheduledDate != nil {
		r.ScheduledDate = scheduledDate
	}
	return nil
}

func (m *mockWasteRepo) Update(ctx context.Context, request *waste.WasteRequest) error {
	m.requests[request.ID] = request
	return nil
}

func (m *mockWasteRepo) MarkPaymentedForRange(ctx context.Context, userID primitive.ObjectID, from, to time.Time) (int64, error) {
	return 0, nil
}

func (m *mockWasteRepo) CountByStatus(ctx context.Context, status waste.Status) (int64, error) {
	return 0, nil
}

func (m *mockWasteRepo) MonthlyStatusCounts(ctx context.Context, year int) ([]waste.MonthStatusCount, error) {
	return nil, nil
}

type paymentKey struct {
	user  primitive.ObjectID
	month int
	year  int
}

type mockPaymentRepo struct {
	completed map[paymentKey]bool
}

func newMockPaymentRepo() *mockPaymentRepo {
	return &mockPaymentRepo{completed: make(map[paymentKey]bool)}
}

func (m *mockPaymentRepo) markPaid(userID primitive.ObjectID, at time.Time) {
	m.completed[paymentKey{userID, int(at.Month()), at.Year()}] = true
}

func (m *mockPaymentRepo) Create(ctx context.Context, p *payment.Payment) error { return nil }

func (m *mockPaymentRepo) FindByUser(ctx context.Context, userID primitive.ObjectID) ([]payment.Payment, error) {
	return nil, nil
}

func (m *mockPaymentRepo) FindByStatus(ctx context.Context, status payment.Status) ([]payment.Payment, error) {
	return nil, nil
}

func (m *mockPaymentRepo) FindCompletedByUserMonth(ctx context.Context, userID primitive.ObjectID, month, year int) (*payment.Payment, error) {
	if m.completed[paymentKey{userID, month, year}] {
		return &payment.Payment{UserID: userID, Month: month, Year: year, Status: payment.StatusCompleted}, nil
	}
	return nil, payment.ErrNotFound
}

func (m *mockPaymentRepo) FindAll(ctx context.Context, filter bson.M) ([]payment.Payment, error) {
	return nil, nil
}

func (m *mockPaymentRepo) EnsureIndexes(ctx context.Context) error { return nil }

type mockUserRepo struct {
	users map[primitive.ObjectID]*user.User
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[primitive.ObjectID]*user.User)}
}

func (m *mockUserRepo) add(name, emailAddr string, role user.Role) *user.User {
	u := &user.User{ID: primitive.NewObjectID(), Name: name, Email: emailAddr, Role: role, IsActive: true}
	m.users[u.ID] = u
	return u
}

func (m *mockUserRepo) Create(ctx context.Context, u *user.User) error {
	m.users[u.ID] = u
	return nil
}

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

type mockDonationRepo struct {
	donations map[primitive.ObjectID]*donation.Donation
}

func newMockDonationRepo() *mockDonationRepo {
	return &mockDonationRepo{donations: make(map[primitive.ObjectID]*donation.Donation)}
}

func (m *mockDonationRepo) add(userID primitive.ObjectID, itemType string) *donation.Donation {
	d := &donation.Donation{
		ID:       primitive.NewObjectID(),
		UserID:   userID,
		ItemType: itemType,
		Status:   donation.StatusAvailable,
	}
	m.donations[d.ID] = d
	return d
}

func (m *mockDonationRepo) Create(ctx context.Context, d *donation.Donation) error {
	m.donations[d.ID] = d
	return nil
}

func (m *mockDonationRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*donation.Donation, error) {
	if d, ok := m.donations[id]; ok {
		copied := *d
		return &copied, nil
	}
	return nil, donation.ErrNotFound
}

func (m *mockDonationRepo) FindAll(ctx context.Context, filter bson.M) ([]donation.Donation, error) {
	return nil, nil
}

func (m *mockDonationRepo) FindByUser(ctx context.Context, userID primitive.ObjectID) ([]donation.Donation, error) {
	return nil, nil
}

func (m *mockDonationRepo) FindCollectionBetween(ctx context.Context, from, to time.Time) ([]donation.Donation, error) {
	return nil, nil
}

func (m *mockDonationRepo) MarkAssigned(ctx context.Context, id primitive.ObjectID, collectionDate *time.Time) error {
	d, ok := m.donations[id]
	if !ok {
		return donation.ErrNotFound
	}
	d.Status = donation.StatusAssigned
	if collectionDate != nil {
		d.CollectionDate = collectionDate
	}
	return nil
}

func (m *mockDonationRepo) MarkClaimed(ctx context.Context, id primitive.ObjectID) error {
	d, ok := m.donations[id]
	if !ok {
		return donation.ErrNotFound
	}
	d.Status = donation.StatusClaimed
	return nil
}

func (m *mockDonationRepo) UpdateStatus(ctx context.Context, id primitive.ObjectID, status donation.Status) (*donation.Donation, error) {
	d, ok := m.donations[id]
	if !ok {
		return nil, donation.ErrNotFound
	}
	d.Status = status
	copied := *d
	return &copied, nil
}

func (m *mockDonationRepo) CountByStatus(ctx context.Context, status donation.Status) (int64, error) {
	return 0, nil
}

type mockEmailService struct {
	sent    []string
	failAll bool
}

func (m *mockEmailService) SendEmail(ctx context.Context, to []string, subject, body string) error {
	if m.failAll {
		return context.DeadlineExceeded
	}
	m.sent = append(m.sent, to[0])
	return nil
}

func newTaskService(taskRepo *mockTaskRepo, wasteRepo *mockWasteRepo, paymentRepo *mockPaymentRepo, userRepo *mockUserRepo, emailSvc *mockEmailService) *TaskServiceImpl {
	return &TaskServiceImpl{
		Repo:         taskRepo,
		WasteRepo:    wasteRepo,
		PaymentRepo:  paymentRepo,
		UserRepo:     userRepo,
		EmailService: emailSvc,
		Logger:       zap.NewNop(),
	}
}

func TestAssignBulkRequiresIDs(t *testing.T) {
	service := newTaskService(&mockTaskRepo{}, newMockWasteRepo(), newMockPaymentRepo(), newMockUserRepo(), &mockEmailService{})

	if _, err := service.AssignBulk(context.Background(), primitive.NewObjectID().Hex(), nil, nil); err != ErrNoRequestIDs {
		t.Fatalf("expected ErrNoRequestIDs, got %v", err)
	}
}

func TestAssignBulkSkipsUnpaidUsers(t *testing.T) {
	taskRepo := &mockTaskRepo{}
	wasteRepo := newMockWasteRepo()
	userRepo := newMockUserRepo()

	citizen := userRepo.add("Asha", "asha@example.com", user.RoleCitizen)
	employee := userRepo.add("Ravi", "ravi@example.com", user.RoleEmployee)
	request := wasteRepo.add(citizen.ID, waste.StatusPending, time.Now())

	service := newTaskService(taskRepo, wasteRepo, newMockPaymentRepo(), userRepo, &mockEmailService{})

	tasks, err := service.AssignBulk(context.Background(), employee.ID.Hex(), []string{request.ID.Hex()}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tasks) != 0 {
		t.Fatalf("expected no tasks for unpaid user, got %d", len(tasks))
	}
	if got := wasteRepo.requests[request.ID].Status; got != waste.StatusPending {
		t.Fatalf("request status changed to %q on skipped assignment", got)
	}
}

func TestAssignBulkAssignsPaidRequest(t *testing.T) {
	taskRepo := &mockTaskRepo{}
	wasteRepo := newMockWasteRepo()
	paymentRepo := newMockPaymentRepo()
	userRepo := newMockUserRepo()
	emailSvc := &mockEmailService{}

	citizen := userRepo.add("Asha", "asha@example.com", user.RoleCitizen)
	employee := userRepo.add("Ravi", "ravi@example.com", user.RoleEmployee)
	request := wasteRepo.add(citizen.ID, waste.StatusPaymented, time.Now())
	paymentRepo.markPaid(citizen.ID, request.CreatedAt)

	service := newTaskService(taskRepo, wasteRepo, paymentRepo, userRepo, emailSvc)

	scheduledDate := time.Now().AddDate(0, 0, 2)
	tasks, err := service.AssignBulk(context.Background(), employee.ID.Hex(), []string{request.ID.Hex()}, &scheduledDate)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tasks) != 1 {
		t.Fatalf("expected 1 task, got %d", len(tasks))
	}
	if tasks[0].RequestID == nil || *tasks[0].RequestID != request.ID {
		t.Fatal("task does not reference the request")
	}
	if tasks[0].Kind() != KindWaste {
		t.Fatalf("expected waste task, got %q", tasks[0].Kind())
	}

	updated := wasteRepo.requests[request.ID]
	if updated.Status != waste.StatusScheduled {
		t.Fatalf("expected request scheduled, got %q", updated.Status)
	}
	if updated.ScheduledDate == nil || !updated.ScheduledDate.Equal(scheduledDate) {
		t.Fatal("scheduled date not propagated to request")
	}
	if len(emailSvc.sent) != 1 || emailSvc.sent[0] != citizen.Email {
		t.Fatalf("expected schedule email to %s, got %v", citizen.Email, emailSvc.sent)
	}
}

func TestAssignBulkSkipsRecentlyCollectedUser(t *testing.T) {
	taskRepo := &mockTaskRepo{}
	wasteRepo := newMockWasteRepo()
	paymentRepo := newMockPaymentRepo()
	userRepo := newMockUserRepo()

	citizen := userRepo.add("Asha", "asha@example.com", user.RoleCitizen)
	employee := userRepo.add("Ravi", "ravi@example.com", user.RoleEmployee)

	// A collection completed two weeks ago for the same user
	oldRequest := wasteRepo.add(citizen.ID, waste.StatusCompleted, time.Now().AddDate(0, 0, -20))
	completedAt := time.Now().AddDate(0, 0, -14)
	oldTask := NewWasteTask(employee.ID, oldRequest.ID, nil)
	oldTask.Status = StatusCompleted
	oldTask.CompletedAt = &completedAt
	if err := taskRepo.Create(context.Background(), oldTask); err != nil {
		t.Fatal(err)
	}

	request := wasteRepo.add(citizen.ID, waste.StatusPaymented, time.Now())
	paymentRepo.markPaid(citizen.ID, request.CreatedAt)

	service := newTaskService(taskRepo, wasteRepo, paymentRepo, userRepo, &mockEmailService{})

	tasks, err := service.AssignBulk(context.Background(), employee.ID.Hex(), []string{request.ID.Hex()}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tasks) != 0 {
		t.Fatalf("expected cooldown skip, got %d tasks", len(tasks))
	}
}

func TestAssignBulkSkipsAlreadyScheduledRequest(t *testing.T) {
	taskRepo := &mockTaskRepo{}
	wasteRepo := newMockWasteRepo()
	paymentRepo := newMockPaymentRepo()
	userRepo := newMockUserRepo()

	citizen := userRepo.add("Asha", "asha@example.com", user.RoleCitizen)
	employee := userRepo.add("Ravi", "ravi@example.com", user.RoleEmployee)
	request := wasteRepo.add(citizen.ID, waste.StatusScheduled, time.Now())
	paymentRepo.markPaid(citizen.ID, request.CreatedAt)

	service := newTaskService(taskRepo, wasteRepo, paymentRepo, userRepo, &mockEmailService{})

	tasks, err := service.AssignBulk(context.Background(), employee.ID.Hex(), []string{request.ID.Hex()}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tasks) != 0 {
		t.Fatalf("expected resubmitted request to be skipped, got %d tasks", len(tasks))
	}
}

func TestAssignBulkEmailFailureIsNotFatal(t *testing.T) {
	taskRepo := &mockTaskRepo{}
	wasteRepo := newMockWasteRepo()
	paymentRepo := newMockPaymentRepo()
	userRepo := newMockUserRepo()

	citizen := userRepo.add("Asha", "asha@example.com", user.RoleCitizen)
	employee := userRepo.add("Ravi", "ravi@example.com", user.RoleEmployee)
	request := wasteRepo.add(citizen.ID, waste.StatusPaymented, time.Now())
	paymentRepo.markPaid(citizen.ID, request.CreatedAt)

	service := newTaskService(taskRepo, wasteRepo, paymentRepo, userRepo, &mockEmailService{failAll: true})

	scheduledDate := time.Now().AddDate(0, 0, 1)
	tasks, err := service.AssignBulk(context.Background(), employee.ID.Hex(), []string{request.ID.Hex()}, &scheduledDate)
	if err != nil {
		t.Fatalf("email failure should not fail the batch: %v", err)
	}
	if len(tasks) != 1 {
		t.Fatalf("expected 1 task despite email failure, got %d", len(tasks))
	}
}

func TestUpdateStatusCompletedPropagatesToRequest(t *testing.T) {
	taskRepo := &mockTaskRepo{}
	wasteRepo := newMockWasteRepo()
	userRepo := newMockUserRepo()

	citizen := userRepo.add("Asha", "asha@example.com", user.RoleCitizen)
	employee := userRepo.add("Ravi", "ravi@example.com", user.RoleEmployee)
	request := wasteRepo.add(citizen.ID, waste.StatusScheduled, time.Now())

	assigned := NewWasteTask(employee.ID, request.ID, nil)
	if err := taskRepo.Create(context.Background(), assigned); err != nil {
		t.Fatal(err)
	}

	service := newTaskService(taskRepo, wasteRepo, newMockPaymentRepo(), userRepo, &mockEmailService{})

	updated, err := service.UpdateStatus(context.Background(), assigned.ID.Hex(), StatusCompleted)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.CompletedAt == nil {
		t.Fatal("completedAt not stamped")
	}
	if got := wasteRepo.requests[request.ID].Status; got != waste.StatusCompleted {
		t.Fatalf("request status not propagated, got %q", got)
	}
}

func TestUpdateStatusFailedDoesNotPropagate(t *testing.T) {
	taskRepo := &mockTaskRepo{}
	wasteRepo := newMockWasteRepo()
	userRepo := newMockUserRepo()

	citizen := userRepo.add("Asha", "asha@example.com", user.RoleCitizen)
	employee := userRepo.add("Ravi", "ravi@example.com", user.RoleEmployee)
	request := wasteRepo.add(citizen.ID, waste.StatusScheduled, time.Now())

	assigned := NewWasteTask(employee.ID, request.ID, nil)
	if err := taskRepo.Create(context.Background(), assigned); err != nil {
		t.Fatal(err)
	}

	service := newTaskService(taskRepo, wasteRepo, newMockPaymentRepo(), userRepo, &mockEmailService{})

	if _, err := service.UpdateStatus(context.Background(), assigned.ID.Hex(), StatusFailed); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := wasteRepo.requests[request.ID].Status; got != waste.StatusScheduled {
		t.Fatalf("failed task must not touch the request, got %q", got)
	}
}

func TestAssignDonationsMarksAssigned(t *testing.T) {
	taskRepo := &mockTaskRepo{}
	donationRepo := newMockDonationRepo()
	userRepo := newMockUserRepo()
	emailSvc := &mockEmailService{}

	citizen := userRepo.add("Asha", "asha@example.com", user.RoleCitizen)
	employee := userRepo.add("Ravi", "ravi@example.com", user.RoleEmployee)
	d := donationRepo.add(citizen.ID, "Books")

	service := &DonationTaskServiceImpl{
		Repo:         taskRepo,
		DonationRepo: donationRepo,
		UserRepo:     userRepo,
		EmailService: emailSvc,
		Logger:       zap.NewNop(),
	}

	collectionDate := time.Now().AddDate(0, 0, 3)
	tasks, err := service.AssignDonations(context.Background(), employee.ID.Hex(), []string{d.ID.Hex(), primitive.NewObjectID().Hex()}, &collectionDate)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tasks) != 1 {
		t.Fatalf("expected 1 task (missing donation skipped), got %d", len(tasks))
	}
	if tasks[0].Kind() != KindDonation {
		t.Fatalf("expected donation task, got %q", tasks[0].Kind())
	}

	stored := donationRepo.donations[d.ID]
	if stored.Status != donation.StatusAssigned {
		t.Fatalf("donation not marked assigned, got %q", stored.Status)
	}
	if stored.CollectionDate == nil || !stored.CollectionDate.Equal(collectionDate) {
		t.Fatal("collection date not set on donation")
	}
	if len(emailSvc.sent) != 1 || emailSvc.sent[0] != employee.Email {
		t.Fatalf("expected assignment email to %s, got %v", employee.Email, emailSvc.sent)
	}
}

func TestAssignDonationsUnknownEmployee(t *testing.T) {
	service := &DonationTaskServiceImpl{
		Repo:         &mockTaskRepo{},
		DonationRepo: newMockDonationRepo(),
		UserRepo:     newMockUserRepo(),
		EmailService: &mockEmailService{},
		Logger:       zap.NewNop(),
	}

	_, err := service.AssignDonations(context.Background(), primitive.NewObjectID().Hex(), []string{primitive.NewObjectID().Hex()}, nil)
	if err != ErrEmployeeNotFound {
		t.Fatalf("expected ErrEmployeeNotFound, got %v", err)
	}
}

func TestClaimDonationCompletesLinkedTask(t *testing.T) {
	taskRepo := &mockTaskRepo{}
	donationRepo := newMockDonationRepo()
	userRepo := newMockUserRepo()

	citizen := userRepo.add("Asha", "asha@example.com", user.RoleCitizen)
	employee := userRepo.add("Ravi", "ravi@example.com", user.RoleEmployee)
	d := donationRepo.add(citizen.ID, "Toys")

	linked := NewDonationTask(employee.ID, d.ID, nil)
	if err := taskRepo.Create(context.Background(), linked); err != nil {
		t.Fatal(err)
	}

	service := &DonationTaskServiceImpl{
		Repo:         taskRepo,
		DonationRepo: donationRepo,
		UserRepo:     userRepo,
		EmailService: &mockEmailService{},
		Logger:       zap.NewNop(),
	}

	claimed, err := service.ClaimDonation(context.Background(), d.ID.Hex())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if claimed.Status != donation.StatusClaimed {
		t.Fatalf("expected claimed, got %q", claimed.Status)
	}

	stored, err := taskRepo.FindByID(context.Background(), linked.ID)
	if err != nil {
		t.Fatal(err)
	}
	if stored.Status != StatusCompleted || stored.CompletedAt == nil {
		t.Fatalf("linked task not completed: status=%q", stored.Status)
	}
}
