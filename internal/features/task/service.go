package task

import (
	"context"
	"errors"
	"time"

	"ecosnap/internal/email"
	"ecosnap/internal/features/donation"
	"ecosnap/internal/features/payment"
	"ecosnap/internal/features/user"
	"ecosnap/internal/features/waste"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

var (
	ErrNoRequestIDs      = errors.New("please provide an array of requestIds for bulk assignment")
	ErrNoDonationIDs     = errors.New("please provide donationId or donationIds")
	ErrEmployeeNotFound  = errors.New("employee not found")
	ErrInvalidEmployeeID = errors.New("invalid employee ID")
)

// collectionCooldown is how long a citizen waits between completed pickups.
const collectionCooldown = 30 * 24 * time.Hour

type TaskService interface {
	AssignBulk(ctx context.Context, employeeID string, requestIDs []string, scheduledDate *time.Time) ([]Task, error)
	ListTasks(ctx context.Context) ([]Task, error)
	ListEmployeeTasks(ctx context.Context, employeeID string) ([]Task, error)
	UpdateStatus(ctx context.Context, id string, status Status) (*Task, error)
}

type TaskServiceImpl struct {
	Repo         TaskRepository
	WasteRepo    waste.WasteRequestRepository
	PaymentRepo  payment.PaymentRepository
	UserRepo     user.UserRepository
	EmailService email.EmailService
	Logger       *zap.Logger
}

func NewTaskService(
	repo TaskRepository,
	wasteRepo waste.WasteRequestRepository,
	paymentRepo payment.PaymentRepository,
	userRepo user.UserRepository,
	emailService email.EmailService,
	logger *zap.Logger,
) TaskService {
	return &TaskServiceImpl{
		Repo:         repo,
		WasteRepo:    wasteRepo,
		PaymentRepo:  paymentRepo,
		UserRepo:     userRepo,
		EmailService: emailService,
		Logger:       logger,
	}
}

// AssignBulk walks the request ids and assigns each eligible one to the
// employee. Ineligible ids are skipped without failing the batch: missing
// requests, requests already scheduled or completed, owners without a
// completed payment for the request's creation month, and owners collected
// from within the cooldown window. Skips are logged for operators but
// invisible on the wire.
func (s *TaskServiceImpl) AssignBulk(ctx context.Context, employeeID string, requestIDs []string, scheduledDate *time.Time) ([]Task, error) {
	if len(requestIDs) == 0 {
		return nil, ErrNoRequestIDs
	}
	employeeOID, err := primitive.ObjectIDFromHex(employeeID)
	if err != nil {
		return nil, ErrInvalidEmployeeID
	}

	cooldownStart := time.Now().Add(-collectionCooldown)
	tasks := []Task{}

	for _, id := range requestIDs {
		requestOID, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			s.Logger.Warn("bulk assign: skipping malformed request id", zap.String("requestId", id))
			continue
		}

		request, err := s.WasteRepo.FindByID(ctx, requestOID)
		if err != nil {
			if errors.Is(err, waste.ErrNotFound) {
				s.Logger.Warn("bulk assign: request not found", zap.String("requestId", id))
				continue
			}
			return nil, err
		}

		if request.Status == waste.StatusScheduled || request.Status == waste.StatusCompleted {
			s.Logger.Info("bulk assign: request already handled",
				zap.String("requestId", id),
				zap.String("status", string(request.Status)),
			)
			continue
		}

		month := int(request.CreatedAt.Month())
		year := request.CreatedAt.Year()
		if _, err := s.PaymentRepo.FindCompletedByUserMonth(ctx, request.UserID, month, year); err != nil {
			if errors.Is(err, payment.ErrNotFound) {
				s.Logger.Info("bulk assign: no completed payment for request month",
					zap.String("requestId", id),
					zap.String("userId", request.UserID.Hex()),
				)
				continue
			}
			return nil, err
		}

		collected, err := s.collectedWithinCooldown(ctx, request.UserID, cooldownStart)
		if err != nil {
			return nil, err
		}
		if collected {
			s.Logger.Info("bulk assign: user already collected within cooldown",
				zap.String("requestId", id),
				zap.String("userId", request.UserID.Hex()),
			)
			continue
		}

		task := NewWasteTask(employeeOID, requestOID, scheduledDate)
		if err := s.Repo.Create(ctx, task); err != nil {
			return nil, err
		}
		tasks = append(tasks, *task)

		if err := s.WasteRepo.UpdateStatus(ctx, requestOID, waste.StatusScheduled, scheduledDate); err != nil {
			return nil, err
		}

		if scheduledDate != nil {
			s.notifyScheduled(ctx, request.UserID, employeeOID, *scheduledDate)
		}
	}

	return tasks, nil
}

// collectedWithinCooldown reports whether any completed task since the
// cutoff belongs to a request owned by the given user.
func (s *TaskServiceImpl) collectedWithinCooldown(ctx context.Context, userID primitive.ObjectID, since time.Time) (bool, error) {
	completed, err := s.Repo.FindCompletedSince(ctx, since)
	if err != nil {
		return false, err
	}

	for _, t := range completed {
		if t.RequestID == nil {
			continue
		}
		request, err := s.WasteRepo.FindByID(ctx, *t.RequestID)
		if err != nil {
			if errors.Is(err, waste.ErrNotFound) {
				continue
			}
			return false, err
		}
		if request.UserID == userID {
			return true, nil
		}
	}
	return false, nil
}

func (s *TaskServiceImpl) notifyScheduled(ctx context.Context, userID, employeeID primitive.ObjectID, scheduledDate time.Time) {
	citizen, err := s.UserRepo.FindByID(ctx, userID)
	if err != nil || citizen.Email == "" {
		return
	}
	employee, err := s.UserRepo.FindByID(ctx, employeeID)
	if err != nil {
		return
	}

	body := email.CollectionScheduledBody(citizen.Name, scheduledDate, employee.Name)
	if err := s.EmailService.SendEmail(ctx, []string{citizen.Email}, "Waste Collection Scheduled", body); err != nil {
		s.Logger.Warn("failed to send collection scheduled email",
			zap.String("email", citizen.Email),
			zap.Error(err),
		)
	}
}

func (s *TaskServiceImpl) ListTasks(ctx context.Context) ([]Task, error) {
	return s.Repo.FindAll(ctx, nil)
}

func (s *TaskServiceImpl) ListEmployeeTasks(ctx context.Context, employeeID string) ([]Task, error) {
	oid, err := primitive.ObjectIDFromHex(employeeID)
	if err != nil {
		return nil, ErrInvalidEmployeeID
	}
	return s.Repo.FindByEmployee(ctx, oid)
}

// UpdateStatus moves a task through its lifecycle. Completion stamps
// completedAt and pushes a linked WasteRequest to completed; the sync is
// one-way and donation references are left alone, claiming handles those.
func (s *TaskServiceImpl) UpdateStatus(ctx context.Context, id string, status Status) (*Task, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	task, err := s.Repo.FindByID(ctx, oid)
	if err != nil {
		return nil, err
	}

	if status != "" {
		if !ValidStatus(status) {
			return nil, errors.New("invalid status")
		}
		task.Status = status
	}
	if task.Status == StatusCompleted && task.CompletedAt == nil {
		now := time.Now()
		task.CompletedAt = &now
	}

	if err := s.Repo.Update(ctx, task); err != nil {
		return nil, err
	}

	if task.Status == StatusCompleted && task.RequestID != nil {
		if err := s.WasteRepo.UpdateStatus(ctx, *task.RequestID, waste.StatusCompleted, nil); err != nil && !errors.Is(err, waste.ErrNotFound) {
			return nil, err
		}
	}

	return task, nil
}

// DonationTaskService owns the donation side of the task workflow:
// assignment and the explicit claim that completes the linked task.
type DonationTaskService interface {
	AssignDonations(ctx context.Context, employeeID string, donationIDs []string, collectionDate *time.Time) ([]Task, error)
	ClaimDonation(ctx context.Context, donationID string) (*donation.Donation, error)
}

type DonationTaskServiceImpl struct {
	Repo         TaskRepository
	DonationRepo donation.DonationRepository
	UserRepo     user.UserRepository
	EmailService email.EmailService
	Logger       *zap.Logger
}

func NewDonationTaskService(
	repo TaskRepository,
	donationRepo donation.DonationRepository,
	userRepo user.UserRepository,
	emailService email.EmailService,
	logger *zap.Logger,
) DonationTaskService {
	return &DonationTaskServiceImpl{
		Repo:         repo,
		DonationRepo: donationRepo,
		UserRepo:     userRepo,
		EmailService: emailService,
		Logger:       logger,
	}
}

// AssignDonations mirrors AssignBulk without the payment and cooldown
// gates. Missing donations are skipped; the employee gets one summary
// email for the whole batch.
func (s *DonationTaskServiceImpl) AssignDonations(ctx context.Context, employeeID string, donationIDs []string, collectionDate *time.Time) ([]Task, error) {
	if len(donationIDs) == 0 {
		return nil, ErrNoDonationIDs
	}
	employeeOID, err := primitive.ObjectIDFromHex(employeeID)
	if err != nil {
		return nil, ErrInvalidEmployeeID
	}

	employee, err := s.UserRepo.FindByID(ctx, employeeOID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, ErrEmployeeNotFound
		}
		return nil, err
	}

	tasks := []Task{}
	for _, id := range donationIDs {
		donationOID, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			s.Logger.Warn("donation assign: skipping malformed donation id", zap.String("donationId", id))
			continue
		}

		if _, err := s.DonationRepo.FindByID(ctx, donationOID); err != nil {
			if errors.Is(err, donation.ErrNotFound) {
				s.Logger.Warn("donation assign: donation not found", zap.String("donationId", id))
				continue
			}
			return nil, err
		}

		task := NewDonationTask(employeeOID, donationOID, collectionDate)
		if err := s.Repo.Create(ctx, task); err != nil {
			return nil, err
		}
		tasks = append(tasks, *task)

		if err := s.DonationRepo.MarkAssigned(ctx, donationOID, collectionDate); err != nil {
			return nil, err
		}
	}

	if len(tasks) > 0 && employee.Email != "" && collectionDate != nil {
		body := email.DonationAssignedBody(employee.Name, len(tasks), *collectionDate)
		if err := s.EmailService.SendEmail(ctx, []string{employee.Email}, "New Donation Pickup Task Assigned", body); err != nil {
			s.Logger.Warn("failed to send donation assignment email",
				zap.String("email", employee.Email),
				zap.Error(err),
			)
		}
	}

	return tasks, nil
}

// ClaimDonation marks the donation claimed and completes its linked task
// if one exists.
func (s *DonationTaskServiceImpl) ClaimDonation(ctx context.Context, donationID string) (*donation.Donation, error) {
	oid, err := primitive.ObjectIDFromHex(donationID)
	if err != nil {
		return nil, donation.ErrNotFound
	}

	if err := s.DonationRepo.MarkClaimed(ctx, oid); err != nil {
		return nil, err
	}

	task, err := s.Repo.FindByDonation(ctx, oid)
	if err == nil {
		task.Status = StatusCompleted
		now := time.Now()
		task.CompletedAt = &now
		if err := s.Repo.Update(ctx, task); err != nil {
			return nil, err
		}
	} else if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	return s.DonationRepo.FindByID(ctx, oid)
}
