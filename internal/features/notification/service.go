package notification

import (
	"context"
	"errors"
	"time"

	"ecosnap/internal/email"
	"ecosnap/internal/features/admin"
	"ecosnap/internal/features/donation"
	"ecosnap/internal/features/task"
	"ecosnap/internal/features/user"
	"ecosnap/internal/features/waste"

	"go.uber.org/zap"
)

// ReminderResult reports how many reminder mails a sweep sent.
type ReminderResult struct {
	Success bool `json:"success"`
	Count   int  `json:"count"`
}

type NotificationService interface {
	SendTodayReminders(ctx context.Context) (*ReminderResult, error)
}

type NotificationServiceImpl struct {
	TaskRepo     task.TaskRepository
	WasteRepo    waste.WasteRequestRepository
	DonationRepo donation.DonationRepository
	UserRepo     user.UserRepository
	AdminRepo    admin.AdminRepository
	EmailService email.EmailService
	Logger       *zap.Logger
}

func NewNotificationService(
	taskRepo task.TaskRepository,
	wasteRepo waste.WasteRequestRepository,
	donationRepo donation.DonationRepository,
	userRepo user.UserRepository,
	adminRepo admin.AdminRepository,
	emailService email.EmailService,
	logger *zap.Logger,
) NotificationService {
	return &NotificationServiceImpl{
		TaskRepo:     taskRepo,
		WasteRepo:    wasteRepo,
		DonationRepo: donationRepo,
		UserRepo:     userRepo,
		AdminRepo:    adminRepo,
		EmailService: emailService,
		Logger:       logger,
	}
}

// SendTodayReminders runs the daily sweep: an admin digest of today's
// assigned tasks, a reminder to each citizen with a pickup scheduled
// today, and employee plus citizen reminders for today's donation
// collections. Individual send failures are logged and counted out, the
// sweep itself keeps going.
func (s *NotificationServiceImpl) SendTodayReminders(ctx context.Context) (*ReminderResult, error) {
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	tomorrow := today.AddDate(0, 0, 1)

	s.Logger.Info("running daily reminders", zap.Time("date", today))
	count := 0

	count += s.sendAdminDigest(ctx, today, tomorrow)
	count += s.sendWasteReminders(ctx, today, tomorrow)
	count += s.sendDonationReminders(ctx, today, tomorrow)

	return &ReminderResult{Success: true, Count: count}, nil
}

func (s *NotificationServiceImpl) sendAdminDigest(ctx context.Context, from, to time.Time) int {
	tasks, err := s.TaskRepo.FindAssignedBetween(ctx, from, to)
	if err != nil {
		s.Logger.Error("reminder sweep: failed to load today's tasks", zap.Error(err))
		return 0
	}
	if len(tasks) == 0 {
		return 0
	}

	rows := make([]email.AdminTaskDigestRow, 0, len(tasks))
	for _, t := range tasks {
		row := email.AdminTaskDigestRow{Status: string(t.Status), EmployeeName: "Unassigned"}
		if t.Kind() == task.KindWaste {
			row.Type = "Waste Pickup"
		} else {
			row.Type = "Donation Pickup"
		}
		if employee, err := s.UserRepo.FindByID(ctx, t.EmployeeID); err == nil {
			row.EmployeeName = employee.Name
		}
		rows = append(rows, row)
	}

	admins, err := s.AdminRepo.FindAll(ctx)
	if err != nil {
		s.Logger.Error("reminder sweep: failed to load admins", zap.Error(err))
		return 0
	}

	body := email.AdminTaskDigestBody(rows)
	sent := 0
	for _, a := range admins {
		if a.Email == "" {
			continue
		}
		if err := s.EmailService.SendEmail(ctx, []string{a.Email}, "Daily Task Summary", body); err != nil {
			s.Logger.Warn("reminder sweep: admin digest failed",
				zap.String("email", a.Email),
				zap.Error(err),
			)
			continue
		}
		sent++
	}
	return sent
}

func (s *NotificationServiceImpl) sendWasteReminders(ctx context.Context, from, to time.Time) int {
	requests, err := s.WasteRepo.FindScheduledBetween(ctx, from, to)
	if err != nil {
		s.Logger.Error("reminder sweep: failed to load scheduled requests", zap.Error(err))
		return 0
	}

	sent := 0
	for _, request := range requests {
		t, err := s.TaskRepo.FindAssignedByRequest(ctx, request.ID)
		if err != nil {
			if !errors.Is(err, task.ErrNotFound) {
				s.Logger.Error("reminder sweep: task lookup failed", zap.Error(err))
			}
			continue
		}

		citizen, err := s.UserRepo.FindByID(ctx, request.UserID)
		if err != nil || citizen.Email == "" {
			continue
		}
		employee, err := s.UserRepo.FindByID(ctx, t.EmployeeID)
		if err != nil {
			continue
		}

		employeeID := ""
		if employee.EmployeeID != nil {
			employeeID = *employee.EmployeeID
		}
		body := email.CollectionReminderBody(citizen.Name, employee.Name, employeeID)
		if err := s.EmailService.SendEmail(ctx, []string{citizen.Email}, "Reminder: Waste Collection Today", body); err != nil {
			s.Logger.Warn("reminder sweep: waste reminder failed",
				zap.String("email", citizen.Email),
				zap.Error(err),
			)
			continue
		}
		sent++
	}
	return sent
}

func (s *NotificationServiceImpl) sendDonationReminders(ctx context.Context, from, to time.Time) int {
	donations, err := s.DonationRepo.FindCollectionBetween(ctx, from, to)
	if err != nil {
		s.Logger.Error("reminder sweep: failed to load donation collections", zap.Error(err))
		return 0
	}

	sent := 0
	for _, d := range donations {
		t, err := s.TaskRepo.FindByDonation(ctx, d.ID)
		if err != nil {
			if !errors.Is(err, task.ErrNotFound) {
				s.Logger.Error("reminder sweep: donation task lookup failed", zap.Error(err))
			}
			continue
		}

		if employee, err := s.UserRepo.FindByID(ctx, t.EmployeeID); err == nil && employee.Email != "" {
			body := email.DonationReminderEmployeeBody(employee.Name, d.ItemType, d.Description)
			if err := s.EmailService.SendEmail(ctx, []string{employee.Email}, "Reminder: Donation Pickup Due Today", body); err != nil {
				s.Logger.Warn("reminder sweep: donation employee reminder failed",
					zap.String("email", employee.Email),
					zap.Error(err),
				)
			} else {
				sent++
			}
		}

		if citizen, err := s.UserRepo.FindByID(ctx, d.UserID); err == nil && citizen.Email != "" {
			body := email.DonationReminderUserBody(citizen.Name, d.ItemType)
			if err := s.EmailService.SendEmail(ctx, []string{citizen.Email}, "Donation Collection Today", body); err != nil {
				s.Logger.Warn("reminder sweep: donation citizen reminder failed",
					zap.String("email", citizen.Email),
					zap.Error(err),
				)
			} else {
				sent++
			}
		}
	}
	return sent
}
