package cron

import (
	"context"
	"sync"
	"time"

	"ecosnap/internal/features/notification"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// reminderSchedule fires every day at 08:00 server time.
const reminderSchedule = "0 8 * * *"

// sweepTimeout bounds one reminder run so a stuck SMTP server cannot pile
// up overlapping sweeps.
const sweepTimeout = 10 * time.Minute

type Scheduler struct {
	NotificationService notification.NotificationService
	Logger              *zap.Logger

	cron    *cron.Cron
	entries map[string]cron.EntryID
	mu      sync.RWMutex
}

func NewScheduler(notificationService notification.NotificationService, logger *zap.Logger) *Scheduler {
	return &Scheduler{
		NotificationService: notificationService,
		Logger:              logger,
		cron:                cron.New(),
		entries:             make(map[string]cron.EntryID),
	}
}

func (s *Scheduler) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, err := s.cron.AddFunc(reminderSchedule, s.runReminderSweep)
	if err != nil {
		return err
	}
	s.entries["daily-reminders"] = id

	s.cron.Start()
	s.Logger.Info("cron scheduler started", zap.String("reminderSchedule", reminderSchedule))
	return nil
}

// Stop halts scheduling and waits for any in-flight job to finish.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctx := s.cron.Stop()
	<-ctx.Done()
	s.Logger.Info("cron scheduler stopped")
}

func (s *Scheduler) runReminderSweep() {
	ctx, cancel := context.WithTimeout(context.Background(), sweepTimeout)
	defer cancel()

	result, err := s.NotificationService.SendTodayReminders(ctx)
	if err != nil {
		s.Logger.Error("daily reminder sweep failed", zap.Error(err))
		return
	}
	s.Logger.Info("daily reminder sweep finished", zap.Int("emailsSent", result.Count))
}
