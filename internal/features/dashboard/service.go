package dashboard

import (
	"context"
	"time"

	"ecosnap/internal/features/donation"
	"ecosnap/internal/features/task"
	"ecosnap/internal/features/user"
	"ecosnap/internal/features/waste"
)

// MonthlyRequests is one month's WasteRequest counts split by status.
type MonthlyRequests struct {
	Month     int   `json:"month"`
	Pending   int64 `json:"pending"`
	Paymented int64 `json:"paymented"`
	Scheduled int64 `json:"scheduled"`
	Completed int64 `json:"completed"`
}

type DonationCounts struct {
	Available int64 `json:"available"`
	Assigned  int64 `json:"assigned"`
	Claimed   int64 `json:"claimed"`
}

type Stats struct {
	TotalCitizens   int64             `json:"totalCitizens"`
	TotalEmployees  int64             `json:"totalEmployees"`
	CompletedTasks  int64             `json:"completedTasks"`
	PendingRequests int64             `json:"pendingRequests"`
	Donations       DonationCounts    `json:"donations"`
	MonthlyRequests []MonthlyRequests `json:"monthlyRequests"`
}

type DashboardService interface {
	GetStats(ctx context.Context) (*Stats, error)
}

type DashboardServiceImpl struct {
	UserRepo     user.UserRepository
	WasteRepo    waste.WasteRequestRepository
	DonationRepo donation.DonationRepository
	TaskRepo     task.TaskRepository
}

func NewDashboardService(
	userRepo user.UserRepository,
	wasteRepo waste.WasteRequestRepository,
	donationRepo donation.DonationRepository,
	taskRepo task.TaskRepository,
) DashboardService {
	return &DashboardServiceImpl{
		UserRepo:     userRepo,
		WasteRepo:    wasteRepo,
		DonationRepo: donationRepo,
		TaskRepo:     taskRepo,
	}
}

func (s *DashboardServiceImpl) GetStats(ctx context.Context) (*Stats, error) {
	stats := &Stats{}

	var err error
	if stats.TotalCitizens, err = s.UserRepo.CountByRole(ctx, user.RoleCitizen); err != nil {
		return nil, err
	}
	if stats.TotalEmployees, err = s.UserRepo.CountByRole(ctx, user.RoleEmployee); err != nil {
		return nil, err
	}
	if stats.CompletedTasks, err = s.TaskRepo.CountByStatus(ctx, task.StatusCompleted); err != nil {
		return nil, err
	}
	if stats.PendingRequests, err = s.WasteRepo.CountByStatus(ctx, waste.StatusPending); err != nil {
		return nil, err
	}

	if stats.Donations.Available, err = s.DonationRepo.CountByStatus(ctx, donation.StatusAvailable); err != nil {
		return nil, err
	}
	if stats.Donations.Assigned, err = s.DonationRepo.CountByStatus(ctx, donation.StatusAssigned); err != nil {
		return nil, err
	}
	if stats.Donations.Claimed, err = s.DonationRepo.CountByStatus(ctx, donation.StatusClaimed); err != nil {
		return nil, err
	}

	rows, err := s.WasteRepo.MonthlyStatusCounts(ctx, time.Now().Year())
	if err != nil {
		return nil, err
	}
	stats.MonthlyRequests = BucketByMonth(rows)

	return stats, nil
}

// BucketByMonth reshapes sparse aggregation rows into twelve fixed
// buckets so chart clients never see gaps.
func BucketByMonth(rows []waste.MonthStatusCount) []MonthlyRequests {
	buckets := make([]MonthlyRequests, 12)
	for i := range buckets {
		buckets[i].Month = i + 1
	}

	for _, row := range rows {
		if row.Month < 1 || row.Month > 12 {
			continue
		}
		b := &buckets[row.Month-1]
		switch row.Status {
		case waste.StatusPending:
			b.Pending += row.Count
		case waste.StatusPaymented:
			b.Paymented += row.Count
		case waste.StatusScheduled:
			b.Scheduled += row.Count
		case waste.StatusCompleted:
			b.Completed += row.Count
		}
	}
	return buckets
}
