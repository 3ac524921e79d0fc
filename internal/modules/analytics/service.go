package analytics

import (
	"context"
	"time"

	"github.com/amjooky/carwash-plus-sub001/internal/domain"
)

type Service struct {
	users     userStatsReader
	customers customerStatsReader
	bookings  bookingStatsReader
	payments  paymentStatsReader
	activity  activityReader
}

func NewService(users userStatsReader, customers customerStatsReader, bookings bookingStatsReader, payments paymentStatsReader, activity activityReader) *Service {
	return &Service{
		users:     users,
		customers: customers,
		bookings:  bookings,
		payments:  payments,
		activity:  activity,
	}
}

type DashboardStats struct {
	ActiveUsers       int64   `json:"active_users"`
	TotalCustomers    int64   `json:"total_customers"`
	TotalBookings     int64   `json:"total_bookings"`
	CompletedBookings int64   `json:"completed_bookings"`
	PendingPayments   int64   `json:"pending_payments"`
	Revenue30d        float64 `json:"revenue_30d"`
}

func (s *Service) Dashboard(ctx context.Context) (*DashboardStats, error) {
	stats := &DashboardStats{}

	var err error
	if stats.ActiveUsers, err = s.users.CountByStatus(ctx, domain.UserActive); err != nil {
		return nil, err
	}
	if stats.TotalCustomers, err = s.customers.Count(ctx); err != nil {
		return nil, err
	}
	if stats.TotalBookings, err = s.bookings.Count(ctx); err != nil {
		return nil, err
	}
	if stats.CompletedBookings, err = s.bookings.CountByStatus(ctx, domain.BookingCompleted); err != nil {
		return nil, err
	}
	if stats.PendingPayments, err = s.payments.CountByStatus(ctx, domain.PaymentPending); err != nil {
		return nil, err
	}
	if stats.Revenue30d, err = s.payments.SumCompletedSince(ctx, time.Now().AddDate(0, 0, -30)); err != nil {
		return nil, err
	}

	return stats, nil
}

type UserStats struct {
	Active         int64 `json:"active"`
	Inactive       int64 `json:"inactive"`
	Suspended      int64 `json:"suspended"`
	NewLast30Days  int64 `json:"new_last_30_days"`
	NewLast7Days   int64 `json:"new_last_7_days"`
	NewLast24Hours int64 `json:"new_last_24_hours"`
}

func (s *Service) Users(ctx context.Context) (*UserStats, error) {
	stats := &UserStats{}

	var err error
	if stats.Active, err = s.users.CountByStatus(ctx, domain.UserActive); err != nil {
		return nil, err
	}
	if stats.Inactive, err = s.users.CountByStatus(ctx, domain.UserInactive); err != nil {
		return nil, err
	}
	if stats.Suspended, err = s.users.CountByStatus(ctx, domain.UserSuspended); err != nil {
		return nil, err
	}

	now := time.Now()
	if stats.NewLast30Days, err = s.users.CountCreatedSince(ctx, now.AddDate(0, 0, -30)); err != nil {
		return nil, err
	}
	if stats.NewLast7Days, err = s.users.CountCreatedSince(ctx, now.AddDate(0, 0, -7)); err != nil {
		return nil, err
	}
	if stats.NewLast24Hours, err = s.users.CountCreatedSince(ctx, now.Add(-24*time.Hour)); err != nil {
		return nil, err
	}

	return stats, nil
}

// Activity returns the most recent activity log entries across all users.
func (s *Service) Activity(ctx context.Context, limit int) ([]domain.ActivityLog, error) {
	return s.activity.Recent(ctx, limit)
}
