package analytics

import (
	"context"
	"time"

	"github.com/amjooky/carwash-plus-sub001/internal/domain"
)

type userStatsReader interface {
	CountByStatus(ctx context.Context, status domain.UserStatus) (int64, error)
	CountCreatedSince(ctx context.Context, since time.Time) (int64, error)
}

type customerStatsReader interface {
	Count(ctx context.Context) (int64, error)
}

type bookingStatsReader interface {
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status domain.BookingStatus) (int64, error)
}

type paymentStatsReader interface {
	SumCompletedSince(ctx context.Context, since time.Time) (float64, error)
	CountByStatus(ctx context.Context, status domain.PaymentStatus) (int64, error)
}

type activityReader interface {
	Recent(ctx context.Context, limit int) ([]domain.ActivityLog, error)
}
