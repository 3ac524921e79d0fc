package activity

import (
	"context"
	"time"

	"github.com/amjooky/carwash-plus-sub001/internal/domain"
	"github.com/amjooky/carwash-plus-sub001/internal/repository"
)

type activityRepo interface {
	Create(ctx context.Context, entry *domain.ActivityLog) error
	GetByID(ctx context.Context, id int64) (*domain.ActivityLog, error)
	List(ctx context.Context, f repository.ActivityFilter) ([]domain.ActivityLog, int64, error)
	Count(ctx context.Context) (int64, error)
	CountByLevel(ctx context.Context) ([]repository.LevelCount, error)
	CountByModule(ctx context.Context) ([]repository.ModuleCount, error)
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}
