package settings

import (
	"context"

	"github.com/amjooky/carwash-plus-sub001/internal/domain"
)

type settingRepo interface {
	Create(ctx context.Context, s *domain.Setting) error
	GetByKey(ctx context.Context, key string) (*domain.Setting, error)
	List(ctx context.Context) ([]domain.Setting, error)
	ListPublic(ctx context.Context) ([]domain.Setting, error)
	ListByCategory(ctx context.Context, category string) ([]domain.Setting, error)
	UpdateValue(ctx context.Context, key string, updates map[string]any) (*domain.Setting, error)
	Delete(ctx context.Context, key string) error
}
