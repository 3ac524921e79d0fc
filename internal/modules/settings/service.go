package settings

import (
	"context"
	"strings"

	"github.com/amjooky/carwash-plus-sub001/internal/domain"
	"github.com/amjooky/carwash-plus-sub001/internal/repository"
)

type Service struct {
	settings settingRepo
}

func NewService(settings settingRepo) *Service {
	return &Service{settings: settings}
}

func (s *Service) Create(ctx context.Context, req CreateSettingRequest) (*domain.Setting, error) {
	key := strings.TrimSpace(req.Key)
	if key == "" {
		return nil, ErrInvalidKey
	}

	setting := &domain.Setting{
		Key:      key,
		Value:    req.Value,
		Category: strings.TrimSpace(req.Category),
		IsPublic: req.IsPublic,
	}

	if err := s.settings.Create(ctx, setting); err != nil {
		if repository.IsDuplicate(err) {
			return nil, ErrKeyExists
		}
		return nil, err
	}
	return setting, nil
}

func (s *Service) GetByKey(ctx context.Context, key string) (*domain.Setting, error) {
	return s.settings.GetByKey(ctx, strings.TrimSpace(key))
}

func (s *Service) List(ctx context.Context) ([]domain.Setting, error) {
	return s.settings.List(ctx)
}

func (s *Service) ListPublic(ctx context.Context) ([]domain.Setting, error) {
	return s.settings.ListPublic(ctx)
}

func (s *Service) ListByCategory(ctx context.Context, category string) ([]domain.Setting, error) {
	return s.settings.ListByCategory(ctx, strings.TrimSpace(category))
}

// Update patches an existing key. A missing key is NotFound, never an
// implicit create.
func (s *Service) Update(ctx context.Context, key string, req UpdateSettingRequest) (*domain.Setting, error) {
	updates := map[string]any{}
	if req.Value != nil {
		updates["value"] = *req.Value
	}
	if req.Category != nil {
		updates["category"] = *req.Category
	}
	if req.IsPublic != nil {
		updates["is_public"] = *req.IsPublic
	}
	if len(updates) == 0 {
		return s.settings.GetByKey(ctx, strings.TrimSpace(key))
	}
	return s.settings.UpdateValue(ctx, strings.TrimSpace(key), updates)
}

func (s *Service) Delete(ctx context.Context, key string) error {
	return s.settings.Delete(ctx, strings.TrimSpace(key))
}
