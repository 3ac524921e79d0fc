package activity

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/amjooky/carwash-plus-sub001/internal/domain"
	"github.com/amjooky/carwash-plus-sub001/internal/repository"
)

var ErrInvalidRetention = errors.New("retention days must be positive")

type Service struct {
	logs activityRepo
}

func NewService(logs activityRepo) *Service {
	return &Service{logs: logs}
}

// Record appends an entry. Failures are logged and swallowed so activity
// recording never breaks the business operation it annotates.
func (s *Service) Record(ctx context.Context, level domain.LogLevel, action, module string, userID *int64, metadata string) {
	entry := &domain.ActivityLog{
		Level:    level,
		Action:   action,
		Module:   module,
		UserID:   userID,
		Metadata: metadata,
	}
	if err := s.logs.Create(ctx, entry); err != nil {
		log.Printf("level=error msg=activity record failed action=%s module=%s err=%v", action, module, err)
	}
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.ActivityLog, error) {
	return s.logs.GetByID(ctx, id)
}

type ListQuery struct {
	Level  string `form:"level"`
	Module string `form:"module"`
	UserID int64  `form:"user_id"`
	Limit  int    `form:"limit"`
	Offset int    `form:"offset"`
}

func (s *Service) List(ctx context.Context, q ListQuery) ([]domain.ActivityLog, int64, error) {
	return s.logs.List(ctx, repository.ActivityFilter{
		Level:  q.Level,
		Module: q.Module,
		UserID: q.UserID,
		Limit:  q.Limit,
		Offset: q.Offset,
	})
}

type Stats struct {
	Total    int64                    `json:"total"`
	ByLevel  []repository.LevelCount  `json:"by_level"`
	ByModule []repository.ModuleCount `json:"by_module"`
}

func (s *Service) Stats(ctx context.Context) (*Stats, error) {
	total, err := s.logs.Count(ctx)
	if err != nil {
		return nil, err
	}
	byLevel, err := s.logs.CountByLevel(ctx)
	if err != nil {
		return nil, err
	}
	byModule, err := s.logs.CountByModule(ctx)
	if err != nil {
		return nil, err
	}
	return &Stats{Total: total, ByLevel: byLevel, ByModule: byModule}, nil
}

// PruneOlderThan deletes entries past the retention window.
func (s *Service) PruneOlderThan(ctx context.Context, days int) (int64, error) {
	if days <= 0 {
		return 0, ErrInvalidRetention
	}
	cutoff := time.Now().AddDate(0, 0, -days)
	deleted, err := s.logs.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		return 0, err
	}
	log.Printf("level=info msg=activity logs pruned days=%d deleted=%d", days, deleted)
	return deleted, nil
}
