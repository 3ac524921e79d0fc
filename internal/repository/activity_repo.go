package repository

import (
	"context"
	"time"

	"github.com/amjooky/carwash-plus-sub001/internal/domain"

	"gorm.io/gorm"
)

type ActivityRepository struct {
	db *gorm.DB
}

func NewActivityRepository(db *gorm.DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

func (r *ActivityRepository) Create(ctx context.Context, entry *domain.ActivityLog) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *ActivityRepository) GetByID(ctx context.Context, id int64) (*domain.ActivityLog, error) {
	var entry domain.ActivityLog
	if err := r.db.WithContext(ctx).First(&entry, id).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

// ActivityFilter narrows List; zero values mean "no filter".
type ActivityFilter struct {
	Level  string
	Module string
	UserID int64
	Limit  int
	Offset int
}

func (r *ActivityRepository) List(ctx context.Context, f ActivityFilter) ([]domain.ActivityLog, int64, error) {
	q := r.db.WithContext(ctx).Model(&domain.ActivityLog{})
	if f.Level != "" {
		q = q.Where("level = ?", f.Level)
	}
	if f.Module != "" {
		q = q.Where("module = ?", f.Module)
	}
	if f.UserID != 0 {
		q = q.Where("user_id = ?", f.UserID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	limit := f.Limit
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	var rows []domain.ActivityLog
	if err := q.Order("created_at DESC").Limit(limit).Offset(f.Offset).Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

// LevelCount is a per-level aggregate row for stats.
type LevelCount struct {
	Level string `json:"level"`
	Count int64  `json:"count"`
}

func (r *ActivityRepository) CountByLevel(ctx context.Context) ([]LevelCount, error) {
	var rows []LevelCount
	err := r.db.WithContext(ctx).Model(&domain.ActivityLog{}).
		Select("level, COUNT(*) as count").
		Group("level").
		Scan(&rows).Error
	return rows, err
}

type ModuleCount struct {
	Module string `json:"module"`
	Count  int64  `json:"count"`
}

func (r *ActivityRepository) CountByModule(ctx context.Context) ([]ModuleCount, error) {
	var rows []ModuleCount
	err := r.db.WithContext(ctx).Model(&domain.ActivityLog{}).
		Select("module, COUNT(*) as count").
		Group("module").
		Scan(&rows).Error
	return rows, err
}

func (r *ActivityRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.ActivityLog{}).Count(&count).Error
	return count, err
}

// DeleteOlderThan prunes entries older than the cutoff and reports how many
// rows went away.
func (r *ActivityRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	tx := r.db.WithContext(ctx).
		Where("created_at < ?", cutoff).
		Delete(&domain.ActivityLog{})
	return tx.RowsAffected, tx.Error
}

func (r *ActivityRepository) Recent(ctx context.Context, limit int) ([]domain.ActivityLog, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	var rows []domain.ActivityLog
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&rows).Error
	return rows, err
}
