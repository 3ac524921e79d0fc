package repository

import (
	"context"

	"github.com/amjooky/carwash-plus-sub001/internal/domain"

	"gorm.io/gorm"
)

type SettingRepository struct {
	db *gorm.DB
}

func NewSettingRepository(db *gorm.DB) *SettingRepository {
	return &SettingRepository{db: db}
}

func (r *SettingRepository) Create(ctx context.Context, s *domain.Setting) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *SettingRepository) GetByKey(ctx context.Context, key string) (*domain.Setting, error) {
	var s domain.Setting
	if err := r.db.WithContext(ctx).Where("key = ?", key).First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SettingRepository) List(ctx context.Context) ([]domain.Setting, error) {
	var rows []domain.Setting
	err := r.db.WithContext(ctx).Order("category, key").Find(&rows).Error
	return rows, err
}

func (r *SettingRepository) ListPublic(ctx context.Context) ([]domain.Setting, error) {
	var rows []domain.Setting
	err := r.db.WithContext(ctx).
		Where("is_public = ?", true).
		Order("category, key").
		Find(&rows).Error
	return rows, err
}

func (r *SettingRepository) ListByCategory(ctx context.Context, category string) ([]domain.Setting, error) {
	var rows []domain.Setting
	err := r.db.WithContext(ctx).
		Where("category = ?", category).
		Order("key").
		Find(&rows).Error
	return rows, err
}

func (r *SettingRepository) UpdateValue(ctx context.Context, key string, updates map[string]any) (*domain.Setting, error) {
	tx := r.db.WithContext(ctx).Model(&domain.Setting{}).
		Where("key = ?", key).
		Updates(updates)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByKey(ctx, key)
}

func (r *SettingRepository) Delete(ctx context.Context, key string) error {
	tx := r.db.WithContext(ctx).Where("key = ?", key).Delete(&domain.Setting{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
