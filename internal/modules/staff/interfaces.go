package staff

import (
	"context"

	"github.com/amjooky/carwash-plus-sub001/internal/domain"
)

type StaffRepositoryInterface interface {
	Create(ctx context.Context, s *domain.Staff) error
	GetByID(ctx context.Context, id int64) (*domain.Staff, error)
	Update(ctx context.Context, s *domain.Staff) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, activeOnly bool, limit, offset int) ([]domain.Staff, int64, error)
}
