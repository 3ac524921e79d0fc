package customer

import (
	"context"

	"github.com/amjooky/carwash-plus-sub001/internal/domain"
)

type CustomerRepositoryInterface interface {
	Create(ctx context.Context, c *domain.Customer) error
	GetByID(ctx context.Context, id int64) (*domain.Customer, error)
	Update(ctx context.Context, c *domain.Customer) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, search string, limit, offset int) ([]domain.Customer, int64, error)
}
