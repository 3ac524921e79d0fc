package payment

import (
	"context"

	"github.com/amjooky/carwash-plus-sub001/internal/domain"
	"github.com/amjooky/carwash-plus-sub001/internal/repository"
)

type paymentRepo interface {
	Create(ctx context.Context, p *domain.Payment) error
	GetByID(ctx context.Context, id int64) (*domain.Payment, error)
	GetByBookingID(ctx context.Context, bookingID int64) ([]domain.Payment, error)
	List(ctx context.Context, f repository.PaymentFilter) ([]domain.Payment, int64, error)
	UpdateStatus(ctx context.Context, id int64, status domain.PaymentStatus, transactionID *string) (*domain.Payment, error)
}

type bookingReader interface {
	Exists(ctx context.Context, id int64) (bool, error)
}
