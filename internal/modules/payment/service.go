package payment

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/amjooky/carwash-plus-sub001/internal/domain"
	"github.com/amjooky/carwash-plus-sub001/internal/repository"
)

type Service struct {
	payments paymentRepo
	bookings bookingReader
	loggerf  func(format string, args ...interface{})
}

func NewService(payments paymentRepo, bookings bookingReader, loggerf func(format string, args ...interface{})) *Service {
	if loggerf == nil {
		loggerf = log.Printf
	}
	return &Service{
		payments: payments,
		bookings: bookings,
		loggerf:  loggerf,
	}
}

// Create records a payment for an existing booking. Currency defaults to
// "usd" and the method to CARD; the status starts PENDING and is owned by
// the processor integration from then on.
func (s *Service) Create(ctx context.Context, req CreatePaymentRequest) (*domain.Payment, error) {
	exists, err := s.bookings.Exists(ctx, req.BookingID)
	if err != nil {
		return nil, fmt.Errorf("booking check failed: %w", err)
	}
	if !exists {
		return nil, ErrBookingNotFound
	}

	var amount float64
	if req.Amount != nil {
		if *req.Amount <= 0 {
			return nil, ErrInvalidAmount
		}
		amount = *req.Amount
	}

	currency := strings.ToLower(strings.TrimSpace(req.Currency))
	if currency == "" {
		currency = domain.DefaultCurrency
	}

	method := domain.MethodCard
	if req.PaymentMethodType != "" {
		method = domain.PaymentMethod(strings.ToUpper(strings.TrimSpace(req.PaymentMethodType)))
		if !domain.ValidPaymentMethod(method) {
			return nil, ErrInvalidMethod
		}
	}

	p := &domain.Payment{
		BookingID:   req.BookingID,
		Amount:      amount,
		Currency:    currency,
		Status:      domain.PaymentPending,
		Method:      method,
		Description: req.Description,
	}

	if err := s.payments.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("save payment failed: %w", err)
	}

	s.loggerf("level=info msg=payment created payment_id=%d booking_id=%d amount=%.2f currency=%s method=%s",
		p.ID, p.BookingID, p.Amount, p.Currency, p.Method)
	return p, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Payment, error) {
	return s.payments.GetByID(ctx, id)
}

func (s *Service) GetByBookingID(ctx context.Context, bookingID int64) ([]domain.Payment, error) {
	return s.payments.GetByBookingID(ctx, bookingID)
}

func (s *Service) List(ctx context.Context, q ListQuery) ([]domain.Payment, int64, error) {
	return s.payments.List(ctx, repository.PaymentFilter{
		Status: q.Status,
		Method: q.Method,
		Limit:  q.Limit,
		Offset: q.Offset,
	})
}

// UpdateStatus applies a processor-reported transition. No state machine is
// enforced beyond enum membership; the processor owns the lifecycle.
func (s *Service) UpdateStatus(ctx context.Context, id int64, req UpdateStatusRequest) (*domain.Payment, error) {
	status := domain.PaymentStatus(strings.ToUpper(strings.TrimSpace(req.Status)))
	if !domain.ValidPaymentStatus(status) {
		return nil, ErrInvalidStatus
	}

	p, err := s.payments.UpdateStatus(ctx, id, status, req.TransactionID)
	if err != nil {
		return nil, err
	}

	s.loggerf("level=info msg=payment status updated payment_id=%d status=%s", p.ID, p.Status)
	return p, nil
}
