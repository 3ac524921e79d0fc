package customer

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/amjooky/carwash-plus-sub001/internal/domain"

	"gorm.io/gorm"
)

type Service struct {
	customers CustomerRepositoryInterface
}

func NewService(customers CustomerRepositoryInterface) *Service {
	return &Service{customers: customers}
}

// Create stores a new customer. At least one contact channel is required so
// the booking desk can always reach them.
func (s *Service) Create(ctx context.Context, req CreateCustomerRequest) (*domain.Customer, error) {
	email := strings.TrimSpace(strings.ToLower(req.Email))
	phone := strings.TrimSpace(req.Phone)
	if email == "" && phone == "" {
		return nil, ErrMissingContact
	}

	c := &domain.Customer{
		FirstName: strings.TrimSpace(req.FirstName),
		LastName:  strings.TrimSpace(req.LastName),
		Email:     email,
		Phone:     phone,
	}

	if err := s.customers.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("save customer failed: %w", err)
	}
	return c, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	c, err := s.customers.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}
	return c, nil
}

func (s *Service) Update(ctx context.Context, id int64, req UpdateCustomerRequest) (*domain.Customer, error) {
	c, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.FirstName != nil {
		c.FirstName = strings.TrimSpace(*req.FirstName)
	}
	if req.LastName != nil {
		c.LastName = strings.TrimSpace(*req.LastName)
	}
	if req.Email != nil {
		c.Email = strings.TrimSpace(strings.ToLower(*req.Email))
	}
	if req.Phone != nil {
		c.Phone = strings.TrimSpace(*req.Phone)
	}

	if c.Email == "" && c.Phone == "" {
		return nil, ErrMissingContact
	}

	if err := s.customers.Update(ctx, c); err != nil {
		return nil, fmt.Errorf("update customer failed: %w", err)
	}
	return c, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.customers.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCustomerNotFound
		}
		return err
	}
	return nil
}

func (s *Service) List(ctx context.Context, q ListQuery) ([]domain.Customer, int64, error) {
	return s.customers.List(ctx, q.Search, q.Limit, q.Offset)
}
