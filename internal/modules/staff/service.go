package staff

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/amjooky/carwash-plus-sub001/internal/domain"

	"gorm.io/gorm"
)

type Service struct {
	staff StaffRepositoryInterface
}

func NewService(staff StaffRepositoryInterface) *Service {
	return &Service{staff: staff}
}

func (s *Service) Create(ctx context.Context, req CreateStaffRequest) (*domain.Staff, error) {
	member := &domain.Staff{
		FirstName: strings.TrimSpace(req.FirstName),
		LastName:  strings.TrimSpace(req.LastName),
		Email:     strings.TrimSpace(strings.ToLower(req.Email)),
		Phone:     strings.TrimSpace(req.Phone),
		Position:  strings.TrimSpace(req.Position),
		Active:    true,
	}

	if err := s.staff.Create(ctx, member); err != nil {
		return nil, fmt.Errorf("save staff failed: %w", err)
	}
	return member, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Staff, error) {
	member, err := s.staff.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStaffNotFound
		}
		return nil, err
	}
	return member, nil
}

func (s *Service) Update(ctx context.Context, id int64, req UpdateStaffRequest) (*domain.Staff, error) {
	member, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.FirstName != nil {
		member.FirstName = strings.TrimSpace(*req.FirstName)
	}
	if req.LastName != nil {
		member.LastName = strings.TrimSpace(*req.LastName)
	}
	if req.Email != nil {
		member.Email = strings.TrimSpace(strings.ToLower(*req.Email))
	}
	if req.Phone != nil {
		member.Phone = strings.TrimSpace(*req.Phone)
	}
	if req.Position != nil {
		member.Position = strings.TrimSpace(*req.Position)
	}
	if req.Active != nil {
		member.Active = *req.Active
	}

	if err := s.staff.Update(ctx, member); err != nil {
		return nil, fmt.Errorf("update staff failed: %w", err)
	}
	return member, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.staff.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrStaffNotFound
		}
		return err
	}
	return nil
}

func (s *Service) List(ctx context.Context, q ListQuery) ([]domain.Staff, int64, error) {
	return s.staff.List(ctx, q.ActiveOnly, q.Limit, q.Offset)
}
