package user

import (
	"context"
	"strings"

	"github.com/amjooky/carwash-plus-sub001/internal/domain"
	"github.com/amjooky/carwash-plus-sub001/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

type Service struct {
	users UserRepositoryInterface
}

func NewService(users UserRepositoryInterface) *Service {
	return &Service{users: users}
}

// Create provisions a user. Admin accounts can only be created by a
// super admin; the role defaults to USER when absent.
func (s *Service) Create(ctx context.Context, actorRole domain.UserRole, req CreateUserRequest) (*domain.User, error) {
	role := domain.RoleUser
	if req.Role != "" {
		role = domain.UserRole(req.Role)
		if !domain.ValidUserRole(role) {
			return nil, ErrInvalidRole
		}
	}
	if role != domain.RoleUser && actorRole != domain.RoleSuperAdmin {
		return nil, ErrElevationDenied
	}

	exists, err := s.users.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := &domain.User{
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		Username:     strings.TrimSpace(req.Username),
		PasswordHash: string(hash),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Phone:        req.Phone,
		Role:         role,
		Status:       domain.UserActive,
	}

	if err := s.users.Create(ctx, u); err != nil {
		if repository.IsDuplicate(err) {
			return nil, ErrEmailAlreadyExists
		}
		return nil, err
	}

	u.PasswordHash = ""
	return u, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	u.PasswordHash = ""
	return u, nil
}

func (s *Service) List(ctx context.Context, q ListQuery) ([]domain.User, int64, error) {
	return s.users.List(ctx, repository.UserFilter{
		Role:   q.Role,
		Status: q.Status,
		Search: q.Search,
		Limit:  q.Limit,
		Offset: q.Offset,
	})
}

func (s *Service) Update(ctx context.Context, actorRole domain.UserRole, id int64, req UpdateUserRequest) (*domain.User, error) {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Touching an admin account, or granting an elevated role, is a
	// super-admin-only operation.
	if u.Role != domain.RoleUser && actorRole != domain.RoleSuperAdmin {
		return nil, ErrElevationDenied
	}

	if req.Username != "" {
		u.Username = strings.TrimSpace(req.Username)
	}
	if req.FirstName != "" {
		u.FirstName = req.FirstName
	}
	if req.LastName != "" {
		u.LastName = req.LastName
	}
	if req.Phone != "" {
		u.Phone = req.Phone
	}
	if req.Role != "" {
		role := domain.UserRole(req.Role)
		if !domain.ValidUserRole(role) {
			return nil, ErrInvalidRole
		}
		if role != domain.RoleUser && actorRole != domain.RoleSuperAdmin {
			return nil, ErrElevationDenied
		}
		u.Role = role
	}

	if err := s.users.Update(ctx, u); err != nil {
		return nil, err
	}

	u.PasswordHash = ""
	return u, nil
}

func (s *Service) UpdateStatus(ctx context.Context, actorRole domain.UserRole, id int64, status string) (*domain.User, error) {
	st := domain.UserStatus(status)
	if !domain.ValidUserStatus(st) {
		return nil, ErrInvalidStatus
	}

	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u.Role != domain.RoleUser && actorRole != domain.RoleSuperAdmin {
		return nil, ErrElevationDenied
	}

	if err := s.users.UpdateStatus(ctx, id, st); err != nil {
		return nil, err
	}
	u.Status = st
	u.PasswordHash = ""
	return u, nil
}

func (s *Service) Delete(ctx context.Context, actorRole domain.UserRole, id int64) error {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if u.Role != domain.RoleUser && actorRole != domain.RoleSuperAdmin {
		return ErrElevationDenied
	}
	return s.users.Delete(ctx, id)
}
