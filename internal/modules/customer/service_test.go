package customer

import (
	"context"
	"testing"

	"github.com/amjooky/carwash-plus-sub001/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) Create(ctx context.Context, c *domain.Customer) error {
	args := m.Called(ctx, c)
	if c != nil {
		c.ID = 999 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockCustomerRepository) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockCustomerRepository) Update(ctx context.Context, c *domain.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCustomerRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCustomerRepository) List(ctx context.Context, search string, limit, offset int) ([]domain.Customer, int64, error) {
	args := m.Called(ctx, search, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.Customer), args.Get(1).(int64), args.Error(2)
}

func TestCreateCustomer_RequiresContact(t *testing.T) {
	repo := new(MockCustomerRepository)
	svc := NewService(repo)

	_, err := svc.Create(context.Background(), CreateCustomerRequest{
		FirstName: "Alice",
		LastName:  "Romero",
	})

	assert.ErrorIs(t, err, ErrMissingContact)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateCustomer_NormalizesEmail(t *testing.T) {
	repo := new(MockCustomerRepository)
	svc := NewService(repo)

	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Customer")).Return(nil)

	c, err := svc.Create(context.Background(), CreateCustomerRequest{
		FirstName: "Alice",
		LastName:  "Romero",
		Email:     " Alice.Romero@Gmail.COM ",
	})

	assert.NoError(t, err)
	assert.Equal(t, "alice.romero@gmail.com", c.Email)
}

func TestUpdateCustomer_CannotRemoveLastContact(t *testing.T) {
	repo := new(MockCustomerRepository)
	svc := NewService(repo)

	repo.On("GetByID", mock.Anything, int64(1)).Return(&domain.Customer{
		ID:        1,
		FirstName: "Ben",
		LastName:  "Koch",
		Phone:     "+1 555 020 0002",
	}, nil)

	empty := ""
	_, err := svc.Update(context.Background(), 1, UpdateCustomerRequest{Phone: &empty})

	assert.ErrorIs(t, err, ErrMissingContact)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestGetCustomer_NotFound(t *testing.T) {
	repo := new(MockCustomerRepository)
	svc := NewService(repo)

	repo.On("GetByID", mock.Anything, int64(404)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.GetByID(context.Background(), 404)

	assert.ErrorIs(t, err, ErrCustomerNotFound)
}
