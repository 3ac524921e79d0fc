package auth

import (
	"context"
	"testing"
	"time"

	"github.com/amjooky/carwash-plus-sub001/internal/database"
	"github.com/amjooky/carwash-plus-sub001/internal/domain"
	jwtsvc "github.com/amjooky/carwash-plus-sub001/internal/pkg/jwt"
	"github.com/amjooky/carwash-plus-sub001/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	if u != nil {
		u.ID = 999 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	args := m.Called(ctx, id, passwordHash)
	return args.Error(0)
}

func (m *MockUserRepository) DB() *gorm.DB {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*gorm.DB)
}

type MockJWTService struct {
	mock.Mock
}

func (m *MockJWTService) GenerateToken(userID int64, role string, permissions []string) (string, error) {
	args := m.Called(userID, role, permissions)
	return args.String(0), args.Error(1)
}

func newTestService(users *MockUserRepository, jwt *MockJWTService) *Service {
	return NewService(users, jwt, "test-pepper", 24*time.Hour)
}

func TestRegister_Success(t *testing.T) {
	users := new(MockUserRepository)
	jwt := new(MockJWTService)
	svc := newTestService(users, jwt)

	users.On("ExistsByEmail", mock.Anything, "new@example.com").Return(false, nil)
	users.On("Create", mock.Anything, mock.AnythingOfType("*domain.User")).Return(nil)

	user, err := svc.Register(context.Background(), RegisterRequest{
		Email:    "new@example.com",
		Username: "newbie",
		Password: "password123",
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.RoleUser, user.Role)
	assert.Equal(t, domain.UserActive, user.Status)
	assert.Empty(t, user.PasswordHash)
	users.AssertExpectations(t)
}

func TestRegister_EmailTaken(t *testing.T) {
	users := new(MockUserRepository)
	jwt := new(MockJWTService)
	svc := newTestService(users, jwt)

	users.On("ExistsByEmail", mock.Anything, "taken@example.com").Return(true, nil)

	_, err := svc.Register(context.Background(), RegisterRequest{
		Email:    "taken@example.com",
		Username: "dup",
		Password: "password123",
	})

	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
	users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestLogin_WrongPassword(t *testing.T) {
	users := new(MockUserRepository)
	jwt := new(MockJWTService)
	svc := newTestService(users, jwt)

	hash, _ := bcrypt.GenerateFromPassword([]byte("correct-password"), bcrypt.DefaultCost)
	users.On("GetByEmail", mock.Anything, "user@example.com").Return(&domain.User{
		ID:           1,
		Email:        "user@example.com",
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
		Status:       domain.UserActive,
	}, nil)

	_, err := svc.Login(context.Background(), LoginRequest{
		Email:    "user@example.com",
		Password: "wrong-password",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
	jwt.AssertNotCalled(t, "GenerateToken", mock.Anything, mock.Anything, mock.Anything)
}

func TestLogin_UnknownEmail(t *testing.T) {
	users := new(MockUserRepository)
	jwt := new(MockJWTService)
	svc := newTestService(users, jwt)

	users.On("GetByEmail", mock.Anything, "ghost@example.com").Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Login(context.Background(), LoginRequest{
		Email:    "ghost@example.com",
		Password: "whatever1",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_SuspendedAccount(t *testing.T) {
	users := new(MockUserRepository)
	jwt := new(MockJWTService)
	svc := newTestService(users, jwt)

	hash, _ := bcrypt.GenerateFromPassword([]byte("correct-password"), bcrypt.DefaultCost)
	users.On("GetByEmail", mock.Anything, "frozen@example.com").Return(&domain.User{
		ID:           2,
		Email:        "frozen@example.com",
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
		Status:       domain.UserSuspended,
	}, nil)

	_, err := svc.Login(context.Background(), LoginRequest{
		Email:    "frozen@example.com",
		Password: "correct-password",
	})

	assert.ErrorIs(t, err, ErrAccountInactive)
	jwt.AssertNotCalled(t, "GenerateToken", mock.Anything, mock.Anything, mock.Anything)
}

func TestGetProfile_StripsPasswordHash(t *testing.T) {
	users := new(MockUserRepository)
	jwt := new(MockJWTService)
	svc := newTestService(users, jwt)

	users.On("GetByID", mock.Anything, int64(5)).Return(&domain.User{
		ID:           5,
		Email:        "user@example.com",
		PasswordHash: "$2a$10$something",
	}, nil)

	user, err := svc.GetProfile(context.Background(), 5)

	assert.NoError(t, err)
	assert.Empty(t, user.PasswordHash)
}

func TestChangePassword_WrongCurrent(t *testing.T) {
	users := new(MockUserRepository)
	jwt := new(MockJWTService)
	svc := newTestService(users, jwt)

	hash, _ := bcrypt.GenerateFromPassword([]byte("real-password"), bcrypt.DefaultCost)
	users.On("GetByID", mock.Anything, int64(3)).Return(&domain.User{
		ID:           3,
		PasswordHash: string(hash),
	}, nil)

	err := svc.ChangePassword(context.Background(), 3, ChangePasswordRequest{
		CurrentPassword: "guess",
		NewPassword:     "new-password-1",
	})

	assert.ErrorIs(t, err, ErrWrongCurrentPassword)
	users.AssertNotCalled(t, "UpdatePassword", mock.Anything, mock.Anything, mock.Anything)
}

// Rotation runs inside a transaction; the user lookup has to go through the
// same connection or an in-memory database serves it an empty sibling.
func TestRefreshSession_RotatesOnSingleConnection(t *testing.T) {
	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(repository.Models()...))

	users := repository.NewUserRepository(db)
	svc := NewService(users, jwtsvc.New("rotate-secret", time.Hour), "rotate-pepper", 24*time.Hour)

	hash, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, users.Create(context.Background(), &domain.User{
		Email:        "rotate@example.com",
		Username:     "rotate",
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
		Status:       domain.UserActive,
	}))

	login, err := svc.Login(context.Background(), LoginRequest{Email: "rotate@example.com", Password: "password123"})
	require.NoError(t, err)

	rotated, err := svc.RefreshSession(context.Background(), login.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, rotated.AccessToken)
	assert.NotEqual(t, login.RefreshToken, rotated.RefreshToken)

	// The spent token is burned; replaying it revokes the family.
	_, err = svc.RefreshSession(context.Background(), login.RefreshToken)
	assert.ErrorIs(t, err, ErrRefreshTokenReused)

	// The replay revoked the whole family, including the rotated token.
	_, err = svc.RefreshSession(context.Background(), rotated.RefreshToken)
	assert.ErrorIs(t, err, ErrRefreshTokenReused)
}
