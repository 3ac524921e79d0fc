package notification

import (
	"context"
	"testing"

	"github.com/amjooky/carwash-plus-sub001/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockNotificationRepository struct {
	mock.Mock
}

func (m *MockNotificationRepository) Create(ctx context.Context, n *domain.Notification) error {
	args := m.Called(ctx, n)
	if n != nil {
		n.ID = 999 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockNotificationRepository) CreateForUsers(ctx context.Context, userIDs []int64, template domain.Notification) (int64, error) {
	args := m.Called(ctx, userIDs, template)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockNotificationRepository) GetByUserID(ctx context.Context, userID int64, limit int) ([]domain.Notification, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Notification), args.Error(1)
}

func (m *MockNotificationRepository) CountUnread(ctx context.Context, userID int64) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockNotificationRepository) MarkRead(ctx context.Context, id, userID int64, isRead bool) error {
	args := m.Called(ctx, id, userID, isRead)
	return args.Error(0)
}

func (m *MockNotificationRepository) MarkAllRead(ctx context.Context, userID int64) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockNotificationRepository) Delete(ctx context.Context, id, userID int64) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}

func (m *MockNotificationRepository) AllUserIDs(ctx context.Context) ([]int64, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

func TestCreateNotification_InvalidType(t *testing.T) {
	repo := new(MockNotificationRepository)
	svc := NewService(repo, nil)

	_, err := svc.Create(context.Background(), CreateNotificationRequest{
		UserID:  1,
		Type:    "carrier_pigeon",
		Title:   "Hello",
		Message: "World",
	})

	assert.ErrorIs(t, err, ErrInvalidType)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateNotification_Success(t *testing.T) {
	repo := new(MockNotificationRepository)
	svc := NewService(repo, nil)

	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Notification")).Return(nil)

	n, err := svc.Create(context.Background(), CreateNotificationRequest{
		UserID:  1,
		Type:    "payment_received",
		Title:   "Payment received",
		Message: "Your payment went through",
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.NotifPaymentReceived, n.Type)
	assert.False(t, n.IsRead)
	repo.AssertExpectations(t)
}

func TestBroadcast_FansOutToActiveUsers(t *testing.T) {
	repo := new(MockNotificationRepository)
	svc := NewService(repo, nil)

	ids := []int64{1, 2, 3}
	repo.On("AllUserIDs", mock.Anything).Return(ids, nil)
	repo.On("CreateForUsers", mock.Anything, ids, mock.AnythingOfType("domain.Notification")).
		Return(int64(3), nil)

	created, err := svc.Broadcast(context.Background(), BroadcastRequest{
		Title:   "Maintenance",
		Message: "Down at midnight",
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(3), created)
	repo.AssertExpectations(t)
}

func TestGetUserNotifications_ReturnsUnreadCount(t *testing.T) {
	repo := new(MockNotificationRepository)
	svc := NewService(repo, nil)

	repo.On("GetByUserID", mock.Anything, int64(4), 20).Return([]domain.Notification{
		{ID: 1, UserID: 4, Title: "a"},
		{ID: 2, UserID: 4, Title: "b", IsRead: true},
	}, nil)
	repo.On("CountUnread", mock.Anything, int64(4)).Return(int64(1), nil)

	list, unread, err := svc.GetUserNotifications(context.Background(), 4, 20)

	assert.NoError(t, err)
	assert.Len(t, list, 2)
	assert.Equal(t, int64(1), unread)
}

func TestHub_RegisterReplacesConnection(t *testing.T) {
	hub := NewHub()
	defer hub.Close()

	assert.Equal(t, 0, hub.OnlineCount())

	// Nothing registered, sending is a no-op.
	delivered := hub.SendToUser(1, &domain.Notification{Title: "dropped"})
	assert.False(t, delivered)
}
