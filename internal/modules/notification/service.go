package notification

import (
	"context"
	"log"

	"github.com/amjooky/carwash-plus-sub001/internal/domain"
)

type Service struct {
	notifications notificationRepo
	hub           *Hub
}

// NewService wires storage and the optional live stream hub; hub may be nil
// in tests and one-shot tools.
func NewService(notifications notificationRepo, hub *Hub) *Service {
	return &Service{notifications: notifications, hub: hub}
}

func (s *Service) Create(ctx context.Context, req CreateNotificationRequest) (*domain.Notification, error) {
	notifType := domain.NotificationType(req.Type)
	if !domain.ValidNotificationType(notifType) {
		return nil, ErrInvalidType
	}

	n := &domain.Notification{
		UserID:    req.UserID,
		Type:      notifType,
		Title:     req.Title,
		Message:   req.Message,
		Data:      req.Data,
		BookingID: req.BookingID,
	}

	if err := s.notifications.Create(ctx, n); err != nil {
		return nil, err
	}

	s.push(n)
	return n, nil
}

// Broadcast fans a system notice out to every active user.
func (s *Service) Broadcast(ctx context.Context, req BroadcastRequest) (int64, error) {
	ids, err := s.notifications.AllUserIDs(ctx)
	if err != nil {
		return 0, err
	}

	template := domain.Notification{
		Type:    domain.NotifBroadcast,
		Title:   req.Title,
		Message: req.Message,
	}

	created, err := s.notifications.CreateForUsers(ctx, ids, template)
	if err != nil {
		return 0, err
	}

	if s.hub != nil {
		for _, id := range ids {
			n := template
			n.UserID = id
			s.hub.SendToUser(id, &n)
		}
	}

	log.Printf("level=info msg=broadcast sent recipients=%d", created)
	return created, nil
}

func (s *Service) GetUserNotifications(ctx context.Context, userID int64, limit int) ([]domain.Notification, int64, error) {
	list, err := s.notifications.GetByUserID(ctx, userID, limit)
	if err != nil {
		return nil, 0, err
	}
	unread, err := s.notifications.CountUnread(ctx, userID)
	if err != nil {
		return nil, 0, err
	}
	return list, unread, nil
}

func (s *Service) MarkRead(ctx context.Context, id, userID int64, isRead bool) error {
	return s.notifications.MarkRead(ctx, id, userID, isRead)
}

func (s *Service) MarkAllRead(ctx context.Context, userID int64) (int64, error) {
	return s.notifications.MarkAllRead(ctx, userID)
}

func (s *Service) Delete(ctx context.Context, id, userID int64) error {
	return s.notifications.Delete(ctx, id, userID)
}

func (s *Service) push(n *domain.Notification) {
	if s.hub == nil {
		return
	}
	s.hub.SendToUser(n.UserID, n)
}
