package notification

import (
	"context"

	"github.com/amjooky/carwash-plus-sub001/internal/domain"
)

type notificationRepo interface {
	Create(ctx context.Context, n *domain.Notification) error
	CreateForUsers(ctx context.Context, userIDs []int64, template domain.Notification) (int64, error)
	GetByUserID(ctx context.Context, userID int64, limit int) ([]domain.Notification, error)
	CountUnread(ctx context.Context, userID int64) (int64, error)
	MarkRead(ctx context.Context, id, userID int64, isRead bool) error
	MarkAllRead(ctx context.Context, userID int64) (int64, error)
	Delete(ctx context.Context, id, userID int64) error
	AllUserIDs(ctx context.Context) ([]int64, error)
}
