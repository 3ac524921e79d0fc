package domain

import "time"

type NotificationType string

const (
	NotifBookingCreated   NotificationType = "booking_created"
	NotifBookingReminder  NotificationType = "booking_reminder"
	NotifBookingCancelled NotificationType = "booking_cancelled"
	NotifPaymentReceived  NotificationType = "payment_received"
	NotifPaymentFailed    NotificationType = "payment_failed"
	NotifSystem           NotificationType = "system"
	NotifBroadcast        NotificationType = "broadcast"
)

func ValidNotificationType(t NotificationType) bool {
	switch t {
	case NotifBookingCreated, NotifBookingReminder, NotifBookingCancelled,
		NotifPaymentReceived, NotifPaymentFailed, NotifSystem, NotifBroadcast:
		return true
	}
	return false
}

type Notification struct {
	ID        int64            `json:"id"`
	UserID    int64            `json:"user_id"`
	Type      NotificationType `json:"type"`
	Title     string           `json:"title"`
	Message   string           `json:"message,omitempty"`
	IsRead    bool             `json:"is_read"`
	Data      any              `json:"data,omitempty" gorm:"serializer:json"`
	BookingID *int64           `json:"booking_id,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
}
