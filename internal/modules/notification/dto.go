package notification

type CreateNotificationRequest struct {
	UserID    int64  `json:"user_id" binding:"required"`
	Type      string `json:"type" binding:"required"`
	Title     string `json:"title" binding:"required"`
	Message   string `json:"message" binding:"required"`
	Data      any    `json:"data"`
	BookingID *int64 `json:"booking_id"`
}

type BroadcastRequest struct {
	Title   string `json:"title" binding:"required"`
	Message string `json:"message" binding:"required"`
}

type MarkReadRequest struct {
	IsRead bool `json:"is_read"`
}
