package domain

import "time"

type BookingStatus string

const (
	BookingScheduled BookingStatus = "SCHEDULED"
	BookingCompleted BookingStatus = "COMPLETED"
	BookingCancelled BookingStatus = "CANCELLED"
)

// Booking is the wash appointment payments and notifications hang off of.
type Booking struct {
	ID          int64         `json:"id"`
	CustomerID  int64         `json:"customer_id"`
	ServiceName string        `json:"service_name"`
	ScheduledAt time.Time     `json:"scheduled_at"`
	Status      BookingStatus `json:"status"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}
