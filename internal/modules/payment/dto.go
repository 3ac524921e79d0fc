package payment

import (
	"strings"
	"time"

	"github.com/amjooky/carwash-plus-sub001/internal/domain"
)

type CreatePaymentRequest struct {
	BookingID         int64    `json:"booking_id" binding:"required"`
	Amount            *float64 `json:"amount" binding:"omitempty,gt=0"`
	Currency          string   `json:"currency"`
	PaymentMethodType string   `json:"payment_method_type"`
	Description       string   `json:"description"`
}

type UpdateStatusRequest struct {
	Status        string  `json:"status" binding:"required"`
	TransactionID *string `json:"transaction_id"`
}

type ListQuery struct {
	Status string `form:"status"`
	Method string `form:"method"`
	Limit  int    `form:"limit"`
	Offset int    `form:"offset"`
}

// PaymentResponse is the public shape of a stored payment. Internal field
// names are hidden (method → payment_method), the stored lowercase currency
// is reported uppercased, and an absent transaction id becomes "".
type PaymentResponse struct {
	ID            int64   `json:"id"`
	BookingID     int64   `json:"booking_id"`
	Amount        float64 `json:"amount"`
	Currency      string  `json:"currency"`
	Status        string  `json:"status"`
	PaymentMethod string  `json:"payment_method"`
	TransactionID string  `json:"transaction_id"`
	CreatedAt     string  `json:"created_at"`
	UpdatedAt     string  `json:"updated_at"`
}

// ToPaymentResponse is pure and total: the same record always maps to the
// same response.
func ToPaymentResponse(p *domain.Payment) PaymentResponse {
	txID := ""
	if p.TransactionID != nil {
		txID = *p.TransactionID
	}
	return PaymentResponse{
		ID:            p.ID,
		BookingID:     p.BookingID,
		Amount:        p.Amount,
		Currency:      strings.ToUpper(p.Currency),
		Status:        string(p.Status),
		PaymentMethod: string(p.Method),
		TransactionID: txID,
		CreatedAt:     p.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:     p.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
