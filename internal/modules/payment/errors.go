package payment

import "errors"

var (
	ErrBookingNotFound = errors.New("booking not found")
	ErrInvalidMethod   = errors.New("invalid payment method")
	ErrInvalidStatus   = errors.New("invalid payment status")
	ErrInvalidAmount   = errors.New("amount must be positive")
)
