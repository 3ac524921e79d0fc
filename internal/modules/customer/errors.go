package customer

import "errors"

var (
	ErrCustomerNotFound = errors.New("customer not found")
	ErrMissingContact   = errors.New("customer needs an email or phone")
)
