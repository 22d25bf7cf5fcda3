package wallet

import "errors"

// Service errors
var (
	ErrInvalidAmount    = errors.New("invalid amount")
	ErrCustomerNotFound = errors.New("customer not found")
	ErrCreateFailed     = errors.New("failed to create transaction")
)
