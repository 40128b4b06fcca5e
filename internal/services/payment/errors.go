package payment

import "errors"

var (
	ErrInvalidAmount  = errors.New("amount must be greater than zero")
	ErrMissingProduct = errors.New("product id is required")
)
