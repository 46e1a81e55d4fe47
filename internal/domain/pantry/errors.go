package pantry

import "errors"

// Domain errors for pantry operations

var (
	// Entity validation errors
	ErrEmptyProductName = errors.New("lot product name is required")
	ErrEmptyUnit        = errors.New("lot unit is required")
	ErrNegativeQuantity = errors.New("lot quantity cannot be negative")

	// Stock mutation errors
	ErrInvalidDeduction     = errors.New("deduction amount must be greater than zero")
	ErrInvalidRestock       = errors.New("restock amount must be greater than zero")
	ErrInsufficientQuantity = errors.New("deduction would drive lot quantity negative")

	// Repository errors
	ErrLotNotFound = errors.New("pantry lot not found")
)
