package get_available_slots

import "errors"

var (
	// ErrBarberNotFound is returned when the barber does not exist or is inactive
	ErrBarberNotFound = errors.New("barber not found")

	// ErrInvalidInput is returned when the request fails validation
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on unexpected failures
	ErrInternal = errors.New("usecase: internal error")
)
