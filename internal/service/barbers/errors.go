package barbers

import "errors"

var (
	// ErrUserNotFound is returned when the account does not exist
	ErrUserNotFound = errors.New("user not found")

	// ErrBarberNotFound is returned when the barber profile does not exist
	ErrBarberNotFound = errors.New("barber not found")

	// ErrAccessDenied is returned when the caller lacks the admin role
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidInput is returned when the request fails validation
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on unexpected failures
	ErrInternal = errors.New("service: internal error")
)
