package catalog

import "errors"

var (
	// ErrServiceNotFound is returned when the service does not exist
	ErrServiceNotFound = errors.New("service not found")

	// ErrBarberNotFound is returned when the barber profile does not exist
	ErrBarberNotFound = errors.New("barber not found")

	// ErrAccessDenied is returned when the caller may not edit the catalog
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidComponent is returned when a combo references a bad component
	ErrInvalidComponent = errors.New("invalid combo component")

	// ErrInvalidInput is returned when the request fails validation
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on unexpected failures
	ErrInternal = errors.New("service: internal error")
)
