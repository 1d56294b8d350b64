package appointments

import "errors"

var (
	// ErrAppointmentNotFound is returned when the appointment does not exist
	ErrAppointmentNotFound = errors.New("appointment not found")

	// ErrBarberNotFound is returned when the barber profile does not exist
	ErrBarberNotFound = errors.New("barber not found")

	// ErrAccessDenied is returned when the caller may not touch the appointment
	ErrAccessDenied = errors.New("access denied")

	// ErrCannotCancel is returned for appointments already cancelled
	ErrCannotCancel = errors.New("appointment cannot be cancelled")

	// ErrInvalidTransition is returned for status changes the state machine forbids
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrInvalidInput is returned when the request fails validation
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on unexpected failures
	ErrInternal = errors.New("service: internal error")
)
