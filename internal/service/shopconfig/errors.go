package shopconfig

import "errors"

var (
	// ErrAccessDenied is returned when the caller lacks the admin role
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidInput is returned when the request fails validation
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on unexpected failures
	ErrInternal = errors.New("service: internal error")
)
