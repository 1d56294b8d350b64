package expire_appointments

import "errors"

var (
	// ErrInternal is returned on unexpected failures
	ErrInternal = errors.New("expire_appointments: internal error")
)
