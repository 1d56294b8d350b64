package create_appointment

import "errors"

var (
	// ErrBarberNotFound is returned when the barber does not exist or is inactive
	ErrBarberNotFound = errors.New("create_appointment: barber not found")

	// ErrServiceNotFound is returned when the service does not exist or belongs to another barber
	ErrServiceNotFound = errors.New("create_appointment: service not found")

	// ErrDayClosed is returned when the barber is closed on the requested date
	ErrDayClosed = errors.New("create_appointment: barber is closed on this date")

	// ErrInvalidDate is returned for past dates
	ErrInvalidDate = errors.New("create_appointment: invalid appointment date")

	// ErrInvalidTimeSlot is returned when the time is outside the working grid
	ErrInvalidTimeSlot = errors.New("create_appointment: invalid time slot")

	// ErrSlotNotAvailable is returned when the slot is lunch, blocked or too soon
	ErrSlotNotAvailable = errors.New("create_appointment: slot is not available")

	// ErrSlotTaken is returned when another active appointment occupies the slot
	ErrSlotTaken = errors.New("create_appointment: slot already taken")

	// ErrTooManyAppointments is returned when the client hit the active appointment limit
	ErrTooManyAppointments = errors.New("create_appointment: too many active appointments")

	// ErrMaintenance is returned while the shop is in maintenance mode
	ErrMaintenance = errors.New("create_appointment: shop is under maintenance")

	// ErrInvalidInput is returned when the request fails validation
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrInternal is returned on unexpected failures
	ErrInternal = errors.New("create_appointment: internal error")
)
