package appointment

import "errors"

var (
	// ErrAppointmentNotFound is returned when no appointment matches the query
	ErrAppointmentNotFound = errors.New("appointment.repository: appointment not found")

	// ErrSlotTaken is returned when the unique slot constraint rejects an insert
	ErrSlotTaken = errors.New("appointment.repository: slot already taken")

	// ErrBuildQuery is returned when the SQL builder fails
	ErrBuildQuery = errors.New("appointment.repository: failed to build query")

	// ErrExecQuery is returned when a statement fails to execute
	ErrExecQuery = errors.New("appointment.repository: failed to execute query")

	// ErrScanRow is returned when a result row cannot be scanned
	ErrScanRow = errors.New("appointment.repository: failed to scan row")
)
