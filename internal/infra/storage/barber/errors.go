package barber

import "errors"

var (
	// ErrBarberNotFound is returned when no barber matches the query
	ErrBarberNotFound = errors.New("barber.repository: barber not found")

	// ErrBuildQuery is returned when the SQL builder fails
	ErrBuildQuery = errors.New("barber.repository: failed to build query")

	// ErrExecQuery is returned when a statement fails to execute
	ErrExecQuery = errors.New("barber.repository: failed to execute query")

	// ErrScanRow is returned when a result row cannot be scanned
	ErrScanRow = errors.New("barber.repository: failed to scan row")
)
