package override

import "errors"

var (
	// ErrOverrideNotFound is returned when no override exists for the date
	ErrOverrideNotFound = errors.New("override.repository: override not found")

	// ErrBuildQuery is returned when the SQL builder fails
	ErrBuildQuery = errors.New("override.repository: failed to build query")

	// ErrExecQuery is returned when a statement fails to execute
	ErrExecQuery = errors.New("override.repository: failed to execute query")

	// ErrScanRow is returned when a result row cannot be scanned
	ErrScanRow = errors.New("override.repository: failed to scan row")
)
