package catalog

import "errors"

var (
	// ErrServiceNotFound is returned when no service matches the query
	ErrServiceNotFound = errors.New("catalog.repository: service not found")

	// ErrBuildQuery is returned when the SQL builder fails
	ErrBuildQuery = errors.New("catalog.repository: failed to build query")

	// ErrExecQuery is returned when a statement fails to execute
	ErrExecQuery = errors.New("catalog.repository: failed to execute query")

	// ErrScanRow is returned when a result row cannot be scanned
	ErrScanRow = errors.New("catalog.repository: failed to scan row")
)
