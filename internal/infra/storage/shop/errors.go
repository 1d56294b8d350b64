package shop

import "errors"

var (
	// ErrConfigNotFound is returned when the singleton row does not exist yet
	ErrConfigNotFound = errors.New("shop.repository: config not found")

	// ErrBuildQuery is returned when the SQL builder fails
	ErrBuildQuery = errors.New("shop.repository: failed to build query")

	// ErrExecQuery is returned when a statement fails to execute
	ErrExecQuery = errors.New("shop.repository: failed to execute query")

	// ErrScanRow is returned when a result row cannot be scanned
	ErrScanRow = errors.New("shop.repository: failed to scan row")
)
