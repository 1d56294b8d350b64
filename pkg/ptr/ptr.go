package ptr

// Ptr returns a pointer to the given value.
// Useful for building optional fields in place.
func Ptr[T any](v T) *T {
	return &v
}
