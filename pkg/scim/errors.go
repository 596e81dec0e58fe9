package scim

import "fmt"

// NotFoundError is returned when an exact-match fetch finds no row.
type NotFoundError struct {
	Resource string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Resource)
}

// ValidationError is returned for malformed client input, e.g. a
// non-numeric pagination parameter. Surfaced as a 400, not silently
// coerced.
type ValidationError struct {
	Param string
	Value string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invalid value for %s: %q", e.Param, e.Value)
}
