// pkg/classify/errors.go
package classify

import "errors"

var (
	// ErrInputRequired is returned when input path is not specified
	ErrInputRequired = errors.New("input archive path is required")

	// ErrInvalidPattern is returned for a malformed suspicious glob
	ErrInvalidPattern = errors.New("invalid suspicious pattern")
)
