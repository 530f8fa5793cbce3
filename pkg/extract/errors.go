// pkg/extract/errors.go
package extract

import "errors"

var (
	// ErrInputRequired is returned when input path is not specified
	ErrInputRequired = errors.New("input archive path is required")

	// ErrMemoryLimit is returned when the archive content exceeds Options.MaxMemory
	ErrMemoryLimit = errors.New("archive content exceeds memory limit")
)
