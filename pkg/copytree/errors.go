// pkg/copytree/errors.go
package copytree

import "errors"

var (
	// ErrSourceRequired is returned when source path is not specified
	ErrSourceRequired = errors.New("source directory path is required")

	// ErrDestRequired is returned when destination path is not specified
	ErrDestRequired = errors.New("destination directory path is required")

	// ErrDestInsideSource is returned when the destination is the source or lies within it
	ErrDestInsideSource = errors.New("destination must not be inside the source directory")

	// ErrSourceInsideDest is returned when the source lies within the destination,
	// which would be deleted before the copy starts
	ErrSourceInsideDest = errors.New("source must not be inside the destination directory")

	// ErrNotDirectory is returned when the source exists but is not a directory
	ErrNotDirectory = errors.New("not a directory")
)
