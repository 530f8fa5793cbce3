// pkg/modkit/errors.go
package modkit

import (
	"errors"
	"fmt"
)

// ErrInsecurePath is wrapped in a FormatError when an archive entry would be
// written outside of the destination directory (zip slip).
var ErrInsecurePath = errors.New("insecure entry path")

// OpenError is returned when an archive or source cannot be accessed.
type OpenError struct {
	Path string
	Err  error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("open %s: %v", e.Path, e.Err)
}

func (e *OpenError) Unwrap() error {
	return e.Err
}

// FormatError is returned when an archive is structurally invalid or not a
// supported format.
type FormatError struct {
	Path string
	Err  error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid archive %s: %v", e.Path, e.Err)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// EntryReadError is returned when a single archive entry fails to decompress.
type EntryReadError struct {
	// Path is the archive path.
	Path string
	// Entry is the entry name as stored in the archive.
	Entry string
	Err   error
}

func (e *EntryReadError) Error() string {
	return fmt.Sprintf("read entry %s in %s: %v", e.Entry, e.Path, e.Err)
}

func (e *EntryReadError) Unwrap() error {
	return e.Err
}

// DirectoryCreateError is returned when a directory of the skeleton cannot be created.
type DirectoryCreateError struct {
	Path string
	Err  error
}

func (e *DirectoryCreateError) Error() string {
	return fmt.Sprintf("create directory %s: %v", e.Path, e.Err)
}

func (e *DirectoryCreateError) Unwrap() error {
	return e.Err
}

// WriteError is returned when a file payload cannot be written to disk.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// CopyError is returned when a file or directory of a tree copy fails.
type CopyError struct {
	Path string
	Err  error
}

func (e *CopyError) Error() string {
	return fmt.Sprintf("copy %s: %v", e.Path, e.Err)
}

func (e *CopyError) Unwrap() error {
	return e.Err
}

// SourceReadError is returned when a source directory cannot be listed.
type SourceReadError struct {
	Path string
	Err  error
}

func (e *SourceReadError) Error() string {
	return fmt.Sprintf("read source %s: %v", e.Path, e.Err)
}

func (e *SourceReadError) Unwrap() error {
	return e.Err
}
