// internal/format/errors.go
package format

import "errors"

// ErrUnsupportedFormat is wrapped in a modkit.FormatError for inputs that are not a known archive
var ErrUnsupportedFormat = errors.New("unsupported archive format")
