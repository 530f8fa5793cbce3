// pkg/copytree/progress.go
package copytree

import (
	"github.com/creativeyann17/go-modkit/pkg/modkit"
	"github.com/vbauerster/mpb/v8"
)

// ProgressCallback is called for various progress events.
// Copies run in parallel, so it must be safe for concurrent use.
type ProgressCallback func(event ProgressEvent)

// ProgressEvent contains progress information
type ProgressEvent = modkit.ProgressEvent

// EventType indicates the type of progress event
type EventType = modkit.EventType

const (
	EventStart        = modkit.EventStart
	EventFileStart    = modkit.EventFileStart
	EventFileProgress = modkit.EventFileProgress
	EventFileComplete = modkit.EventFileComplete
	EventComplete     = modkit.EventComplete
	EventError        = modkit.EventError
)

// ProgressBarCallback creates a progress callback that displays multi-progress bars
// Returns the callback function and the progress container (call Wait() after the copy)
func ProgressBarCallback() (ProgressCallback, *mpb.Progress) {
	cb, progress := modkit.ProgressBarCallback()
	return cb, progress
}

// FormatSummary formats a copy result into a human-readable summary string
func FormatSummary(result *Result) string {
	return modkit.FormatSummary(result, modkit.OperationCopy)
}
