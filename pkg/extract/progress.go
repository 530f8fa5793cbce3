// pkg/extract/progress.go
package extract

import (
	"github.com/creativeyann17/go-modkit/pkg/modkit"
	"github.com/vbauerster/mpb/v8"
)

// ProgressBarCallback creates a progress callback that displays multi-progress bars
// Returns the callback function and the progress container (call Wait() after extraction)
func ProgressBarCallback() (ProgressCallback, *mpb.Progress) {
	genericCb, progress := modkit.ProgressBarCallback()

	callback := func(event ProgressEvent) {
		genericCb(modkit.ProgressEvent{
			Type:         modkit.EventType(event.Type),
			FilePath:     event.FilePath,
			Current:      event.Current,
			Total:        event.Total,
			CurrentBytes: event.CurrentBytes,
			TotalBytes:   event.TotalBytes,
		})
	}

	return callback, progress
}

// FormatSummary formats an extraction result into a human-readable summary string
func FormatSummary(result *Result) string {
	return modkit.FormatSummary(result, modkit.OperationExtract)
}
