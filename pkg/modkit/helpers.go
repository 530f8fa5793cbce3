// pkg/modkit/helpers.go
package modkit

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
)

// OperationType indicates which materialization produced a result
type OperationType string

const (
	OperationExtract OperationType = "extract"
	OperationCopy    OperationType = "copy"
)

// ProgressEvent is a generic progress event shared by extract and copy
type ProgressEvent struct {
	Type         EventType
	FilePath     string
	Current      int64
	Total        int64
	CurrentBytes uint64
	TotalBytes   uint64
}

// EventType indicates the type of progress event
type EventType int

const (
	EventStart EventType = iota
	EventFileStart
	EventFileProgress
	EventFileComplete
	EventComplete
	EventError
)

// Result is implemented by extract and copy results
type Result interface {
	GetFilesTotal() int
	GetFilesWritten() int
	GetDirsCreated() int
	GetBytesWritten() uint64
}

// ProgressBarCallback creates a progress callback that displays multi-progress bars.
// The callback is safe for concurrent use by parallel writers.
// Returns the callback function and the progress container (call Wait() after the operation)
func ProgressBarCallback() (func(ProgressEvent), *mpb.Progress) {
	progress := mpb.New(
		mpb.WithWidth(60),
		mpb.WithRefreshRate(100),
	)

	var mu sync.Mutex
	var overallBar *mpb.Bar
	var fileBars sync.Map // map[string]*mpb.Bar

	total := func() *mpb.Bar {
		mu.Lock()
		defer mu.Unlock()
		return overallBar
	}

	callback := func(event ProgressEvent) {
		switch event.Type {
		case EventStart:
			bar := progress.AddBar(event.Total,
				mpb.PrependDecorators(
					decor.Name("Total", decor.WC{C: decor.DindentRight | decor.DextraSpace}),
					decor.CountersNoUnit("%d / %d", decor.WCSyncWidth),
				),
				mpb.AppendDecorators(
					decor.Percentage(decor.WC{W: 5}),
				),
				mpb.BarPriority(1000),
			)
			mu.Lock()
			overallBar = bar
			mu.Unlock()

		case EventFileStart:
			// Small files finish before a bar could render
			if event.Total < 1024*1024 {
				return
			}
			shortName := TruncateLeft(event.FilePath, 30)
			bar := progress.AddBar(event.Total,
				mpb.PrependDecorators(
					decor.Name(shortName, decor.WC{C: decor.DindentRight | decor.DextraSpace, W: 32}),
				),
				mpb.AppendDecorators(
					decor.CountersKibiByte("% .1f / % .1f", decor.WC{W: 18}),
					decor.Percentage(decor.WC{W: 5}),
				),
				mpb.BarRemoveOnComplete(),
			)
			fileBars.Store(event.FilePath, bar)

		case EventFileProgress:
			if bar, ok := fileBars.Load(event.FilePath); ok {
				bar.(*mpb.Bar).SetCurrent(event.Current)
			}

		case EventFileComplete:
			if bar, ok := fileBars.LoadAndDelete(event.FilePath); ok {
				bar.(*mpb.Bar).SetCurrent(event.Total)
			}
			if b := total(); b != nil {
				b.Increment()
			}

		case EventError:
			if bar, ok := fileBars.LoadAndDelete(event.FilePath); ok {
				bar.(*mpb.Bar).Abort(true)
			}
			if b := total(); b != nil {
				b.Increment()
			}

		case EventComplete:
			// Files skipped by the fail-fast path never report; settle the bar
			if b := total(); b != nil && !b.Completed() {
				b.SetTotal(-1, true)
			}
		}
	}

	return callback, progress
}

// FormatSummary formats a result into a human-readable summary string
func FormatSummary(result Result, operation OperationType) string {
	var sb strings.Builder

	sb.WriteString("Summary:\n")
	verb := "written"
	if operation == OperationCopy {
		verb = "copied"
	}
	fmt.Fprintf(&sb, "  Files %s:   %d / %d\n", verb, result.GetFilesWritten(), result.GetFilesTotal())
	fmt.Fprintf(&sb, "  Directories:     %d\n", result.GetDirsCreated())
	fmt.Fprintf(&sb, "  Data:            %s\n", FormatSize(result.GetBytesWritten()))

	return sb.String()
}

// FormatSize formats bytes into human-readable string
func FormatSize(bytes uint64) string {
	const (
		KB = 1024
		MB = 1024 * KB
		GB = 1024 * MB
		TB = 1024 * GB
	)

	switch {
	case bytes >= TB:
		return fmt.Sprintf("%.2f TB", float64(bytes)/float64(TB))
	case bytes >= GB:
		return fmt.Sprintf("%.2f GB", float64(bytes)/float64(GB))
	case bytes >= MB:
		return fmt.Sprintf("%.2f MB", float64(bytes)/float64(MB))
	case bytes >= KB:
		return fmt.Sprintf("%.2f KB", float64(bytes)/float64(KB))
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}

// TruncateLeft truncates a path from the left to fit maxLen, preserving the filename
func TruncateLeft(path string, maxLen int) string {
	if len(path) <= maxLen {
		return path
	}

	filename := filepath.Base(path)
	if len(filename) >= maxLen-3 {
		return "..." + filename[len(filename)-(maxLen-3):]
	}

	return "..." + path[len(path)-(maxLen-3):]
}
