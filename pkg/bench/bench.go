// Package bench measures sequential disk write throughput.
package bench

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/creativeyann17/go-modkit/pkg/modkit"
	"go.uber.org/zap"
)

const (
	// DefaultFileCount is the number of probe files written
	DefaultFileCount = 5

	// DefaultFileSize is the size of each probe file
	DefaultFileSize = 50 * 1024 * 1024

	// scratchDirName is created under Options.Dir and removed afterwards
	scratchDirName = "benchmark_temp"

	// fallbackSpeed is reported when the run is too fast to time
	fallbackSpeed = 1000
)

// ErrDirRequired is returned when no scratch location is given
var ErrDirRequired = errors.New("benchmark directory is required")

// Options configures the probe
type Options struct {
	// Dir hosts the scratch directory
	Dir string

	// Number of files to write
	// Default: DefaultFileCount
	FileCount int

	// Bytes per file
	// Default: DefaultFileSize
	FileSize int

	// Logger receives diagnostics (optional)
	Logger *zap.Logger
}

// DefaultOptions returns options with sensible defaults
func DefaultOptions() *Options {
	return &Options{
		FileCount: DefaultFileCount,
		FileSize:  DefaultFileSize,
	}
}

// Validate checks if options are valid
func (o *Options) Validate() error {
	if o.Dir == "" {
		return ErrDirRequired
	}
	if o.FileCount <= 0 {
		o.FileCount = DefaultFileCount
	}
	if o.FileSize <= 0 {
		o.FileSize = DefaultFileSize
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	return nil
}

// Result reports a completed probe
type Result struct {
	SpeedMBps    uint64 `json:"speed_mbps"`
	BytesWritten uint64 `json:"bytes_written"`
	ElapsedMS    uint64 `json:"elapsed_ms"`
}

// Disk writes FileCount files of FileSize pattern bytes, syncing each one,
// and reports the throughput in MiB/s. The scratch directory is removed
// afterwards; a cleanup failure is logged and does not fail the probe.
func Disk(opts *Options) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	log := opts.Logger

	scratch := filepath.Join(opts.Dir, scratchDirName)
	if err := os.MkdirAll(scratch, 0755); err != nil {
		return nil, fmt.Errorf("create benchmark directory: %w", err)
	}
	defer func() {
		if err := os.RemoveAll(scratch); err != nil {
			log.Warn("failed to clean up benchmark directory", zap.String("dir", scratch), zap.Error(err))
		}
	}()

	data := Pattern(opts.FileSize)

	start := time.Now()
	var written uint64
	for i := 0; i < opts.FileCount; i++ {
		n, err := writeSynced(filepath.Join(scratch, fmt.Sprintf("bench_%d.bin", i)), data)
		written += uint64(n)
		if err != nil {
			return nil, err
		}
	}
	elapsed := uint64(time.Since(start).Milliseconds())

	speed := uint64(fallbackSpeed)
	if elapsed > 0 {
		speed = (written / (1024 * 1024)) * 1000 / elapsed
	}

	log.Debug("disk benchmark done",
		zap.Uint64("bytes", written),
		zap.Uint64("elapsed_ms", elapsed),
		zap.Uint64("speed_mbps", speed))

	return &Result{
		SpeedMBps:    speed,
		BytesWritten: written,
		ElapsedMS:    elapsed,
	}, nil
}

// Pattern returns size bytes of the deterministic probe pattern
func Pattern(size int) []byte {
	data := make([]byte, size)
	for i := range data {
		data[i] = byte((i*17 + 31) % 256)
	}
	return data
}

func writeSynced(path string, data []byte) (int64, error) {
	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("create benchmark file: %w", err)
	}
	defer f.Close()

	cw := &modkit.CountingWriter{Writer: f}
	if _, err := cw.Write(data); err != nil {
		return cw.Count, fmt.Errorf("write benchmark file: %w", err)
	}
	if err := f.Sync(); err != nil {
		return cw.Count, fmt.Errorf("sync benchmark file: %w", err)
	}
	return cw.Count, nil
}
