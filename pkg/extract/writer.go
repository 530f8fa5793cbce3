// pkg/extract/writer.go
package extract

import (
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"

	"github.com/creativeyann17/go-modkit/internal/failslot"
	"github.com/creativeyann17/go-modkit/pkg/modkit"
)

// Record is a pending write: a payload destined for a slash-separated path relative
// to the output root. Payloads are never modified once collected.
type Record struct {
	RelPath string
	Payload []byte
}

// WriteAll writes every record under root using a fixed pool of at most threads
// workers. Parent directories must already exist (see BuildSkeleton) and no two
// records may share a path.
//
// Existing files are truncated and overwritten. Payloads are released once written.
// After all workers have joined, the first *modkit.WriteError recorded by any worker
// is returned; other failures of the same batch are dropped. Files written before a
// failure are left in place.
func WriteAll(root string, records []Record, threads int, progressCb ProgressCallback) (written int, bytes uint64, err error) {
	if len(records) == 0 {
		return 0, 0, nil
	}
	workers := max(1, min(threads, len(records)))

	queue := make(chan int, len(records))
	for i := range records {
		queue <- i
	}
	close(queue)

	var slot failslot.Slot
	var filesWritten atomic.Int64
	var bytesWritten atomic.Uint64
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for i := range queue {
				// Drain without writing once a sibling failed
				if slot.Failed() {
					continue
				}

				rec := &records[i]
				target := filepath.Join(root, filepath.FromSlash(rec.RelPath))
				size := len(rec.Payload)

				if progressCb != nil {
					progressCb(ProgressEvent{
						Type:     EventFileStart,
						FilePath: rec.RelPath,
						Total:    int64(size),
					})
				}

				if err := os.WriteFile(target, rec.Payload, 0644); err != nil {
					slot.Set(&modkit.WriteError{Path: target, Err: err})
					if progressCb != nil {
						progressCb(ProgressEvent{
							Type:     EventError,
							FilePath: rec.RelPath,
						})
					}
					continue
				}
				rec.Payload = nil

				filesWritten.Add(1)
				bytesWritten.Add(uint64(size))
				if progressCb != nil {
					progressCb(ProgressEvent{
						Type:     EventFileComplete,
						FilePath: rec.RelPath,
						Current:  int64(size),
						Total:    int64(size),
					})
				}
			}
		}()
	}

	wg.Wait()

	return int(filesWritten.Load()), bytesWritten.Load(), slot.Err()
}
