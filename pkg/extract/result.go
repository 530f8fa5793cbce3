// pkg/extract/result.go
package extract

// Result contains statistics about the extraction
type Result struct {
	// Number of file entries in the archive (after duplicate names collapse)
	FilesTotal int

	// Number of files written to disk
	FilesWritten int

	// Number of directories ensured by the skeleton pass
	DirsCreated int

	// Total payload bytes written
	BytesWritten uint64

	// Entries skipped because they are neither files nor directories
	Skipped []string
}

// Success returns true if every file was written
func (r *Result) Success() bool {
	return r.FilesWritten == r.FilesTotal
}

// GetFilesTotal returns total files (interface method)
func (r *Result) GetFilesTotal() int {
	return r.FilesTotal
}

// GetFilesWritten returns written files (interface method)
func (r *Result) GetFilesWritten() int {
	return r.FilesWritten
}

// GetDirsCreated returns ensured directories (interface method)
func (r *Result) GetDirsCreated() int {
	return r.DirsCreated
}

// GetBytesWritten returns written bytes (interface method)
func (r *Result) GetBytesWritten() uint64 {
	return r.BytesWritten
}
