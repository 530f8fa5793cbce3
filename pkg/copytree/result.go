// pkg/copytree/result.go
package copytree

// Result contains statistics about the copy
type Result struct {
	// Number of regular files found in the source (excluding ignored ones)
	FilesTotal int

	// Number of files copied
	FilesCopied int

	// Number of directories created under the destination, root included
	DirsCreated int

	// Total bytes copied
	BytesCopied uint64

	// Number of symbolic links recreated
	LinksCopied int

	// Source paths skipped because they are neither files, directories nor links
	Skipped []string
}

// Success returns true if every file was copied
func (r *Result) Success() bool {
	return r.FilesCopied == r.FilesTotal
}

// GetFilesTotal returns total files (interface method)
func (r *Result) GetFilesTotal() int {
	return r.FilesTotal
}

// GetFilesWritten returns copied files (interface method)
func (r *Result) GetFilesWritten() int {
	return r.FilesCopied
}

// GetDirsCreated returns created directories (interface method)
func (r *Result) GetDirsCreated() int {
	return r.DirsCreated
}

// GetBytesWritten returns copied bytes (interface method)
func (r *Result) GetBytesWritten() uint64 {
	return r.BytesCopied
}
