// pkg/copytree/pools.go
package copytree

import "sync"

var (
	// copyBufferPool provides 32KB buffers shared by concurrent file copies
	copyBufferPool = sync.Pool{
		New: func() any {
			buf := make([]byte, 32*1024)
			return &buf
		},
	}
)

// getCopyBuffer returns a 32KB buffer from the pool
func getCopyBuffer() *[]byte {
	return copyBufferPool.Get().(*[]byte)
}

// putCopyBuffer returns a buffer to the pool
func putCopyBuffer(buf *[]byte) {
	copyBufferPool.Put(buf)
}
