// Package fileinfo answers questions about files on disk: content digests and sizes.
package fileinfo

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"hash"
	"io"
	"os"
	"strings"
	"sync/atomic"

	"github.com/charlievieth/fastwalk"
	"github.com/zeebo/blake3"
)

// Algorithm names a digest supported by Hash
type Algorithm string

const (
	SHA256 Algorithm = "sha256"
	BLAKE3 Algorithm = "blake3"
)

// bufferSize is the read size used while hashing
const bufferSize = 64 * 1024

// ErrUnknownAlgorithm is returned for an unsupported digest name
var ErrUnknownAlgorithm = errors.New("unknown hash algorithm")

// ParseAlgorithm maps a user supplied name to an Algorithm. Empty means SHA256.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch Algorithm(strings.ToLower(strings.TrimSpace(name))) {
	case "", SHA256:
		return SHA256, nil
	case BLAKE3:
		return BLAKE3, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
}

func (a Algorithm) newHash() (hash.Hash, error) {
	switch a {
	case "", SHA256:
		return sha256.New(), nil
	case BLAKE3:
		return blake3.New(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, string(a))
	}
}

// Hash streams the file at path through the digest and returns it as lowercase hex
func Hash(path string, algo Algorithm) (string, error) {
	h, err := algo.newHash()
	if err != nil {
		return "", err
	}

	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	buf := make([]byte, bufferSize)
	if _, err := io.CopyBuffer(h, f, buf); err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// Size returns the size in bytes of the file at path
func Size(path string) (uint64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, fmt.Errorf("stat %s: %w", path, err)
	}
	return uint64(info.Size()), nil
}

// TreeSize sums the sizes of all regular files below dir without following links.
// Returns the byte total and the file count.
func TreeSize(dir string) (uint64, int, error) {
	if _, err := os.Stat(dir); err != nil {
		return 0, 0, fmt.Errorf("stat %s: %w", dir, err)
	}

	var total atomic.Uint64
	var files atomic.Int64

	conf := fastwalk.Config{Follow: false}
	err := fastwalk.Walk(&conf, dir, func(p string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		total.Add(uint64(info.Size()))
		files.Add(1)
		return nil
	})
	if err != nil {
		return 0, 0, fmt.Errorf("walk %s: %w", dir, err)
	}

	return total.Load(), int(files.Load()), nil
}
