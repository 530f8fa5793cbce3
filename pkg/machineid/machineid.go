// Package machineid persists a random identifier for this installation.
package machineid

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// FileName is the file holding the identifier inside the data directory
const FileName = "machine_id"

// ErrDirRequired is returned when no data directory is given
var ErrDirRequired = errors.New("data directory is required")

// GetOrCreate returns the identifier stored in dir. A missing, unreadable or
// malformed file is replaced with a freshly generated version 4 UUID.
func GetOrCreate(dir string) (string, error) {
	if dir == "" {
		return "", ErrDirRequired
	}
	path := filepath.Join(dir, FileName)

	if id, ok := load(path); ok {
		return id, nil
	}

	id := uuid.NewString()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create data directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(id), 0644); err != nil {
		return "", fmt.Errorf("write machine id: %w", err)
	}
	return id, nil
}

func load(path string) (string, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", false
	}
	id := strings.TrimSpace(string(data))
	if id == "" {
		return "", false
	}
	if _, err := uuid.Parse(id); err != nil {
		return "", false
	}
	return id, true
}
