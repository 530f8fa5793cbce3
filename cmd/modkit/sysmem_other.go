//go:build !linux && !darwin && !windows

package main

import "errors"

// totalSystemMemory is not implemented on this platform
func totalSystemMemory() (uint64, error) {
	return 0, errors.New("system memory query not supported")
}
