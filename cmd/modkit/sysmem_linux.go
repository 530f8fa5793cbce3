//go:build linux

package main

import "golang.org/x/sys/unix"

// totalSystemMemory returns installed RAM in bytes (Linux)
func totalSystemMemory() (uint64, error) {
	var info unix.Sysinfo_t
	if err := unix.Sysinfo(&info); err != nil {
		return 0, err
	}
	return uint64(info.Totalram) * uint64(info.Unit), nil
}
