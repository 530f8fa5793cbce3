//go:build windows

package main

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

// totalSystemMemory returns installed RAM in bytes (Windows)
func totalSystemMemory() (uint64, error) {
	var status windows.MemoryStatusEx
	status.Length = uint32(unsafe.Sizeof(status))
	if err := windows.GlobalMemoryStatusEx(&status); err != nil {
		return 0, err
	}
	return status.TotalPhys, nil
}
