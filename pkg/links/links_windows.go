//go:build windows

package links

import (
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

func createAlias(source, alias string) error {
	target, err := filepath.Abs(source)
	if err != nil {
		return err
	}
	out, err := exec.Command("cmd", "/c", "mklink", "/J", alias, target).CombinedOutput()
	if err != nil {
		return fmt.Errorf("mklink: %w: %s", err, strings.TrimSpace(string(out)))
	}
	return nil
}

// Junctions are reported as irregular files rather than symlinks
func isAlias(full string, entry fs.DirEntry) bool {
	mode := entry.Type()
	if mode&fs.ModeSymlink != 0 {
		return true
	}
	if mode&fs.ModeIrregular != 0 {
		_, err := os.Readlink(full)
		return err == nil
	}
	return false
}
