//go:build !windows

package links

import (
	"io/fs"
	"os"
)

func createAlias(source, alias string) error {
	return os.Symlink(source, alias)
}

func isAlias(_ string, entry fs.DirEntry) bool {
	return entry.Type()&fs.ModeSymlink != 0
}
