// pkg/extract/skeleton.go
package extract

import (
	"os"
	"path"
	"path/filepath"
	"sort"

	"github.com/creativeyann17/go-modkit/pkg/modkit"
)

// BuildSkeleton creates root and every directory of dirs (slash-separated, relative
// to root) together with missing ancestors. Already existing directories are fine,
// so running it twice over the same tree succeeds.
//
// Directories are created one at a time; the first failure aborts the pass with a
// *modkit.DirectoryCreateError. Returns the number of distinct directories ensured.
func BuildSkeleton(root string, dirs []string) (int, error) {
	unique := map[string]struct{}{".": {}}
	for _, dir := range dirs {
		unique[path.Clean("./"+dir)] = struct{}{}
	}

	ordered := make([]string, 0, len(unique))
	for dir := range unique {
		ordered = append(ordered, dir)
	}
	sort.Strings(ordered)

	for i, dir := range ordered {
		target := filepath.Join(root, filepath.FromSlash(dir))
		if err := os.MkdirAll(target, 0755); err != nil {
			return i, &modkit.DirectoryCreateError{Path: target, Err: err}
		}
	}

	return len(ordered), nil
}
