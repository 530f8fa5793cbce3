// pkg/copytree/gitignore.go
package copytree

import (
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"

	"github.com/charlievieth/fastwalk"
	ignore "github.com/sabhiram/go-gitignore"
)

// gitignoreMatcher answers whether a source path is excluded by a .gitignore
// file in the same directory or one of its ancestors.
type gitignoreMatcher struct {
	matchers map[string]*ignore.GitIgnore // relative dir ("" = root) -> compiled patterns
}

// newGitignoreMatcher scans the source tree for .gitignore files.
// Returns nil when there are none, which matches nothing.
func newGitignoreMatcher(baseDir string) (*gitignoreMatcher, error) {
	baseDir = filepath.Clean(baseDir)

	var mu sync.Mutex
	matchers := make(map[string]*ignore.GitIgnore)

	conf := fastwalk.Config{Follow: false}
	err := fastwalk.Walk(&conf, baseDir, func(p string, d os.DirEntry, err error) error {
		// Inaccessible paths surface later as SourceReadError
		if err != nil || d.IsDir() || d.Name() != ".gitignore" {
			return nil
		}

		relDir, err := filepath.Rel(baseDir, filepath.Dir(p))
		if err != nil {
			return nil
		}
		if relDir == "." {
			relDir = ""
		}

		compiled, err := ignore.CompileIgnoreFile(p)
		if err != nil {
			return nil
		}

		mu.Lock()
		matchers[filepath.ToSlash(relDir)] = compiled
		mu.Unlock()
		return nil
	})
	if err != nil {
		return nil, err
	}

	if len(matchers) == 0 {
		return nil, nil
	}
	return &gitignoreMatcher{matchers: matchers}, nil
}

// ShouldIgnore checks relPath (slash-separated, relative to the source root)
// against every .gitignore from the root down to its parent directory.
// Directories are matched with a trailing slash so "build/" patterns apply.
func (gm *gitignoreMatcher) ShouldIgnore(relPath string, isDir bool) bool {
	if gm == nil {
		return false
	}

	candidate := relPath
	if isDir {
		candidate += "/"
	}

	for _, dir := range hierarchy(relPath) {
		matcher, ok := gm.matchers[dir]
		if !ok {
			continue
		}
		local := candidate
		if dir != "" {
			local = strings.TrimPrefix(candidate, dir+"/")
		}
		if matcher.MatchesPath(local) {
			return true
		}
	}
	return false
}

// hierarchy lists the directories from root to the parent of relPath.
// For "src/lib/file.log" it returns ["", "src", "src/lib"].
func hierarchy(relPath string) []string {
	dirs := []string{""}

	parent := path.Dir(relPath)
	if parent == "." || parent == "/" {
		return dirs
	}

	current := ""
	for _, part := range strings.Split(parent, "/") {
		if part == "" {
			continue
		}
		if current == "" {
			current = part
		} else {
			current += "/" + part
		}
		dirs = append(dirs, current)
	}
	return dirs
}
