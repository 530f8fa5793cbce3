// pkg/copytree/gitignore_test.go
package copytree

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeFile(t *testing.T, base, rel, content string) {
	t.Helper()
	full := filepath.Join(base, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(full, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestGitignoreMatcher_BasicPatterns(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, tmpDir, ".gitignore", "*.log\nbuild/\n*.tmp\n")

	matcher, err := newGitignoreMatcher(tmpDir)
	if err != nil {
		t.Fatal(err)
	}
	if matcher == nil {
		t.Fatal("expected non-nil matcher")
	}

	tests := []struct {
		path     string
		isDir    bool
		expected bool
	}{
		{"keep.txt", false, false},
		{"debug.log", false, true},
		{"cache.tmp", false, true},
		{"build", true, true},
		{"build/output.bin", false, true},
		{"src/main.go", false, false},
		{"src", true, false},
	}

	for _, tc := range tests {
		t.Run(tc.path, func(t *testing.T) {
			got := matcher.ShouldIgnore(tc.path, tc.isDir)
			if got != tc.expected {
				t.Errorf("ShouldIgnore(%q, %v) = %v, want %v", tc.path, tc.isDir, got, tc.expected)
			}
		})
	}
}

func TestGitignoreMatcher_NestedFiles(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, tmpDir, ".gitignore", "*.log\n")
	writeFile(t, tmpDir, "src/.gitignore", "generated/\n")

	matcher, err := newGitignoreMatcher(tmpDir)
	if err != nil {
		t.Fatal(err)
	}

	if !matcher.ShouldIgnore("src/deep/trace.log", false) {
		t.Error("root patterns should apply to nested files")
	}
	if !matcher.ShouldIgnore("src/generated", true) {
		t.Error("src/.gitignore should apply inside src")
	}
	if matcher.ShouldIgnore("generated", true) {
		t.Error("src/.gitignore must not apply at the root")
	}
}

func TestGitignoreMatcher_NoFiles(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, tmpDir, "a.txt", "a")

	matcher, err := newGitignoreMatcher(tmpDir)
	if err != nil {
		t.Fatal(err)
	}
	if matcher != nil {
		t.Fatal("expected nil matcher when no .gitignore exists")
	}
	if matcher.ShouldIgnore("a.txt", false) {
		t.Error("nil matcher should ignore nothing")
	}
}

func TestHierarchy(t *testing.T) {
	tests := map[string][]string{
		"file.log":         {""},
		"src/file.log":     {"", "src"},
		"src/lib/file.log": {"", "src", "src/lib"},
	}
	for input, want := range tests {
		if got := hierarchy(input); !reflect.DeepEqual(got, want) {
			t.Errorf("hierarchy(%q) = %v, want %v", input, got, want)
		}
	}
}
