// Package links manages directory aliases: symbolic links on Unix and
// directory junctions on Windows, which need no elevated privileges.
package links

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// ErrSourceRequired is returned when no alias target is given
var ErrSourceRequired = errors.New("link source is required")

// ErrAliasRequired is returned when no alias path is given
var ErrAliasRequired = errors.New("link path is required")

// Create makes alias point at the directory source. Whatever already sits at
// alias is removed first, so Create also retargets an existing link.
func Create(source, alias string) error {
	if source == "" {
		return ErrSourceRequired
	}
	if alias == "" {
		return ErrAliasRequired
	}

	if err := Remove(alias); err != nil {
		return err
	}
	if err := createAlias(source, alias); err != nil {
		return fmt.Errorf("create link %s -> %s: %w", alias, source, err)
	}
	return nil
}

// Remove deletes the alias itself, never what it points to.
// A missing alias is not an error.
func Remove(alias string) error {
	if alias == "" {
		return ErrAliasRequired
	}
	if _, err := os.Lstat(alias); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err := os.Remove(alias); err != nil {
		return fmt.Errorf("remove link %s: %w", alias, err)
	}
	return nil
}

// List returns the aliases found directly inside dir, sorted by path.
// A missing dir yields an empty list.
func List(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if errors.Is(err, os.ErrNotExist) {
		return []string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("list links in %s: %w", dir, err)
	}

	found := []string{}
	for _, entry := range entries {
		full := filepath.Join(dir, entry.Name())
		if isAlias(full, entry) {
			found = append(found, full)
		}
	}
	sort.Strings(found)
	return found, nil
}
