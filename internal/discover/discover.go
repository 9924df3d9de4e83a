// Package discover enumerates candidate source files for a search: the
// repository's tracked and untracked-but-not-ignored files via git, or a
// doublestar glob fallback, both filtered to extensions a registered
// provider can build (§4.6).
//
// Grounded on the teacher's internal/scanner (git-aware, glob-filtered
// directory walking) rebuilt against the provider registry instead of a
// language-neutral scanner.Config.
package discover

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/harlowlabs/semq/internal/provider"
)

// Git returns every file git considers part of root's work tree: tracked
// files plus untracked files that are not ignored. Paths are relative to
// root.
func Git(root string) ([]string, error) {
	cmd := exec.Command("git", "ls-files", "--cached", "--others", "--exclude-standard")
	cmd.Dir = root
	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		return nil, err
	}
	var files []string
	for _, line := range bytes.Split(out.Bytes(), []byte("\n")) {
		if len(line) == 0 {
			continue
		}
		files = append(files, string(line))
	}
	return files, nil
}

// Glob returns every file under root matching any of patterns (doublestar
// syntax), relative to root. An empty patterns list matches "**/*".
func Glob(root string, patterns []string) ([]string, error) {
	if len(patterns) == 0 {
		patterns = []string{"**/*"}
	}
	fsys := os.DirFS(root)
	seen := make(map[string]bool)
	var files []string
	for _, pattern := range patterns {
		matches, err := doublestar.Glob(fsys, pattern)
		if err != nil {
			return nil, err
		}
		for _, m := range matches {
			if seen[m] {
				continue
			}
			seen[m] = true
			files = append(files, m)
		}
	}
	return files, nil
}

// FilterByExtension drops every path whose extension has no registered
// provider.
func FilterByExtension(registry *provider.Registry, files []string) []string {
	var out []string
	for _, f := range files {
		if _, ok := registry.For(f); ok {
			out = append(out, f)
		}
	}
	return out
}

// Join returns path resolved against root, for opening files discover
// returned relative paths for.
func Join(root, path string) string {
	return filepath.Join(root, path)
}
