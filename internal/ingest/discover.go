package ingest

import (
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"github.com/bmatcuk/doublestar/v4"

	lserrors "github.com/livp123/logscope/pkg/errors"
)

// DefaultPattern selects every .log file below the root, at any depth.
const DefaultPattern = "**/*.log"

// Discover returns the regular files under root matching pattern, in lexical
// order. The pattern is a doublestar glob relative to root using '/' as
// separator.
func Discover(root, pattern string) ([]string, error) {
	if pattern == "" {
		pattern = DefaultPattern
	}
	if !doublestar.ValidatePattern(pattern) {
		return nil, lserrors.NewConfigError("ingest.pattern", pattern)
	}

	info, err := os.Stat(root)
	if err != nil {
		return nil, lserrors.NewFileError(root, err)
	}
	if !info.IsDir() {
		return nil, lserrors.NewFileError(root, fs.ErrInvalid)
	}

	var files []string
	err = doublestar.GlobWalk(os.DirFS(root), pattern, func(path string, d fs.DirEntry) error {
		if d.Type().IsRegular() {
			files = append(files, filepath.Join(root, filepath.FromSlash(path)))
		}
		return nil
	})
	if err != nil {
		return nil, lserrors.NewFileError(root, err)
	}
	slices.Sort(files)
	return files, nil
}
