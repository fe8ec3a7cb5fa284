package step

import (
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
)

// GlobFinder matches doublestar patterns against a directory tree.
type GlobFinder struct{}

// NewGlobFinder ...
func NewGlobFinder() GlobFinder {
	return GlobFinder{}
}

// Find walks root and returns the paths (joined with root) of every entry matching pattern,
// in the order the walk visits them. Symlinked directories are not descended into.
func (GlobFinder) Find(root, pattern string) ([]string, error) {
	var matches []string
	err := doublestar.GlobWalk(os.DirFS(root), pattern, func(pth string, d os.DirEntry) error {
		matches = append(matches, filepath.Join(root, filepath.FromSlash(pth)))
		return nil
	}, doublestar.WithFailOnIOErrors(), doublestar.WithNoFollow())
	if err != nil {
		return nil, err
	}
	return matches, nil
}
