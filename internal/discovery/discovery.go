// Package discovery scans a project tree for files that carry a
// version, so they can be suggested as config entries.
package discovery

import (
	"context"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/fgm/verbump/internal/core"
	"github.com/fgm/verbump/internal/updater"
)

// DefaultMaxDepth bounds how deep below the root the scan descends.
const DefaultMaxDepth = 3

// skipDirs are directory names never descended into.
var skipDirs = map[string]bool{
	".git":         true,
	"node_modules": true,
	"vendor":       true,
	"dist":         true,
	"build":        true,
}

// candidateNames are file names worth probing for a version.
var candidateNames = map[string]bool{
	"VERSION":       true,
	"VERSION.txt":   true,
	"package.json":  true,
	"composer.json": true,
	"manifest.json": true,
}

// Candidate is a discovered version-bearing file.
type Candidate struct {
	// Path is relative to the scan root.
	Path string

	// Kind is the classified file kind.
	Kind updater.Kind

	// Version is the currently extracted version.
	Version string
}

// Service scans for version-bearing files.
type Service struct {
	fs       core.FileSystem
	maxDepth int
}

// NewService creates a discovery Service. A maxDepth below zero uses
// DefaultMaxDepth.
func NewService(fsys core.FileSystem, maxDepth int) *Service {
	if maxDepth < 0 {
		maxDepth = DefaultMaxDepth
	}
	return &Service{fs: fsys, maxDepth: maxDepth}
}

// Scan walks root and returns every candidate file whose version
// extracts cleanly, in walk order. Files that look promising but yield
// no valid version are silently skipped.
func (s *Service) Scan(ctx context.Context, root string) ([]Candidate, error) {
	var candidates []Candidate

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return relErr
		}

		if d.IsDir() {
			if path != root && (skipDirs[d.Name()] || strings.HasPrefix(d.Name(), ".")) {
				return filepath.SkipDir
			}
			if depth(rel) >= s.maxDepth {
				return filepath.SkipDir
			}
			return nil
		}

		if !candidateNames[d.Name()] {
			return nil
		}

		u := updater.New(s.fs, path, updater.Options{})
		version, extractErr := u.Extract(ctx)
		if extractErr != nil {
			return nil
		}

		candidates = append(candidates, Candidate{
			Path:    rel,
			Kind:    u.Kind(),
			Version: version,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	return candidates, nil
}

// depth counts the directory levels of a root-relative path.
func depth(rel string) int {
	if rel == "." {
		return 0
	}
	return strings.Count(rel, string(filepath.Separator)) + 1
}
