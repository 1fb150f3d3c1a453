// Package crawler discovers Java source files under a project root.
package crawler

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// SourceUnit is one Java file to generate tests for. It is read-only:
// created here, never mutated downstream.
type SourceUnit struct {
	Path    string // absolute or root-relative path as walked
	RelPath string // path relative to the scanned root, slash-separated
	Content string
}

// Crawler scans a directory for candidate source files.
type Crawler struct {
	skipGlobs []string
	ignored   []string
}

// NewCrawler creates a new crawler instance. skipGlobs are doublestar
// patterns matched against both the base name and the root-relative
// path; matching files are skipped (existing tests, bootstrap classes).
func NewCrawler(skipGlobs []string) *Crawler {
	return &Crawler{
		skipGlobs: skipGlobs,
		ignored:   []string{".git", "target", "build", "node_modules"},
	}
}

// ScanProject walks the root directory and streams every candidate file
// through the callback, preventing large memory buildup. Unreadable
// files are skipped; the walk itself failing is the only error returned.
func (c *Crawler) ScanProject(root string, onUnit func(*SourceUnit)) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		// Skip ignored directories
		if d.IsDir() {
			for _, ign := range c.ignored {
				if d.Name() == ign {
					return filepath.SkipDir
				}
			}
			return nil
		}

		if !strings.HasSuffix(d.Name(), ".java") {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			rel = d.Name()
		}
		rel = filepath.ToSlash(rel)

		if c.skipped(d.Name(), rel) {
			return nil
		}

		content, err := os.ReadFile(path)
		if err != nil {
			// Log-free skip: an unreadable file should not fail the scan.
			return nil
		}

		onUnit(&SourceUnit{Path: path, RelPath: rel, Content: string(content)})
		return nil
	})
}

func (c *Crawler) skipped(name, rel string) bool {
	for _, glob := range c.skipGlobs {
		if ok, err := doublestar.Match(glob, name); err == nil && ok {
			return true
		}
		if ok, err := doublestar.Match(glob, rel); err == nil && ok {
			return true
		}
	}
	return false
}
