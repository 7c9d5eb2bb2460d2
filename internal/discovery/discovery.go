// Package discovery locates prediction files under a root directory.
package discovery

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// IsPredictionFile reports whether a file name looks like a prediction file.
func IsPredictionFile(name string) bool {
	return strings.HasSuffix(name, ".json") || strings.HasSuffix(name, ".json.gz")
}

// Discover walks the given root directory and returns all prediction files
// (*.json and *.json.gz), sorted by path. Hidden directories and dependency
// folders are skipped.
func Discover(root string) ([]string, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving root path: %w", err)
	}

	// Verify root exists before walking
	if _, err := os.Stat(absRoot); err != nil {
		return nil, fmt.Errorf("root path: %w", err)
	}

	var files []string

	err = filepath.WalkDir(absRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil // skip inaccessible entries
		}

		// Skip hidden directories
		if d.IsDir() && path != absRoot && strings.HasPrefix(d.Name(), ".") {
			return fs.SkipDir
		}

		// Skip node_modules and similar
		if d.IsDir() && (d.Name() == "node_modules" || d.Name() == "vendor") {
			return fs.SkipDir
		}

		if !d.IsDir() && IsPredictionFile(d.Name()) {
			files = append(files, path)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", absRoot, err)
	}

	sort.Strings(files)
	return files, nil
}
