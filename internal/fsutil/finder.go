// Package fsutil provides file system helpers for flow discovery.
package fsutil

import (
	"io/fs"
	"path/filepath"
	"sort"
)

// FindFilesByExtension walks root and returns the full paths of all regular
// files with the given extension (e.g. ".hcl"), sorted lexically so the
// caller merges them in a stable order.
func FindFilesByExtension(root string, extension string) ([]string, error) {
	var found []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || filepath.Ext(path) != extension {
			return nil
		}
		found = append(found, path)
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(found)
	return found, nil
}
