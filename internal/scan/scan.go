// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package scan enumerates candidate icon definition files in a source tree.
package scan

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
)

// Sources walks root recursively and returns every regular file whose
// name carries the suffix ext, sorted lexically. The sort pins traversal
// order so downstream output is byte-stable across runs.
func Sources(root, ext string) ([]string, error) {
	var paths []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !strings.HasSuffix(d.Name(), ext) {
			return nil
		}
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking source tree %s: %w", root, err)
	}

	sort.Strings(paths)
	return paths, nil
}
