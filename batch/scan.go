// Copyright 2026 The GeoRect Authors
// SPDX-License-Identifier: Apache-2.0

package batch

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

var (
	geojsonExtensions = []string{".geojson", ".json"}
	tableExtensions   = []string{".csv", ".xlsx", ".xls"}
)

// ScanDir lists the files directly under dir whose extension matches exts
// (case-insensitive), sorted by name so runs are deterministic.
func ScanDir(dir string, exts []string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", dir, err)
	}

	var files []string

	for _, e := range entries {
		if e.IsDir() {
			continue
		}

		if slices.Contains(exts, strings.ToLower(filepath.Ext(e.Name()))) {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("%w under %s", ErrNoInputFiles, dir)
	}

	slices.Sort(files)

	return files, nil
}

// Stat-level checks shared by both modes.
func checkFile(path string) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return fmt.Errorf("%w: %s", ErrFileNotFound, path)
	} else if err != nil {
		return fmt.Errorf("checking %s: %w", path, err)
	}

	if info.Size() == 0 {
		return fmt.Errorf("%w: %s", ErrEmptyFile, filepath.Base(path))
	}

	return nil
}
