/*
 * Copyright (c) 2023-present unTill Pro, Ltd.
 */

// Package pathlist reads and produces newline-delimited lists of source
// document paths consumed by the collector.
package pathlist

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/exp/slices"
)

// Read returns the paths listed in the file, one per line, blank lines
// skipped
func Read(path string) ([]string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	result := make([]string, 0)
	for _, line := range strings.Split(string(content), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			result = append(result, line)
		}
	}
	return result, nil
}

// Write writes the paths to the file at path, one per line
func Write(path string, paths []string) error {
	var sb strings.Builder
	for _, p := range paths {
		sb.WriteString(p)
		sb.WriteString("\n")
	}
	return os.WriteFile(path, []byte(sb.String()), 0644)
}

// Scan walks root and collects files with the given extension, skipping
// basenames listed in excludes. The result is sorted so a fixed tree
// always yields the same list.
func Scan(root string, ext string, excludes []string) ([]string, error) {
	result := make([]string, 0)
	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() {
			return nil
		}
		if filepath.Ext(path) != ext {
			return nil
		}
		if slices.Contains(excludes, filepath.Base(path)) {
			return nil
		}
		result = append(result, path)
		return nil
	})
	if err != nil {
		return nil, err
	}
	slices.Sort(result)
	return result, nil
}
