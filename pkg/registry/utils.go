/*
 * Copyright (c) 2023-present unTill Pro, Ltd.
 */

package registry

import (
	"os"
	"path/filepath"
	"strings"
)

// relativePath converts the defining document path to a path relative to
// the current working directory and trims the project root cutset from
// both ends (see the rootPathCutset note in consts.go)
func relativePath(fileName string) (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	abs, err := filepath.Abs(fileName)
	if err != nil {
		return "", err
	}
	rel, err := filepath.Rel(wd, abs)
	if err != nil {
		return "", err
	}
	return strings.Trim(rel, rootPathCutset), nil
}
