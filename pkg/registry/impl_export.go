/*
 * Copyright (c) 2023-present unTill Pro, Ltd.
 */

package registry

import (
	"encoding/json"
	"io"
	"os"
)

// exportImpl writes the registry as canonical JSON: UTF-8, 4-space
// indent, object keys sorted lexicographically at every nesting level.
// encoding/json emits map keys sorted; the record structs declare their
// fields in sorted JSON-key order (types.go), so equal registries always
// serialize to byte-identical output.
func exportImpl(reg Registry, w io.Writer) error {
	data, err := json.MarshalIndent(reg, "", "    ")
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

func exportFileImpl(reg Registry, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return exportImpl(reg, f)
}
