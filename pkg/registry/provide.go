/*
 * Copyright (c) 2023-present unTill Pro, Ltd.
 */

package registry

import (
	"io"

	"github.com/voedger/idlcollect/pkg/widl"
)

// ParseFunc is the external parser collaborator: given a document path it
// returns the ordered top-level definition nodes of that document.
// It must be deterministic for a fixed path.
type ParseFunc func(path string) ([]widl.INode, error)

// Build collects every interface defined in the listed documents into a
// name-keyed registry, with partial fragments and implements relations
// folded in. Merging is append-only and applied exactly once per input
// set; call Build once per batch.
func Build(parse ParseFunc, paths []string) (Registry, error) {
	return buildImpl(parse, paths)
}

// Export writes the registry to w in its canonical textual form
func Export(reg Registry, w io.Writer) error {
	return exportImpl(reg, w)
}

// ExportFile writes the registry to the file at path, truncating it if it
// exists. No partial-write recovery: a failure mid-write leaves a
// truncated file and aborts the run.
func ExportFile(reg Registry, path string) error {
	return exportFileImpl(reg, path)
}
