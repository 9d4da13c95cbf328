/*
 * Copyright (c) 2023-present unTill Pro, Ltd.
 */

package registry

import (
	"fmt"

	"github.com/untillpro/goutils/logger"

	"github.com/voedger/idlcollect/pkg/widl"
)

// buildImpl parses every listed document exactly once and caches the node
// stream, then makes three collection passes over the cache: non-partial
// interfaces keyed by name, partial fragments grouped by base name in
// encounter order, implements relations in encounter order. Partial
// fragments are folded in first, implements relations after.
func buildImpl(parse ParseFunc, paths []string) (Registry, error) {
	docs := make([][]widl.INode, 0, len(paths))
	for _, path := range paths {
		nodes, err := parse(path)
		if err != nil {
			return nil, err
		}
		if logger.IsVerbose() {
			logger.Verbose(fmt.Sprintf("parsed %s: %d definitions", path, len(nodes)))
		}
		docs = append(docs, nodes)
	}

	reg := make(Registry)
	for _, nodes := range docs {
		for _, n := range nodes {
			if n.Class() == widl.ClassInterface && !n.HasProperty(widl.PropPartial) {
				rec, err := interfaceRecord(n)
				if err != nil {
					return nil, err
				}
				reg[rec.Name] = rec
			}
		}
	}

	partials := make(map[string][]*Record)
	for _, nodes := range docs {
		for _, n := range nodes {
			if n.Class() == widl.ClassInterface && n.HasProperty(widl.PropPartial) {
				rec, err := interfaceRecord(n)
				if err != nil {
					return nil, err
				}
				partials[rec.Name] = append(partials[rec.Name], rec)
			}
		}
	}

	relations := make([]widl.INode, 0)
	for _, nodes := range docs {
		for _, n := range nodes {
			if n.Class() == widl.ClassImplements {
				relations = append(relations, n)
			}
		}
	}

	return mergeImplements(mergePartials(reg, partials), relations)
}
