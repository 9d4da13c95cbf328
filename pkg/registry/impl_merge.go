/*
 * Copyright (c) 2023-present unTill Pro, Ltd.
 */

package registry

import (
	"golang.org/x/exp/slices"

	"github.com/voedger/idlcollect/pkg/widl"
)

// mergePartials folds partial fragments into their base records. For every
// fragment whose base exists the three member sequences are extended,
// fragment order preserved, base members first, and the fragment file path
// is appended to Partial_FilePaths. A fragment without a base is dropped:
// a partial interface is meaningless on its own, so this is tolerated
// data loss, not an error (asymmetric with mergeImplements).
// Extended attributes and inheritance do not propagate from fragments.
func mergePartials(reg Registry, partials map[string][]*Record) Registry {
	for name, fragments := range partials {
		base, ok := reg[name]
		if !ok {
			continue
		}
		for _, fragment := range fragments {
			base.Consts = append(base.Consts, fragment.Consts...)
			base.Attributes = append(base.Attributes, fragment.Attributes...)
			base.Operations = append(base.Operations, fragment.Operations...)
			base.PartialFilePaths = append(base.PartialFilePaths, fragment.FilePath)
		}
	}
	return reg
}

// memberSet is a pre-merge snapshot of one record's member sequences
type memberSet struct {
	consts     []*Const
	attributes []*Attribute
	operations []*Operation
}

// mergeImplements extends every relation target with the members of the
// referenced interface. Members come from a snapshot taken before any
// relation is applied, so relations never chain within one pass and the
// output does not depend on relation order. A relation without a
// REFERENCE property contributes nothing and is skipped; a relation
// naming an interface missing from the registry is an error — the
// relation is assumed well-formed by the upstream grammar, unlike the
// tolerated orphan fragments of mergePartials.
func mergeImplements(reg Registry, relations []widl.INode) (Registry, error) {
	snapshot := make(map[string]memberSet, len(reg))
	for name, rec := range reg {
		snapshot[name] = memberSet{
			consts:     slices.Clone(rec.Consts),
			attributes: slices.Clone(rec.Attributes),
			operations: slices.Clone(rec.Operations),
		}
	}
	for _, relation := range relations {
		reference := relation.Property(widl.PropReference)
		if reference == "" {
			continue
		}
		target, ok := reg[relation.Name()]
		if !ok {
			return nil, ErrUnknownInterface(relation.Name())
		}
		source, ok := snapshot[reference]
		if !ok {
			return nil, ErrUnknownInterface(reference)
		}
		target.Consts = append(target.Consts, source.consts...)
		target.Attributes = append(target.Attributes, source.attributes...)
		target.Operations = append(target.Operations, source.operations...)
	}
	return reg, nil
}
