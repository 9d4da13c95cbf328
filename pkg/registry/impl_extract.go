/*
 * Copyright (c) 2023-present unTill Pro, Ltd.
 */

package registry

import (
	"strings"

	"github.com/voedger/idlcollect/pkg/widl"
)

// interfaceRecord lowers one raw interface node into a canonical record.
// Member slices are always non-nil so they serialize as [].
func interfaceRecord(n widl.INode) (*Record, error) {
	filePath, err := relativePath(n.Property(widl.PropFilename))
	if err != nil {
		return nil, err
	}
	rec := &Record{
		Attributes:    make([]*Attribute, 0),
		Consts:        make([]*Const, 0),
		ExtAttributes: extAttrRecords(n),
		FilePath:      filePath,
		Inherit:       inheritRecords(n),
		Name:          n.Name(),
		Operations:    make([]*Operation, 0),
	}
	for _, c := range n.ListOf(widl.ClassConst) {
		member, err := constRecord(c)
		if err != nil {
			return nil, err
		}
		rec.Consts = append(rec.Consts, member)
	}
	for _, a := range n.ListOf(widl.ClassAttribute) {
		member, err := attributeRecord(a)
		if err != nil {
			return nil, err
		}
		rec.Attributes = append(rec.Attributes, member)
	}
	for _, o := range n.ListOf(widl.ClassOperation) {
		member, err := operationRecord(o)
		if err != nil {
			return nil, err
		}
		rec.Operations = append(rec.Operations, member)
	}
	return rec, nil
}

// constRecord reads the type and the value from the first two children of
// the Const node
func constRecord(n widl.INode) (*Const, error) {
	children := n.Children()
	if len(children) < 2 {
		return nil, ErrMalformedConst(n.Name())
	}
	return &Const{
		ExtAttributes: extAttrRecords(n),
		Name:          n.Name(),
		Type:          children[0].Name(),
		Value:         children[1].Name(),
	}, nil
}

func attributeRecord(n widl.INode) (*Attribute, error) {
	typ, err := typeName(n)
	if err != nil {
		return nil, err
	}
	return &Attribute{
		ExtAttributes: extAttrRecords(n),
		Name:          n.Name(),
		Readonly:      n.HasProperty(widl.PropReadonly),
		Static:        n.HasProperty(widl.PropStatic),
		Type:          typ,
	}, nil
}

func operationRecord(n widl.INode) (*Operation, error) {
	args, err := argumentRecords(n)
	if err != nil {
		return nil, err
	}
	typ, err := typeName(n)
	if err != nil {
		return nil, err
	}
	return &Operation{
		Arguments:     args,
		ExtAttributes: extAttrRecords(n),
		Name:          operationName(n),
		Static:        n.HasProperty(widl.PropStatic),
		Type:          typ,
	}, nil
}

// operationName substitutes the sentinel name for special accessors,
// getter first, then setter, then deleter
func operationName(n widl.INode) string {
	switch {
	case n.HasProperty(widl.PropGetter):
		return GetterName
	case n.HasProperty(widl.PropSetter):
		return SetterName
	case n.HasProperty(widl.PropDeleter):
		return DeleterName
	}
	return n.Name()
}

func argumentRecords(n widl.INode) ([]*Argument, error) {
	argsNode := n.OneOf(widl.ClassArguments)
	if argsNode == nil {
		return nil, ErrMissingArguments(n.Name())
	}
	result := make([]*Argument, 0)
	for _, a := range argsNode.ListOf(widl.ClassArgument) {
		typ, err := typeName(a)
		if err != nil {
			return nil, err
		}
		result = append(result, &Argument{Name: a.Name(), Type: typ})
	}
	return result, nil
}

// typeName reads the declared type name from the first child of the
// node's Type child. The name is not resolved to a definition.
func typeName(n widl.INode) (string, error) {
	t := n.OneOf(widl.ClassType)
	if t == nil {
		return "", ErrMissingType(strings.ToLower(n.Class()), n.Name())
	}
	children := t.Children()
	if len(children) == 0 {
		return "", ErrMissingType(strings.ToLower(n.Class()), n.Name())
	}
	return children[0].Name(), nil
}

func extAttrRecords(n widl.INode) []*ExtAttribute {
	result := make([]*ExtAttribute, 0)
	if block := n.OneOf(widl.ClassExtAttributes); block != nil {
		for _, ea := range block.ListOf(widl.ClassExtAttribute) {
			result = append(result, &ExtAttribute{Name: ea.Name()})
		}
	}
	return result
}

func inheritRecords(n widl.INode) []*Inherit {
	result := make([]*Inherit, 0)
	for _, in := range n.ListOf(widl.ClassInherit) {
		result = append(result, &Inherit{Parent: in.Name()})
	}
	return result
}
