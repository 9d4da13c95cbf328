/*
 * Copyright (c) 2023-present unTill Pro, Ltd.
 */

package widl

// INode is the capability surface of one node of a parsed IDL document tree.
//
// Consumers navigate the tree through class tags and child kinds only, so
// they can be exercised against fixture nodes without a real parser.
type INode interface {
	// Class returns the node class tag, e.g. "Interface" or "Implements"
	Class() string

	// Name returns the declared name of the node, "" when anonymous
	Name() string

	// Property returns the value of the named property, "" when absent.
	// Marker properties (Partial, READONLY, ...) carry an empty value,
	// use HasProperty to test for them.
	Property(key string) string

	// HasProperty reports whether the named property is set
	HasProperty(key string) bool

	// OneOf returns the first child of the given class, nil when absent
	OneOf(kind string) INode

	// ListOf returns all children of the given class, in declaration order
	ListOf(kind string) []INode

	// Children returns all children in declaration order
	Children() []INode
}
