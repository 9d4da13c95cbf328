/*
 * Copyright (c) 2023-present unTill Pro, Ltd.
 */

package widl

// node is the produced tree element behind INode
type node struct {
	class    string
	name     string
	props    map[string]string
	children []*node
}

func newNode(class, name string) *node {
	return &node{class: class, name: name}
}

func (n *node) setProp(key, value string) *node {
	if n.props == nil {
		n.props = make(map[string]string)
	}
	n.props[key] = value
	return n
}

func (n *node) markProp(key string, set bool) *node {
	if set {
		n.setProp(key, "")
	}
	return n
}

func (n *node) add(children ...*node) *node {
	n.children = append(n.children, children...)
	return n
}

func (n *node) Class() string { return n.class }
func (n *node) Name() string  { return n.name }

func (n *node) Property(key string) string { return n.props[key] }

func (n *node) HasProperty(key string) bool {
	_, ok := n.props[key]
	return ok
}

func (n *node) OneOf(kind string) INode {
	for _, c := range n.children {
		if c.class == kind {
			return c
		}
	}
	return nil
}

func (n *node) ListOf(kind string) []INode {
	result := make([]INode, 0)
	for _, c := range n.children {
		if c.class == kind {
			result = append(result, c)
		}
	}
	return result
}

func (n *node) Children() []INode {
	result := make([]INode, 0, len(n.children))
	for _, c := range n.children {
		result = append(result, c)
	}
	return result
}

// documentNodes lowers the parsed AST of one document into the generic
// node tree. Every top-level definition node carries FILENAME.
func documentNodes(ast *DocumentAST, fileName string) []INode {
	result := make([]INode, 0, len(ast.Definitions))
	for i := range ast.Definitions {
		def := &ast.Definitions[i]
		var n *node
		switch {
		case def.Interface != nil:
			n = interfaceNode(def.Interface)
		case def.Implements != nil:
			n = implementsNode(def.Implements)
		default:
			continue
		}
		n.setProp(PropFilename, fileName)
		result = append(result, n)
	}
	return result
}

func interfaceNode(def *InterfaceDef) *node {
	n := newNode(ClassInterface, def.Name)
	n.markProp(PropPartial, def.Partial)
	if def.ExtAttrs != nil {
		n.add(extAttributesNode(def.ExtAttrs))
	}
	if def.Inherits != nil {
		n.add(newNode(ClassInherit, *def.Inherits))
	}
	for i := range def.Members {
		m := &def.Members[i]
		switch {
		case m.Const != nil:
			n.add(constNode(m.Const))
		case m.Attribute != nil:
			n.add(attributeNode(m.Attribute))
		case m.Operation != nil:
			n.add(operationNode(m.Operation))
		}
	}
	return n
}

func implementsNode(def *ImplementsDef) *node {
	return newNode(ClassImplements, def.Target).setProp(PropReference, def.Reference)
}

// constNode places the type and the value as the first and the second
// child of the Const node, consumers read them positionally
func constNode(def *ConstDef) *node {
	n := newNode(ClassConst, def.Name)
	n.add(newNode(ClassType, def.Type.String()))
	n.add(newNode(ClassValue, def.Value))
	if def.ExtAttrs != nil {
		n.add(extAttributesNode(def.ExtAttrs))
	}
	return n
}

func attributeNode(def *AttributeDef) *node {
	n := newNode(ClassAttribute, def.Name)
	n.markProp(PropReadonly, def.Readonly)
	n.markProp(PropStatic, def.Static)
	if def.ExtAttrs != nil {
		n.add(extAttributesNode(def.ExtAttrs))
	}
	n.add(typeNode(def.Type))
	return n
}

func operationNode(def *OperationDef) *node {
	n := newNode(ClassOperation, def.Name)
	n.markProp(PropStatic, def.Static)
	n.markProp(PropGetter, def.Getter)
	n.markProp(PropSetter, def.Setter)
	n.markProp(PropDeleter, def.Deleter)
	if def.ExtAttrs != nil {
		n.add(extAttributesNode(def.ExtAttrs))
	}
	args := newNode(ClassArguments, "")
	for i := range def.Arguments {
		arg := &def.Arguments[i]
		args.add(newNode(ClassArgument, arg.Name).add(typeNode(arg.Type)))
	}
	n.add(args)
	n.add(typeNode(def.Type))
	return n
}

// typeNode wraps the declared type name: the Type node itself is a
// container, its first child carries the name
func typeNode(t TypeRef) *node {
	return newNode(ClassType, "").add(newNode(ClassTyperef, t.String()))
}

func extAttributesNode(block *ExtAttrBlock) *node {
	n := newNode(ClassExtAttributes, "")
	for i := range block.Attrs {
		n.add(newNode(ClassExtAttribute, block.Attrs[i].Name))
	}
	return n
}
