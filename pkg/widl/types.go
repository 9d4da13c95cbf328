/*
 * Copyright (c) 2023-present unTill Pro, Ltd.
 */

package widl

// Grammar of the consumed Web IDL subset. Covers interface and implements
// definitions with const, attribute and operation members, special
// accessor operations (getter/setter/deleter), static and readonly
// modifiers, extended attribute blocks, inheritance and argument lists.

type DocumentAST struct {
	Definitions []DefinitionNode `parser:"@@*"`
}

type DefinitionNode struct {
	Interface  *InterfaceDef  `parser:"@@"`
	Implements *ImplementsDef `parser:"| @@"`
}

type InterfaceDef struct {
	ExtAttrs *ExtAttrBlock `parser:"@@?"`
	Partial  bool          `parser:"@'partial'?"`
	Name     string        `parser:"'interface' @Ident"`
	Inherits *string       `parser:"(':' @Ident)?"`
	Members  []MemberDef   `parser:"'{' @@* '}' ';'"`
}

type ImplementsDef struct {
	Target    string `parser:"@Ident 'implements'"`
	Reference string `parser:"@Ident ';'"`
}

type MemberDef struct {
	Const     *ConstDef     `parser:"@@"`
	Attribute *AttributeDef `parser:"| @@"`
	Operation *OperationDef `parser:"| @@"`
}

type ConstDef struct {
	ExtAttrs *ExtAttrBlock `parser:"@@?"`
	Type     TypeRef       `parser:"'const' @@"`
	Name     string        `parser:"@Ident"`
	Value    string        `parser:"'=' @(Ident | Int | Float | String) ';'"`
}

type AttributeDef struct {
	ExtAttrs *ExtAttrBlock `parser:"@@?"`
	Static   bool          `parser:"@'static'?"`
	Readonly bool          `parser:"@'readonly'?"`
	Type     TypeRef       `parser:"'attribute' @@"`
	Name     string        `parser:"@Ident ';'"`
}

type OperationDef struct {
	ExtAttrs  *ExtAttrBlock `parser:"@@?"`
	Static    bool          `parser:"@'static'?"`
	Getter    bool          `parser:"@'getter'?"`
	Setter    bool          `parser:"@'setter'?"`
	Deleter   bool          `parser:"@'deleter'?"`
	Type      TypeRef       `parser:"@@"`
	Name      string        `parser:"@Ident?"`
	Arguments []ArgumentDef `parser:"'(' (@@ (',' @@)*)? ')' ';'"`
}

type ArgumentDef struct {
	Optional bool    `parser:"@'optional'?"`
	Type     TypeRef `parser:"@@"`
	Name     string  `parser:"@Ident"`
}

type ExtAttrBlock struct {
	Attrs []ExtAttrDef `parser:"'[' @@ (',' @@)* ']'"`
}

type ExtAttrDef struct {
	Name  string `parser:"@Ident"`
	Value string `parser:"('=' @(Ident | Int | String))?"`
}

// TypeRef captures the declared type of a member. Multi-word primitive
// types ("unsigned long long") are reassembled by String.
type TypeRef struct {
	Unsigned bool   `parser:"@'unsigned'?"`
	Name     string `parser:"@Ident"`
	Long     bool   `parser:"@'long'?"`
	Nullable bool   `parser:"@'?'?"`
}

func (t TypeRef) String() string {
	s := t.Name
	if t.Long {
		s += " long"
	}
	if t.Unsigned {
		s = "unsigned " + s
	}
	return s
}
