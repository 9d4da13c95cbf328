/*
 * Copyright (c) 2023-present unTill Pro, Ltd.
 */

package registry

// Registry maps interface name to its canonical, merge-complete record
type Registry map[string]*Record

// Struct fields are declared in sorted JSON-key order, which together
// with the sorted map keys of Registry keeps the serialized form
// canonical at every nesting level (see impl_export.go).

// Record is the unit the registry holds: one interface with all partial
// fragments and implements relations folded in
type Record struct {
	Attributes       []*Attribute    `json:"Attributes"`
	Consts           []*Const        `json:"Consts"`
	ExtAttributes    []*ExtAttribute `json:"ExtAttributes"`
	FilePath         string          `json:"FilePath"`
	Inherit          []*Inherit      `json:"Inherit"`
	Name             string          `json:"Name"`
	Operations       []*Operation    `json:"Operations"`
	PartialFilePaths []string        `json:"Partial_FilePaths,omitempty"`
}

type Const struct {
	ExtAttributes []*ExtAttribute `json:"ExtAttributes"`
	Name          string          `json:"Name"`
	Type          string          `json:"Type"`
	Value         string          `json:"Value"`
}

type Attribute struct {
	ExtAttributes []*ExtAttribute `json:"ExtAttributes"`
	Name          string          `json:"Name"`
	Readonly      bool            `json:"Readonly"`
	Static        bool            `json:"Static"`
	Type          string          `json:"Type"`
}

type Operation struct {
	Arguments     []*Argument     `json:"Arguments"`
	ExtAttributes []*ExtAttribute `json:"ExtAttributes"`
	Name          string          `json:"Name"`
	Static        bool            `json:"Static"`
	Type          string          `json:"Type"`
}

type Argument struct {
	Name string `json:"Name"`
	Type string `json:"Type"`
}

type ExtAttribute struct {
	Name string `json:"Name"`
}

type Inherit struct {
	Parent string `json:"Parent"`
}
