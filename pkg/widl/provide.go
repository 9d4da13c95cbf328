/*
 * Copyright (c) 2023-present unTill Pro, Ltd.
 */

package widl

import (
	"os"

	"github.com/alecthomas/participle/v2"
)

// Parser parses Web IDL documents into generic node trees.
// Build it once with New and reuse it for every document.
type Parser struct {
	p *participle.Parser[DocumentAST]
}

func New() *Parser {
	return &Parser{p: buildParser()}
}

// Parse parses the content of a single document and returns its top-level
// definition nodes in declaration order
func (p *Parser) Parse(fileName string, content string) ([]INode, error) {
	return parseImpl(p.p, fileName, content)
}

// ParseFile reads and parses the document at path. The path is recorded
// as the FILENAME property of every returned definition node.
func (p *Parser) ParseFile(path string) ([]INode, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return p.Parse(path, string(content))
}
