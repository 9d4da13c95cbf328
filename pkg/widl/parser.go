/*
 * Copyright (c) 2023-present unTill Pro, Ltd.
 */

package widl

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var idlLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `//[^\n]*|(?s:/\*.*?\*/)`},
	{Name: "String", Pattern: `"(\\"|[^"])*"`},
	{Name: "Float", Pattern: `[-+]?\d+\.\d+`},
	{Name: "Int", Pattern: `[-+]?(0[xX][0-9a-fA-F]+|\d+)`},
	{Name: "Ident", Pattern: `[a-zA-Z_]\w*`},
	{Name: "Punct", Pattern: `[\[\]{}();:,=<>?]`},
	{Name: "Whitespace", Pattern: `[ \r\n\t]+`},
})

func buildParser() *participle.Parser[DocumentAST] {
	return participle.MustBuild[DocumentAST](
		participle.Lexer(idlLexer),
		participle.Elide("Whitespace", "Comment"),
		participle.Unquote("String"),
		participle.UseLookahead(1024),
	)
}

func parseImpl(p *participle.Parser[DocumentAST], fileName string, content string) ([]INode, error) {
	ast, err := p.ParseString(fileName, content)
	if err != nil {
		return nil, err
	}
	return documentNodes(ast, fileName), nil
}
