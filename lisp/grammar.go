/*
Copyright (C) 2024  Carl-Philip Hänsch

	This program is free software: you can redistribute it and/or modify
	it under the terms of the GNU General Public License as published by
	the Free Software Foundation, either version 3 of the License, or
	(at your option) any later version.

	This program is distributed in the hope that it will be useful,
	but WITHOUT ANY WARRANTY; without even the implied warranty of
	MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
	GNU General Public License for more details.

	You should have received a copy of the GNU General Public License
	along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/
package lisp

import (
	"errors"
	"fmt"
)

/*
Grammar:

	number : /-?[0-9]+/ ;
	symbol : /[a-zA-Z0-9_+\-*\/\\=<>!&]+/ ;
	string : /"(\\.|[^"])*"/ ;
	sexpr  : '(' <expr>* ')' ;
	qexpr  : '{' <expr>* '}' ;
	expr   : <number> | <string> | <symbol> | <sexpr> | <qexpr> ;
	lipl   : /^/ <expr>* /$/ ;

Alternatives are tried in order, so "-5" is a number while "-" and "-x" are
symbols.
*/

// Node is one AST node. Tags are '|' separated rule names, innermost last.
type Node struct {
	Tag      string
	Contents string
	Children []*Node
	Line     int
	Col      int
}

const (
	TagRoot   = ">"
	TagAnchor = "regex"
	TagChar   = "char"
	TagNumber = "expr|number|regex"
	TagSymbol = "expr|symbol|regex"
	TagString = "expr|string|regex"
	TagSExpr  = "expr|sexpr|>"
	TagQExpr  = "expr|qexpr|>"
)

// ErrIncomplete marks input that ended inside a list or string; more input
// may complete it.
var ErrIncomplete = errors.New("expecting matching )")

type tokenKind uint8

const (
	tokNumber tokenKind = iota
	tokSymbol
	tokString
	tokOpen
	tokClose
)

type token struct {
	kind tokenKind
	text string
	line int
	col  int
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isSymbolChar(ch byte) bool {
	switch {
	case ch >= 'a' && ch <= 'z', ch >= 'A' && ch <= 'Z', isDigit(ch):
		return true
	}
	switch ch {
	case '_', '+', '-', '*', '/', '\\', '=', '<', '>', '!', '&':
		return true
	}
	return false
}

// Lexical Analysis
func tokenize(source, s string) ([]token, error) {
	line := 1
	col := 1
	result := make([]token, 0)
	i := 0
	advance := func(n int) {
		for k := 0; k < n; k++ {
			if s[i] == '\n' {
				line++
				col = 1
			} else {
				col++
			}
			i++
		}
	}
	for i < len(s) {
		ch := s[i]
		startLine, startCol := line, col
		switch {
		case ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n':
			advance(1)
		case ch == '(' || ch == '{':
			result = append(result, token{tokOpen, string(ch), startLine, startCol})
			advance(1)
		case ch == ')' || ch == '}':
			result = append(result, token{tokClose, string(ch), startLine, startCol})
			advance(1)
		case ch == '"':
			// scan up to the closing quote, skipping escaped characters
			j := i + 1
			for j < len(s) && s[j] != '"' {
				if s[j] == '\\' {
					j++
				}
				j++
			}
			if j >= len(s) {
				return nil, fmt.Errorf("%s:%d:%d: unterminated string: %w", source, startLine, startCol, ErrIncomplete)
			}
			result = append(result, token{tokString, s[i : j+1], startLine, startCol})
			advance(j + 1 - i)
		default:
			// number first, then symbol
			j := i
			if s[j] == '-' {
				j++
			}
			k := j
			for k < len(s) && isDigit(s[k]) {
				k++
			}
			if k > j {
				result = append(result, token{tokNumber, s[i:k], startLine, startCol})
				advance(k - i)
				continue
			}
			k = i
			for k < len(s) && isSymbolChar(s[k]) {
				k++
			}
			if k == i {
				return nil, fmt.Errorf("%s:%d:%d: unexpected character %q", source, startLine, startCol, ch)
			}
			result = append(result, token{tokSymbol, s[i:k], startLine, startCol})
			advance(k - i)
		}
	}
	return result, nil
}

// Parse turns program text into an AST rooted at a node tagged ">".
func Parse(source, s string) (*Node, error) {
	tokens, err := tokenize(source, s)
	if err != nil {
		return nil, err
	}
	root := &Node{Tag: TagRoot, Line: 1, Col: 1}
	root.Children = append(root.Children, &Node{Tag: TagAnchor, Line: 1, Col: 1})
	for len(tokens) > 0 {
		node, err := readFrom(source, &tokens)
		if err != nil {
			return nil, err
		}
		root.Children = append(root.Children, node)
	}
	root.Children = append(root.Children, &Node{Tag: TagAnchor})
	return root, nil
}

// Syntactic Analysis
func readFrom(source string, tokens *[]token) (*Node, error) {
	tok := (*tokens)[0]
	*tokens = (*tokens)[1:]
	switch tok.kind {
	case tokNumber:
		return &Node{Tag: TagNumber, Contents: tok.text, Line: tok.line, Col: tok.col}, nil
	case tokSymbol:
		return &Node{Tag: TagSymbol, Contents: tok.text, Line: tok.line, Col: tok.col}, nil
	case tokString:
		return &Node{Tag: TagString, Contents: tok.text, Line: tok.line, Col: tok.col}, nil
	case tokClose:
		return nil, fmt.Errorf("%s:%d:%d: unexpected %q", source, tok.line, tok.col, tok.text)
	}
	tag, closing := TagSExpr, ")"
	if tok.text == "{" {
		tag, closing = TagQExpr, "}"
	}
	node := &Node{Tag: tag, Line: tok.line, Col: tok.col}
	node.Children = append(node.Children, &Node{Tag: TagChar, Contents: tok.text, Line: tok.line, Col: tok.col})
	for {
		if len(*tokens) == 0 {
			return nil, fmt.Errorf("%s:%d:%d: %w", source, tok.line, tok.col, ErrIncomplete)
		}
		next := (*tokens)[0]
		if next.kind == tokClose {
			if next.text != closing {
				return nil, fmt.Errorf("%s:%d:%d: expected %q, got %q", source, next.line, next.col, closing, next.text)
			}
			*tokens = (*tokens)[1:]
			node.Children = append(node.Children, &Node{Tag: TagChar, Contents: next.text, Line: next.line, Col: next.col})
			return node, nil
		}
		child, err := readFrom(source, tokens)
		if err != nil {
			return nil, err
		}
		node.Children = append(node.Children, child)
	}
}
