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
	"strconv"
	"strings"
)

// Read converts an AST node into a Value. It never evaluates anything.
func Read(n *Node) Value {
	switch {
	case strings.Contains(n.Tag, "number"):
		return readNumber(n)
	case strings.Contains(n.Tag, "symbol"):
		return Symbol(n.Contents)
	case strings.Contains(n.Tag, "string"):
		return readString(n)
	}

	var cells []Value
	for _, child := range n.Children {
		switch child.Contents {
		case "(", ")", "{", "}":
			continue
		}
		if child.Tag == TagAnchor {
			continue
		}
		cells = append(cells, Read(child))
	}
	if strings.Contains(n.Tag, "qexpr") {
		return &QExpr{Cells: cells}
	}
	// root ">" and sexpr
	return &SExpr{Cells: cells}
}

func readNumber(n *Node) Value {
	x, err := strconv.ParseInt(n.Contents, 10, 64)
	if err != nil {
		return Error("Invalid Number")
	}
	return Number(x)
}

func readString(n *Node) Value {
	s := n.Contents
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	return String(stringUnescaper.Replace(s))
}

// ReadString parses and reads a whole program. The result is the root SExpr
// holding every top level expression.
func ReadString(source, s string) (Value, error) {
	node, err := Parse(source, s)
	if err != nil {
		return nil, err
	}
	return Read(node), nil
}
