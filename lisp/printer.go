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
	"bytes"
	"io"
	"strconv"
	"strings"
)

var stringEscaper = strings.NewReplacer(
	"\\", "\\\\",
	"\"", "\\\"",
	"'", "\\'",
	"\a", "\\a",
	"\b", "\\b",
	"\f", "\\f",
	"\n", "\\n",
	"\r", "\\r",
	"\t", "\\t",
	"\v", "\\v",
	"\x00", "\\0",
)

var stringUnescaper = strings.NewReplacer(
	"\\\\", "\\",
	"\\\"", "\"",
	"\\'", "'",
	"\\a", "\a",
	"\\b", "\b",
	"\\f", "\f",
	"\\n", "\n",
	"\\r", "\r",
	"\\t", "\t",
	"\\v", "\v",
	"\\0", "\x00",
)

// Sprint returns the canonical textual form of v.
func Sprint(v Value) string {
	var b bytes.Buffer
	Serialize(&b, v)
	return b.String()
}

func Print(w io.Writer, v Value) error {
	_, err := io.WriteString(w, Sprint(v))
	return err
}

func Println(w io.Writer, v Value) error {
	_, err := io.WriteString(w, Sprint(v)+"\n")
	return err
}

func Serialize(b *bytes.Buffer, v Value) {
	switch x := v.(type) {
	case Number:
		b.WriteString(strconv.FormatInt(int64(x), 10))
	case Error:
		b.WriteString("Error: ")
		b.WriteString(string(x))
	case Symbol:
		b.WriteString(string(x))
	case String:
		b.WriteByte('"')
		b.WriteString(stringEscaper.Replace(string(x)))
		b.WriteByte('"')
	case *SExpr:
		serializeCells(b, x.Cells, '(', ')')
	case *QExpr:
		serializeCells(b, x.Cells, '{', '}')
	case *Builtin:
		b.WriteString("<builtin>")
	case *Lambda:
		b.WriteString("(\\ ")
		Serialize(b, x.Formals)
		b.WriteByte(' ')
		Serialize(b, x.Body)
		b.WriteByte(')')
	default:
		b.WriteString("<unknown>")
	}
}

func serializeCells(b *bytes.Buffer, cells []Value, opening, closing byte) {
	b.WriteByte(opening)
	for i, c := range cells {
		if i > 0 {
			b.WriteByte(' ')
		}
		Serialize(b, c)
	}
	b.WriteByte(closing)
}
