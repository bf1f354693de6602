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

import "fmt"

// Value is the closed set of runtime values. Only the types in this file
// implement it.
type Value interface {
	Kind() Kind
	isValue()
}

type Kind uint8

const (
	KindNumber Kind = iota
	KindError
	KindSymbol
	KindString
	KindSExpr
	KindQExpr
	KindFunction
)

func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "Number"
	case KindError:
		return "Error"
	case KindSymbol:
		return "Symbol"
	case KindString:
		return "String"
	case KindSExpr:
		return "S-Expression"
	case KindQExpr:
		return "Q-Expression"
	case KindFunction:
		return "Function"
	}
	return "Unknown type"
}

// TypeName is the human readable kind used in error messages.
func TypeName(v Value) string {
	if v == nil {
		return "Unknown type"
	}
	return v.Kind().String()
}

type Number int64
type Error string
type Symbol string
type String string

// SExpr is an evaluable list.
type SExpr struct {
	Cells []Value
}

// QExpr is a quoted list that is never evaluated on its own.
type QExpr struct {
	Cells []Value
}

// Builtin is a native function. Two builtins are equal iff they point to the
// same declaration.
type Builtin struct {
	decl *Declaration
}

// Lambda is a user defined function. Env holds the already bound formals,
// Formals the ones that are still open.
type Lambda struct {
	Env     *Env
	Formals *QExpr
	Body    *QExpr
}

func (Number) Kind() Kind { return KindNumber }
func (Error) Kind() Kind { return KindError }
func (Symbol) Kind() Kind { return KindSymbol }
func (String) Kind() Kind { return KindString }
func (*SExpr) Kind() Kind { return KindSExpr }
func (*QExpr) Kind() Kind { return KindQExpr }
func (*Builtin) Kind() Kind { return KindFunction }
func (*Lambda) Kind() Kind { return KindFunction }
func (Number) isValue() {}
func (Error) isValue() {}
func (Symbol) isValue() {}
func (String) isValue() {}
func (*SExpr) isValue() {}
func (*QExpr) isValue() {}
func (*Builtin) isValue() {}
func (*Lambda) isValue() {}

//
// Constructors
//

func NewNumber(n int64) Value { return Number(n) }
func NewError(msg string) Value { return Error(msg) }
func NewSymbol(name string) Value { return Symbol(name) }
func NewString(s string) Value { return String(s) }

func Errorf(format string, a ...any) Value {
	return Error(fmt.Sprintf(format, a...))
}

func NewSExpr(cells ...Value) *SExpr {
	return &SExpr{Cells: cells}
}

func NewQExpr(cells ...Value) *QExpr {
	return &QExpr{Cells: cells}
}

func NewBuiltin(decl *Declaration) *Builtin {
	return &Builtin{decl: decl}
}

// Declaration returns the catalogue entry behind a builtin.
func (b *Builtin) Declaration() *Declaration {
	return b.decl
}

const variadicMarker = Symbol("&")

// NewLambda builds a lambda with a fresh parentless environment. formals must
// be symbols only and may contain a single & directly before the last symbol;
// other shapes yield an Error.
func NewLambda(formals, body *QExpr) Value {
	for _, f := range formals.Cells {
		if _, ok := f.(Symbol); !ok {
			return Errorf("Cannot define non-symbol. Got %s, expected %s.", TypeName(f), KindSymbol)
		}
	}
	for i, f := range formals.Cells {
		if f == variadicMarker && i != len(formals.Cells)-2 {
			return Error("Function format invalid. Symbol '&' not followed by single symbol.")
		}
	}
	return &Lambda{
		Env:     NewEnv(nil),
		Formals: Copy(formals).(*QExpr),
		Body:    Copy(body).(*QExpr),
	}
}

//
// Accessors
//

// IsError reports whether v is an Error value.
func IsError(v Value) bool {
	_, ok := v.(Error)
	return ok
}

// Truthy is the condition rule of if: a non-zero Number.
func Truthy(v Value) bool {
	n, ok := v.(Number)
	return ok && n != 0
}

func boolNumber(b bool) Value {
	if b {
		return Number(1)
	}
	return Number(0)
}

//
// Copy & equality
//

// Copy returns a deep copy of v. Builtins are shared since their identity is
// what makes them equal.
func Copy(v Value) Value {
	switch x := v.(type) {
	case *SExpr:
		return &SExpr{Cells: copyCells(x.Cells)}
	case *QExpr:
		return &QExpr{Cells: copyCells(x.Cells)}
	case *Lambda:
		return &Lambda{
			Env:     x.Env.Copy(),
			Formals: &QExpr{Cells: copyCells(x.Formals.Cells)},
			Body:    &QExpr{Cells: copyCells(x.Body.Cells)},
		}
	default:
		// Number, Error, Symbol, String are immutable; *Builtin is shared
		return v
	}
}

func copyCells(cells []Value) []Value {
	if cells == nil {
		return nil
	}
	result := make([]Value, len(cells))
	for i, c := range cells {
		result[i] = Copy(c)
	}
	return result
}

// Equal compares structurally. Lambdas compare formals and body, never their
// captured environment.
func Equal(a, b Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Kind() != b.Kind() {
		return false
	}
	switch a_ := a.(type) {
	case Number, Error, Symbol, String:
		return a == b
	case *SExpr:
		return cellsEqual(a_.Cells, b.(*SExpr).Cells)
	case *QExpr:
		return cellsEqual(a_.Cells, b.(*QExpr).Cells)
	case *Builtin:
		b_, ok := b.(*Builtin)
		return ok && a_.decl == b_.decl
	case *Lambda:
		b_, ok := b.(*Lambda)
		return ok && cellsEqual(a_.Formals.Cells, b_.Formals.Cells) && cellsEqual(a_.Body.Cells, b_.Body.Cells)
	}
	return false
}

func cellsEqual(a, b []Value) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}
