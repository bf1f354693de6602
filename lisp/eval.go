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
	"fmt"
	"time"
)

/*
 Eval / Apply
*/

// Eval reduces v in en. Only symbols and s-expressions are reducible;
// everything else is returned as is.
func Eval(en *Env, v Value) Value {
	switch x := v.(type) {
	case Symbol:
		return en.Lookup(x)
	case *SExpr:
		return evalSExpr(en, x)
	}
	return v
}

func evalSExpr(en *Env, v *SExpr) Value {
	if len(v.Cells) == 0 {
		return v
	}
	// left to right; the first error wins and the rest is never evaluated
	cells := make([]Value, len(v.Cells))
	for i, c := range v.Cells {
		cells[i] = Eval(en, c)
		if IsError(cells[i]) {
			return cells[i]
		}
	}
	if len(cells) == 1 {
		return Eval(en, cells[0])
	}
	switch cells[0].(type) {
	case *Builtin, *Lambda:
		return Apply(en, cells[0], cells[1:])
	}
	return Errorf("S-Expression starts with incorrect type. Got %s, expected %s.", TypeName(cells[0]), KindFunction)
}

// EvalAll parses a whole program and evaluates its top level expressions one
// after another. Only grammar failures are reported as error.
func EvalAll(en *Env, source, s string) (Value, error) {
	program, err := ReadString(source, s)
	if err != nil {
		return nil, err
	}
	var result Value = &SExpr{}
	for _, expr := range program.(*SExpr).Cells {
		result = Eval(en, expr)
	}
	return result, nil
}

// Apply calls fn with already evaluated args. en is the calling environment.
func Apply(en *Env, fn Value, args []Value) (result Value) {
	var name, cat string
	switch f := fn.(type) {
	case *Builtin:
		name, cat = f.decl.Name, "builtin"
	case *Lambda:
		name, cat = Sprint(f.Formals), "lambda"
	default:
		return Errorf("S-Expression starts with incorrect type. Got %s, expected %s.", TypeName(fn), KindFunction)
	}
	if Trace == nil && !TracePrint {
		return apply(en, fn, args)
	}
	var start time.Time
	if TracePrint {
		start = time.Now()
	}
	if Trace != nil {
		Trace.Duration(name, cat, func() {
			result = apply(en, fn, args)
		})
	} else {
		result = apply(en, fn, args)
	}
	if TracePrint {
		fmt.Println("trace", time.Since(start).String(), cat, name)
	}
	return
}

func apply(en *Env, fn Value, args []Value) Value {
	switch f := fn.(type) {
	case *Builtin:
		return f.decl.Call(en, args)
	case *Lambda:
		return applyLambda(en, f, args)
	}
	return Errorf("S-Expression starts with incorrect type. Got %s, expected %s.", TypeName(fn), KindFunction)
}

func formalSymbol(v Value) (Symbol, Value) {
	if sym, ok := v.(Symbol); ok {
		return sym, nil
	}
	return "", Errorf("Cannot define non-symbol. Got %s, expected %s.", TypeName(v), KindSymbol)
}

func applyLambda(en *Env, f *Lambda, args []Value) Value {
	given := len(args)
	total := len(f.Formals.Cells)

	// bind into a private copy so the callee value stays untouched
	fn := Copy(f).(*Lambda)
	formals := fn.Formals.Cells

	for len(args) > 0 {
		if len(formals) == 0 {
			return Errorf("Function passed too many arguments. Got %d, expected %d.", given, total)
		}
		sym, bad := formalSymbol(formals[0])
		if bad != nil {
			return bad
		}
		formals = formals[1:]

		if sym == variadicMarker {
			if len(formals) != 1 {
				return Error("Function format invalid. Symbol '&' not followed by single symbol.")
			}
			rest, bad := formalSymbol(formals[0])
			if bad != nil {
				return bad
			}
			fn.Env.SetLocal(rest, &QExpr{Cells: args})
			formals = formals[1:]
			break
		}

		fn.Env.SetLocal(sym, args[0])
		args = args[1:]
	}

	// & left open with no variadic arguments supplied: bind the empty list
	if len(formals) > 0 && formals[0] == variadicMarker {
		if len(formals) != 2 {
			return Error("Function format invalid. Symbol '&' not followed by single symbol.")
		}
		rest, bad := formalSymbol(formals[1])
		if bad != nil {
			return bad
		}
		fn.Env.SetLocal(rest, &QExpr{})
		formals = nil
	}
	fn.Formals.Cells = formals

	if len(formals) > 0 {
		// curried: wait for the remaining arguments
		return fn
	}

	fn.Env.Outer = en
	result := Eval(fn.Env, &SExpr{Cells: fn.Body.Cells})
	fn.Env.Outer = nil
	return result
}
