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

var numbersParam = []DeclarationParameter{
	{"value...", "number", "operands, folded from left to right"},
}

var compareParams = []DeclarationParameter{
	{"a", "number", "left operand"},
	{"b", "number", "right operand"},
}

var equalParams = []DeclarationParameter{
	{"a", "any", "left value"},
	{"b", "any", "right value"},
}

var bindParams = []DeclarationParameter{
	{"symbols", "symbols", "q-expression of symbols to bind"},
	{"value...", "any", "one value per symbol"},
}

// declarations is the complete builtin catalogue. NewGlobalEnv installs it.
var declarations = []*Declaration{
	{"def", "binds values to symbols in the global environment, visible from everywhere\n\nreturns ()",
		"Variables", OpDef, 1, Unbounded, bindParams, "sexpr"},
	{"=", "binds values to symbols in the current local environment\n\nInside a lambda body the binding disappears when the call returns.",
		"Variables", OpPut, 1, Unbounded, bindParams, "sexpr"},
	{"\\", "creates a lambda from a list of formal symbols and a body\n\nA formal list may end in {& rest}; rest then receives all remaining arguments as a q-expression.",
		"Variables", OpLambda, 2, 2, []DeclarationParameter{
			{"formals", "symbols", "q-expression of parameter symbols"},
			{"body", "list", "q-expression evaluated when all formals are bound"},
		}, "func"},

	{"list", "returns its arguments as a q-expression",
		"Lists", OpList, 0, Unbounded, []DeclarationParameter{
			{"value...", "any", "elements of the list"},
		}, "list"},
	{"head", "returns a q-expression holding only the first element",
		"Lists", OpHead, 1, 1, []DeclarationParameter{
			{"list", "list", "non-empty q-expression"},
		}, "list"},
	{"tail", "returns the q-expression without its first element",
		"Lists", OpTail, 1, 1, []DeclarationParameter{
			{"list", "list", "non-empty q-expression"},
		}, "list"},
	{"eval", "evaluates a q-expression as s-expression in the current environment",
		"Lists", OpEval, 1, 1, []DeclarationParameter{
			{"code", "list", "q-expression to evaluate"},
		}, "any"},
	{"join", "concatenates q-expressions",
		"Lists", OpJoin, 1, Unbounded, []DeclarationParameter{
			{"list...", "list", "q-expressions to join in order"},
		}, "list"},

	{"+", "adds numbers", "Arithmetic", OpAdd, 1, Unbounded, numbersParam, "number"},
	{"-", "subtracts numbers; with a single argument negates it", "Arithmetic", OpSub, 1, Unbounded, numbersParam, "number"},
	{"*", "multiplies numbers", "Arithmetic", OpMul, 1, Unbounded, numbersParam, "number"},
	{"/", "divides numbers (integer division)\n\nDividing by 0 yields an error.", "Arithmetic", OpDiv, 1, Unbounded, numbersParam, "number"},

	{"if", "evaluates the first branch if the condition is a non-zero number, the second one otherwise\n\nThe other branch is never evaluated.",
		"Conditionals", OpIf, 3, 3, []DeclarationParameter{
			{"condition", "number", "0 is false, everything else true"},
			{"then", "list", "q-expression evaluated if true"},
			{"else", "list", "q-expression evaluated if false"},
		}, "any"},
	{"==", "returns 1 if both values are structurally equal, 0 otherwise", "Conditionals", OpEq, 2, 2, equalParams, "number"},
	{"!=", "returns 1 if the values differ, 0 otherwise", "Conditionals", OpNe, 2, 2, equalParams, "number"},
	{">", "returns 1 if a > b", "Conditionals", OpGt, 2, 2, compareParams, "number"},
	{"<", "returns 1 if a < b", "Conditionals", OpLt, 2, 2, compareParams, "number"},
	{">=", "returns 1 if a >= b", "Conditionals", OpGe, 2, 2, compareParams, "number"},
	{"<=", "returns 1 if a <= b", "Conditionals", OpLe, 2, 2, compareParams, "number"},
}

func typeError(fn string, index int, got Value, expected Kind) Value {
	return Errorf("Function '%s' passed incorrect type for argument %d. Got %s, expected %s.", fn, index, TypeName(got), expected)
}

// Call runs the primitive. Precondition failures come back as Error values.
func (d *Declaration) Call(en *Env, args []Value) Value {
	if len(args) < d.MinParameter {
		return Errorf("Function '%s' passed incorrect number of arguments. Got %d, expected %d.", d.Name, len(args), d.MinParameter)
	}
	if d.MaxParameter != Unbounded && len(args) > d.MaxParameter {
		return Errorf("Function '%s' passed incorrect number of arguments. Got %d, expected %d.", d.Name, len(args), d.MaxParameter)
	}
	switch d.Op {
	case OpAdd, OpSub, OpMul, OpDiv:
		return d.arithmetic(args)
	case OpList:
		return &QExpr{Cells: args}
	case OpHead:
		q, bad := d.nonEmptyList(args)
		if bad != nil {
			return bad
		}
		return &QExpr{Cells: []Value{q.Cells[0]}}
	case OpTail:
		q, bad := d.nonEmptyList(args)
		if bad != nil {
			return bad
		}
		return &QExpr{Cells: append([]Value(nil), q.Cells[1:]...)}
	case OpEval:
		q, ok := args[0].(*QExpr)
		if !ok {
			return typeError(d.Name, 0, args[0], KindQExpr)
		}
		return Eval(en, &SExpr{Cells: q.Cells})
	case OpJoin:
		var cells []Value
		for i, a := range args {
			q, ok := a.(*QExpr)
			if !ok {
				return typeError(d.Name, i, a, KindQExpr)
			}
			cells = append(cells, q.Cells...)
		}
		return &QExpr{Cells: cells}
	case OpLambda:
		formals, ok := args[0].(*QExpr)
		if !ok {
			return typeError(d.Name, 0, args[0], KindQExpr)
		}
		body, ok := args[1].(*QExpr)
		if !ok {
			return typeError(d.Name, 1, args[1], KindQExpr)
		}
		return NewLambda(formals, body)
	case OpDef, OpPut:
		return d.bind(en, args)
	case OpIf:
		if _, ok := args[0].(Number); !ok {
			return typeError(d.Name, 0, args[0], KindNumber)
		}
		then, ok := args[1].(*QExpr)
		if !ok {
			return typeError(d.Name, 1, args[1], KindQExpr)
		}
		otherwise, ok := args[2].(*QExpr)
		if !ok {
			return typeError(d.Name, 2, args[2], KindQExpr)
		}
		if Truthy(args[0]) {
			return Eval(en, &SExpr{Cells: then.Cells})
		}
		return Eval(en, &SExpr{Cells: otherwise.Cells})
	case OpEq:
		return boolNumber(Equal(args[0], args[1]))
	case OpNe:
		return boolNumber(!Equal(args[0], args[1]))
	case OpGt, OpLt, OpGe, OpLe:
		return d.order(args)
	}
	return Errorf("Function '%s' is not implemented", d.Name)
}

func (d *Declaration) nonEmptyList(args []Value) (*QExpr, Value) {
	q, ok := args[0].(*QExpr)
	if !ok {
		return nil, typeError(d.Name, 0, args[0], KindQExpr)
	}
	if len(q.Cells) == 0 {
		return nil, Errorf("Function '%s' passed {} for argument %d.", d.Name, 0)
	}
	return q, nil
}

// arithmetic folds from the left; integer overflow wraps.
func (d *Declaration) arithmetic(args []Value) Value {
	for i, a := range args {
		if _, ok := a.(Number); !ok {
			return typeError(d.Name, i, a, KindNumber)
		}
	}
	x := args[0].(Number)
	if d.Op == OpSub && len(args) == 1 {
		return -x
	}
	for _, a := range args[1:] {
		y := a.(Number)
		switch d.Op {
		case OpAdd:
			x += y
		case OpSub:
			x -= y
		case OpMul:
			x *= y
		case OpDiv:
			if y == 0 {
				return Error("Division By Zero!")
			}
			x /= y
		}
	}
	return x
}

func (d *Declaration) order(args []Value) Value {
	a, ok := args[0].(Number)
	if !ok {
		return typeError(d.Name, 0, args[0], KindNumber)
	}
	b, ok := args[1].(Number)
	if !ok {
		return typeError(d.Name, 1, args[1], KindNumber)
	}
	switch d.Op {
	case OpGt:
		return boolNumber(a > b)
	case OpLt:
		return boolNumber(a < b)
	case OpGe:
		return boolNumber(a >= b)
	default:
		return boolNumber(a <= b)
	}
}

// bind implements def (global) and = (local).
func (d *Declaration) bind(en *Env, args []Value) Value {
	syms, ok := args[0].(*QExpr)
	if !ok {
		return typeError(d.Name, 0, args[0], KindQExpr)
	}
	for _, s := range syms.Cells {
		if _, ok := s.(Symbol); !ok {
			return Errorf("Function '%s' cannot define non-symbol. Got %s, expected %s.", d.Name, TypeName(s), KindSymbol)
		}
	}
	if len(syms.Cells) != len(args)-1 {
		return Errorf("Function '%s' passed incorrect number of values for symbols. Got %d, expected %d.", d.Name, len(args)-1, len(syms.Cells))
	}
	for i, s := range syms.Cells {
		if d.Op == OpDef {
			en.SetGlobal(s.(Symbol), args[i+1])
		} else {
			en.SetLocal(s.(Symbol), args[i+1])
		}
	}
	return &SExpr{}
}
