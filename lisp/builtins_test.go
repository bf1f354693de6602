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
	"strings"
	"testing"
)

func TestBuiltinErrors(t *testing.T) {
	cases := map[string]string{
		"(head {1} {2})":     "Function 'head' passed incorrect number of arguments. Got 2, expected 1.",
		"(head 1)":           "Function 'head' passed incorrect type for argument 0. Got Number, expected Q-Expression.",
		"(head {})":          "Function 'head' passed {} for argument 0.",
		"(tail {})":          "Function 'tail' passed {} for argument 0.",
		`(tail "s")`:         "Function 'tail' passed incorrect type for argument 0. Got String, expected Q-Expression.",
		"(eval 1)":           "Function 'eval' passed incorrect type for argument 0. Got Number, expected Q-Expression.",
		"(eval {1} {2})":     "Function 'eval' passed incorrect number of arguments. Got 2, expected 1.",
		"(join {1} 2)":       "Function 'join' passed incorrect type for argument 1. Got Number, expected Q-Expression.",
		"(+ 1 {2})":          "Function '+' passed incorrect type for argument 1. Got Q-Expression, expected Number.",
		`(* "a" 2)`:          "Function '*' passed incorrect type for argument 0. Got String, expected Number.",
		"(- 1 +)":            "Function '-' passed incorrect type for argument 1. Got Function, expected Number.",
		"(== 1)":             "Function '==' passed incorrect number of arguments. Got 1, expected 2.",
		"(< 1 2 3)":          "Function '<' passed incorrect number of arguments. Got 3, expected 2.",
		"(>= {} 1)":          "Function '>=' passed incorrect type for argument 0. Got Q-Expression, expected Number.",
		"(<= 1 {})":          "Function '<=' passed incorrect type for argument 1. Got Q-Expression, expected Number.",
		"(if {1} {1} {2})":   "Function 'if' passed incorrect type for argument 0. Got Q-Expression, expected Number.",
		"(if 1 2 {2})":       "Function 'if' passed incorrect type for argument 1. Got Number, expected Q-Expression.",
		"(if 0 {1} 2)":       "Function 'if' passed incorrect type for argument 2. Got Number, expected Q-Expression.",
		"(if 1 {1} {2} {3})": "Function 'if' passed incorrect number of arguments. Got 4, expected 3.",
		"(\\ {x} {x} {x})":   "Function '\\' passed incorrect number of arguments. Got 3, expected 2.",
		"(\\ x {x})":         "Unbound symbol 'x'",
		"(\\ 1 {x})":         "Function '\\' passed incorrect type for argument 0. Got Number, expected Q-Expression.",
		"(\\ {x} x)":         "Unbound symbol 'x'",
		"(\\ {x} 1)":         "Function '\\' passed incorrect type for argument 1. Got Number, expected Q-Expression.",
		"(\\ {1} {1})":       "Cannot define non-symbol. Got Number, expected Symbol.",
		"(def 1 1)":          "Function 'def' passed incorrect type for argument 0. Got Number, expected Q-Expression.",
		"(def {1} 1)":        "Function 'def' cannot define non-symbol. Got Number, expected Symbol.",
		"(def {a b} 1)":      "Function 'def' passed incorrect number of values for symbols. Got 1, expected 2.",
		"(= {a} 1 2)":        "Function '=' passed incorrect number of values for symbols. Got 2, expected 1.",
		`(= {"a"} 1)`:        "Function '=' cannot define non-symbol. Got String, expected Symbol.",
	}
	for input, want := range cases {
		got := run(t, NewGlobalEnv(), input)
		if got != "Error: "+want {
			t.Errorf("%s = %s, want Error: %s", input, got, want)
		}
	}
}

func TestFailedDefBindsNothing(t *testing.T) {
	session(t,
		step{"(def {a 1} 1 2)", "Error: Function 'def' cannot define non-symbol. Got Number, expected Symbol."},
		step{"a", "Error: Unbound symbol 'a'"},
		step{"(def {a b} 1)", "Error: Function 'def' passed incorrect number of values for symbols. Got 1, expected 2."},
		step{"a", "Error: Unbound symbol 'a'"},
	)
}

func TestDeclarationCallDirect(t *testing.T) {
	en := NewGlobalEnv()
	head := LookupDeclaration("head")
	if got := Sprint(head.Call(en, []Value{NewQExpr(Number(1), Number(2))})); got != "{1}" {
		t.Fatalf("head = %s", got)
	}
	list := LookupDeclaration("list")
	if got := Sprint(list.Call(en, nil)); got != "{}" {
		t.Fatalf("empty list = %s", got)
	}
	if got := Sprint(head.Call(en, nil)); !strings.Contains(got, "Got 0, expected 1.") {
		t.Fatalf("missing argument = %s", got)
	}
}

func TestEveryBuiltinIsImplemented(t *testing.T) {
	// call every builtin with numbers only; a missing case in Call would
	// report "not implemented" instead of a regular result or type error
	en := NewGlobalEnv()
	for _, d := range Declarations() {
		n := d.MinParameter
		if n < 2 && (d.MaxParameter == Unbounded || d.MaxParameter >= 2) {
			n = 2
		}
		args := make([]Value, n)
		for i := range args {
			args[i] = Number(1)
		}
		got := Sprint(d.Call(en, args))
		if strings.Contains(got, "not implemented") {
			t.Errorf("%s: %s", d.Name, got)
		}
	}
}
