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

import "sort"

type Vars map[Symbol]Value

// Env is one scope. Outer is a back reference used for lookups only; an Env
// never owns its parent.
type Env struct {
	Vars  Vars
	Outer *Env
}

func NewEnv(outer *Env) *Env {
	return &Env{Vars: make(Vars), Outer: outer}
}

func (e *Env) Parent() *Env {
	return e.Outer
}

// FindRead returns the scope that binds s or nil.
func (e *Env) FindRead(s Symbol) *Env {
	for en := e; en != nil; en = en.Outer {
		if _, ok := en.Vars[s]; ok {
			return en
		}
	}
	return nil
}

// Get looks s up along the parent chain and returns a copy of the binding.
func (e *Env) Get(s Symbol) (Value, bool) {
	en := e.FindRead(s)
	if en == nil {
		return nil, false
	}
	return Copy(en.Vars[s]), true
}

// Lookup is Get with the miss turned into an Error value.
func (e *Env) Lookup(s Symbol) Value {
	if v, ok := e.Get(s); ok {
		return v
	}
	return Errorf("Unbound symbol '%s'", string(s))
}

// SetLocal binds s in this scope; the caller keeps its own v.
func (e *Env) SetLocal(s Symbol, v Value) {
	e.Vars[s] = Copy(v)
}

func (e *Env) Root() *Env {
	en := e
	for en.Outer != nil {
		en = en.Outer
	}
	return en
}

// SetGlobal binds s in the outermost scope regardless of lexical depth.
func (e *Env) SetGlobal(s Symbol, v Value) {
	e.Root().SetLocal(s, v)
}

// Copy duplicates the bindings but keeps the same parent reference.
func (e *Env) Copy() *Env {
	result := &Env{Vars: make(Vars, len(e.Vars)), Outer: e.Outer}
	for k, v := range e.Vars {
		result.Vars[k] = Copy(v)
	}
	return result
}

// Names lists the symbols bound in this scope only, sorted.
func (e *Env) Names() []string {
	result := make([]string, 0, len(e.Vars))
	for k := range e.Vars {
		result = append(result, string(k))
	}
	sort.Strings(result)
	return result
}
