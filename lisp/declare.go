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
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Op identifies a primitive. It is fixed when the catalogue is built so calls
// never compare names.
type Op uint8

const (
	OpAdd Op = iota
	OpSub
	OpMul
	OpDiv
	OpList
	OpHead
	OpTail
	OpEval
	OpJoin
	OpLambda
	OpDef
	OpPut
	OpIf
	OpEq
	OpNe
	OpGt
	OpLt
	OpGe
	OpLe
)

// Unbounded is the MaxParameter of variadic builtins.
const Unbounded = -1

type Declaration struct {
	Name         string
	Desc         string
	Chapter      string
	Op           Op
	MinParameter int
	MaxParameter int // Unbounded for variadic functions
	Params       []DeclarationParameter
	Returns      string // any | number | list | func | sexpr
}

type DeclarationParameter struct {
	Name string
	Type string // any | number | list | symbols
	Desc string
}

var declarationsByName = func() map[string]*Declaration {
	result := make(map[string]*Declaration, len(declarations))
	for _, d := range declarations {
		result[d.Name] = d
	}
	return result
}()

// LookupDeclaration finds a builtin by name.
func LookupDeclaration(name string) *Declaration {
	return declarationsByName[name]
}

// Declarations returns the catalogue in declaration order.
func Declarations() []*Declaration {
	return declarations
}

// NewGlobalEnv returns a fresh parentless environment holding every builtin.
func NewGlobalEnv() *Env {
	en := NewEnv(nil)
	for _, d := range declarations {
		en.Vars[Symbol(d.Name)] = NewBuiltin(d)
	}
	return en
}

func (d *Declaration) arity() string {
	if d.MaxParameter == Unbounded {
		return fmt.Sprintf("%d–∞", d.MinParameter)
	}
	return fmt.Sprintf("%d–%d", d.MinParameter, d.MaxParameter)
}

func chapters() (titles []string, fns map[string][]*Declaration) {
	fns = make(map[string][]*Declaration)
	for _, d := range declarations {
		if _, ok := fns[d.Chapter]; !ok {
			titles = append(titles, d.Chapter)
		}
		fns[d.Chapter] = append(fns[d.Chapter], d)
	}
	return
}

// Help lists all builtins or prints the documentation of one of them.
func Help(w io.Writer, name string) error {
	if name == "" {
		titles, fns := chapters()
		fmt.Fprintln(w, "Available builtins:")
		for _, title := range titles {
			fmt.Fprintln(w, "")
			fmt.Fprintln(w, "-- "+title+" --")
			for _, d := range fns[title] {
				fmt.Fprintln(w, "  "+d.Name+": "+strings.Split(d.Desc, "\n")[0])
			}
		}
		fmt.Fprintln(w, "")
		fmt.Fprintln(w, "get further information by typing :help functionname")
		return nil
	}
	d := LookupDeclaration(name)
	if d == nil {
		return fmt.Errorf("function not found: %s", name)
	}
	fmt.Fprintln(w, "Help for: "+d.Name)
	fmt.Fprintln(w, "===")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, d.Desc)
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Allowed nø of parameters: "+d.arity())
	fmt.Fprintln(w, "")
	for _, p := range d.Params {
		fmt.Fprintln(w, " - "+p.Name+" ("+p.Type+"): "+p.Desc)
	}
	fmt.Fprintln(w, "")
	return nil
}

// slugify makes a filesystem-safe, lowercase slug from a chapter title.
func slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, " ", "-")
	var b strings.Builder
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' || r == '_' {
			b.WriteRune(r)
		}
	}
	out := b.String()
	if out == "" {
		out = "chapter"
	}
	return out
}

// WriteDocumentation generates Markdown docs:
// - index.md with links to chapters
// - one <chapter>.md file per chapter, containing all functions of that chapter
func WriteDocumentation(folder string) error {
	if err := os.MkdirAll(folder, 0o755); err != nil {
		return fmt.Errorf("failed to create folder %q: %w", folder, err)
	}
	titles, fns := chapters()

	indexPath := filepath.Join(folder, "index.md")
	indexFile, err := os.Create(indexPath)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", indexPath, err)
	}
	defer indexFile.Close()

	fmt.Fprint(indexFile, "# Documentation\n\n")
	for _, title := range titles {
		fmt.Fprintf(indexFile, "- [%s](%s.md)\n", title, slugify(title))
	}

	for _, title := range titles {
		fp := filepath.Join(folder, slugify(title)+".md")
		f, err := os.Create(fp)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", fp, err)
		}

		fmt.Fprintf(f, "# %s\n\n", title)
		for _, d := range fns[title] {
			fmt.Fprintf(f, "## %s\n\n", d.Name)
			if d.Desc != "" {
				fmt.Fprintf(f, "%s\n\n", d.Desc)
			}
			fmt.Fprintf(f, "**Allowed number of parameters:** %s\n\n", d.arity())

			fmt.Fprint(f, "### Parameters\n\n")
			if len(d.Params) == 0 {
				fmt.Fprint(f, "_This function has no parameters._\n\n")
			} else {
				for _, p := range d.Params {
					fmt.Fprintf(f, "- **%s** (`%s`): %s\n", p.Name, p.Type, p.Desc)
				}
				fmt.Fprintln(f)
			}

			fmt.Fprintf(f, "### Returns\n\n`%s`\n\n", d.Returns)
		}

		if err := f.Close(); err != nil {
			return fmt.Errorf("failed to write %s: %w", fp, err)
		}
	}
	return nil
}
