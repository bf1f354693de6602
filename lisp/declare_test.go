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
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestGlobalEnvHoldsCatalogue(t *testing.T) {
	en := NewGlobalEnv()
	if en.Parent() != nil {
		t.Fatalf("global environment must not have a parent")
	}
	var want []string
	for _, d := range Declarations() {
		want = append(want, d.Name)
		b, ok := en.Vars[Symbol(d.Name)].(*Builtin)
		if !ok || b.Declaration() != d {
			t.Errorf("%s is not bound to its declaration", d.Name)
		}
	}
	sort.Strings(want)
	if diff := cmp.Diff(want, en.Names()); diff != "" {
		t.Fatalf("global names (-want +got):\n%s", diff)
	}
	for _, name := range []string{"def", "=", "\\", "list", "head", "tail", "eval", "join", "+", "-", "*", "/", "if", "==", "!=", ">", "<", ">=", "<="} {
		if LookupDeclaration(name) == nil {
			t.Errorf("builtin %s missing", name)
		}
	}
}

func TestGlobalEnvsAreIndependent(t *testing.T) {
	a := NewGlobalEnv()
	b := NewGlobalEnv()
	run(t, a, "(def {head} 1)")
	if got := run(t, b, "(head {1 2})"); got != "{1}" {
		t.Fatalf("redefinition leaked into another environment: %s", got)
	}
}

func TestHelp(t *testing.T) {
	var b bytes.Buffer
	if err := Help(&b, ""); err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"Available builtins:", "-- Lists --", "  head: returns a q-expression holding only the first element"} {
		if !strings.Contains(b.String(), want) {
			t.Errorf("overview lacks %q:\n%s", want, b.String())
		}
	}

	b.Reset()
	if err := Help(&b, "+"); err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"Help for: +", "1–∞", " - value... (number):"} {
		if !strings.Contains(b.String(), want) {
			t.Errorf("help for + lacks %q:\n%s", want, b.String())
		}
	}

	if err := Help(&b, "nope"); err == nil || err.Error() != "function not found: nope" {
		t.Fatalf("unexpected error %v", err)
	}
}

func TestWriteDocumentation(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "docs")
	if err := WriteDocumentation(dir); err != nil {
		t.Fatal(err)
	}
	index, err := os.ReadFile(filepath.Join(dir, "index.md"))
	if err != nil {
		t.Fatal(err)
	}
	for _, link := range []string{"- [Variables](variables.md)", "- [Lists](lists.md)", "- [Arithmetic](arithmetic.md)", "- [Conditionals](conditionals.md)"} {
		if !strings.Contains(string(index), link) {
			t.Errorf("index lacks %q", link)
		}
	}
	lists, err := os.ReadFile(filepath.Join(dir, "lists.md"))
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"# Lists", "## head", "## join", "**Allowed number of parameters:** 1–1", "### Returns"} {
		if !strings.Contains(string(lists), want) {
			t.Errorf("lists.md lacks %q", want)
		}
	}
}

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Lists":         "lists",
		" Foo Bar! ":    "foo-bar",
		"":              "chapter",
		"Type_Checks 2": "type_checks-2",
	}
	for in, want := range cases {
		if got := slugify(in); got != want {
			t.Errorf("slugify(%q) = %q, want %q", in, got, want)
		}
	}
}
