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
package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/launix-de/lipl/lisp"
)

func TestRunFile(t *testing.T) {
	dir := t.TempDir()
	script := filepath.Join(dir, "init.lipl")
	source := "(def {x} 3)\n(def {y} (* x 2))\n(/ 1 0)\n(def {z} (+ x y))\n"
	if err := os.WriteFile(script, []byte(source), 0o644); err != nil {
		t.Fatal(err)
	}
	en := lisp.NewGlobalEnv()
	if err := runFile(en, script); err != nil {
		t.Fatal(err)
	}
	// an error result does not stop the script
	if got := lisp.Sprint(en.Lookup("z")); got != "9" {
		t.Fatalf("z = %s", got)
	}

	if err := runFile(en, filepath.Join(dir, "missing.lipl")); err == nil {
		t.Fatalf("expected an error for a missing file")
	}

	broken := filepath.Join(dir, "broken.lipl")
	if err := os.WriteFile(broken, []byte("(def {a} 1"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := runFile(en, broken); !errors.Is(err, lisp.ErrIncomplete) {
		t.Fatalf("expected incomplete input, got %v", err)
	}
}

func TestArrayFlags(t *testing.T) {
	var commands arrayFlags
	commands.Set("(+ 1 2)")
	commands.Set("(head {1})")
	if len(commands) != 2 || commands[1] != "(head {1})" {
		t.Fatalf("got %v", commands)
	}
}
