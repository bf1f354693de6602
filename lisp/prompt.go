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
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
)

const newprompt = "\033[32mlipl>\033[0m "
const contprompt = "\033[32m.\033[0m "

var ReplInstance *readline.Instance

// EvalLine runs one line of REPL input against en and prints the result to w.
// Lines starting with ':' are meta commands. An error wrapping ErrIncomplete
// means the line needs a continuation.
func EvalLine(en *Env, w io.Writer, line string) error {
	trimmed := strings.TrimSpace(line)
	if strings.HasPrefix(trimmed, ":") {
		return metaCommand(en, w, strings.Fields(trimmed[1:]))
	}
	program, err := ReadString("user prompt", line)
	if err != nil {
		return err
	}
	return Println(w, Eval(en, program))
}

func metaCommand(en *Env, w io.Writer, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("empty command, try :help")
	}
	switch args[0] {
	case "help":
		if len(args) > 1 {
			return Help(w, args[1])
		}
		return Help(w, "")
	case "env":
		root := en.Root()
		for _, name := range root.Names() {
			fmt.Fprintf(w, "%s: %s\n", name, Sprint(root.Vars[Symbol(name)]))
		}
		return nil
	}
	return fmt.Errorf("unknown command :%s", args[0])
}

// Repl reads lines until ^C on an empty line or EOF.
func Repl(en *Env) error {
	l, err := readline.NewEx(&readline.Config{
		Prompt:            newprompt,
		HistoryFile:       Settings.HistoryFile,
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistorySearchFold: true,
	})
	if err != nil {
		return fmt.Errorf("cannot start prompt: %w", err)
	}
	ReplInstance = l
	defer l.Close()
	l.CaptureExitSignal()

	oldline := ""
	for {
		line, err := l.Readline()
		line = oldline + line
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				break
			}
			oldline = ""
			l.SetPrompt(newprompt)
			continue
		} else if err == io.EOF {
			break
		} else if err != nil {
			return err
		}
		if strings.TrimSpace(line) == "" {
			continue
		}

		err = EvalLine(en, l.Stdout(), line)
		if errors.Is(err, ErrIncomplete) {
			// keep oldline
			oldline = line + "\n"
			l.SetPrompt(contprompt)
			continue
		}
		if err != nil {
			fmt.Fprintln(l.Stderr(), "error:", err)
		}
		oldline = ""
		l.SetPrompt(newprompt)
	}
	return nil
}
