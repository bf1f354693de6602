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
/*
	lipl - a little lisp with q-expressions, currying and first-class errors

*/
package main

import "os"
import "fmt"
import "flag"
import "time"
import "syscall"
import "os/signal"
import "path/filepath"
import "github.com/fsnotify/fsnotify"
import "github.com/launix-de/lipl/lisp"

// workaround for flags package to allow multiple values
type arrayFlags []string

func (i *arrayFlags) String() string {
	return "dummy"
}

func (i *arrayFlags) Set(value string) error {
	*i = append(*i, value)
	return nil
}

// runFile evaluates every top level expression of a script and reports the
// ones that end in an error.
func runFile(en *lisp.Env, filename string) error {
	bytes, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("cannot load %s: %w", filename, err)
	}
	program, err := lisp.ReadString(filename, string(bytes))
	if err != nil {
		return err
	}
	for _, expr := range program.(*lisp.SExpr).Cells {
		if result := lisp.Eval(en, expr); lisp.IsError(result) {
			lisp.Println(os.Stderr, result)
		}
	}
	return nil
}

// watch reruns a script whenever it changes on disk. It blocks; all
// evaluation stays on the calling goroutine.
func watch(en *lisp.Env, filenames []string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("cannot watch: %w", err)
	}
	defer watcher.Close()
	for _, filename := range filenames {
		if err := watcher.Add(filename); err != nil {
			return fmt.Errorf("cannot watch %s: %w", filename, err)
		}
	}
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			changed := map[string]bool{event.Name: true}
			// flush all other events
			for {
				time.Sleep(10 * time.Millisecond) // delay a bit, so we don't read empty files
				select {
				case event := <-watcher.Events:
					changed[event.Name] = true
					continue
				default:
				}
				break
			}
			for _, filename := range filenames {
				if !changed[filename] {
					continue
				}
				fmt.Println("Reloading " + filename + " ...")
				if err := runFile(en, filename); err != nil {
					// error happens during reload: log to console
					fmt.Println(err)
				}
				watcher.Add(filename) // text editors rename, so we have to rewatch
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Println("watch error:", err)
		}
	}
}

func main() {
	var commands arrayFlags
	flag.Var(&commands, "c", "Execute lipl command (repeatable)")
	quiet := flag.Bool("q", false, "Do not print the banner")
	interactive := flag.Bool("i", false, "Start the prompt even after scripts or commands")
	watchScripts := flag.Bool("watch", false, "Rerun the given scripts whenever they change (no prompt)")
	docs := flag.String("doc", "", "Write Markdown documentation of all builtins into this folder and exit")
	flag.StringVar(&lisp.Settings.HistoryFile, "history", lisp.Settings.HistoryFile, "History file of the prompt")
	flag.BoolVar(&lisp.Settings.Trace, "trace", false, "Write a chrome://tracing file of all function applications")
	flag.StringVar(&lisp.Settings.TraceDir, "tracedir", "", "Folder for trace files (Default: .)")
	flag.BoolVar(&lisp.Settings.TracePrint, "traceprint", false, "Print timings of all function applications")
	flag.Parse()
	scripts := flag.Args()

	if *docs != "" {
		if err := lisp.WriteDocumentation(*docs); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	if !*quiet {
		fmt.Print(`lipl Copyright (C) 2024   Carl-Philip Hänsch
    This program comes with ABSOLUTELY NO WARRANTY;
    This is free software, and you are welcome to redistribute it
    under certain conditions;

`)
	}

	if err := lisp.InitSettings(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	// install exit handler
	cancelChan := make(chan os.Signal, 1)
	signal.Notify(cancelChan, syscall.SIGTERM)
	go (func() {
		<-cancelChan
		exitroutine()
		os.Exit(1)
	})()

	en := lisp.NewGlobalEnv()
	for _, script := range scripts {
		fmt.Println("Loading " + script + " ...")
		if err := runFile(en, script); err != nil {
			fmt.Fprintln(os.Stderr, err)
			exitroutine()
			os.Exit(1)
		}
	}
	for _, command := range commands {
		fmt.Println("Executing " + command + " ...")
		result, err := lisp.EvalAll(en, "command line", command)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			continue
		}
		lisp.Println(os.Stdout, result)
	}

	if *watchScripts {
		abs := make([]string, len(scripts))
		for i, script := range scripts {
			abs[i], _ = filepath.Abs(script)
		}
		if err := watch(en, abs); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	} else if *interactive || (len(scripts) == 0 && len(commands) == 0) {
		if !*quiet {
			fmt.Print(`
    Type :help to show help, ^C or ^D to exit

`)
		}
		if err := lisp.Repl(en); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	}

	// normal shutdown
	exitroutine()
}

func exitroutine() {
	if lisp.ReplInstance != nil {
		// in case it dosen't exit properly
		lisp.ReplInstance.Close()
	}
	lisp.SetTrace(false)
}
