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
	"github.com/dc0d/onexit"
	"github.com/google/uuid"
)

type SettingsT struct {
	Trace       bool
	TraceDir    string
	TracePrint  bool
	HistoryFile string
	Session     string // names the trace file; generated if empty
}

var Settings SettingsT = SettingsT{false, "", false, ".lipl-history.tmp", ""}

// call this after you filled Settings
func InitSettings() error {
	if Settings.Session == "" {
		Settings.Session = uuid.NewString()
	}
	if err := SetTrace(Settings.Trace); err != nil {
		return err
	}
	TracePrint = Settings.TracePrint
	onexit.Register(func() { SetTrace(false) }) // close trace file on exit
	return nil
}
