// seehuhn.de/go/pagenum - add page numbers to PDF files
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package buildinfo reports the version of the running program.
package buildinfo

import (
	"runtime/debug"
)

// Version returns the module version of the main package, e.g. "v0.2.0".
// For development builds the shortened VCS revision is returned instead,
// with a "+dirty" suffix for modified working trees.  If no information
// is available, "unknown" is returned.
func Version() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown"
	}
	if v := info.Main.Version; v != "" && v != "(devel)" {
		return v
	}
	if rev := revision(info.Settings); rev != "" {
		return rev
	}
	return "unknown"
}

// Short returns a one-line description for the usage message of a tool,
// e.g. "pdf-pagenum (seehuhn.de/go/pagenum v0.2.0)".
func Short(toolName string) string {
	info, ok := debug.ReadBuildInfo()
	if !ok || info.Main.Path == "" {
		return toolName
	}
	return toolName + " (" + info.Main.Path + " " + Version() + ")"
}

func revision(settings []debug.BuildSetting) string {
	var rev string
	var dirty bool
	for _, s := range settings {
		switch s.Key {
		case "vcs.revision":
			rev = s.Value
		case "vcs.modified":
			dirty = s.Value == "true"
		}
	}
	if len(rev) > 8 {
		rev = rev[:8]
	}
	if rev != "" && dirty {
		rev += "+dirty"
	}
	return rev
}
