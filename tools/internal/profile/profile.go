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

// Package profile writes CPU and memory profiles for the command line tools.
package profile

import (
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"

	"go.uber.org/zap"
)

// Profiler collects the profiles requested on the command line.
type Profiler struct {
	cpuFile    *os.File
	memProfile string
	log        *zap.Logger
}

// Start begins CPU profiling, if cpuProfile is non-empty.  Problems
// encountered when writing the profiles later on are reported to log.
// The caller must call Stop before the program exits.
func Start(cpuProfile, memProfile string, log *zap.Logger) (*Profiler, error) {
	p := &Profiler{memProfile: memProfile, log: log}
	if cpuProfile == "" {
		return p, nil
	}

	f, err := os.Create(cpuProfile)
	if err != nil {
		return nil, fmt.Errorf("cannot create CPU profile: %w", err)
	}
	err = pprof.StartCPUProfile(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("cannot start CPU profile: %w", err)
	}
	p.cpuFile = f
	return p, nil
}

// Stop ends CPU profiling and writes the memory profile.
func (p *Profiler) Stop() {
	if p.cpuFile != nil {
		pprof.StopCPUProfile()
		p.cpuFile.Close()
		p.cpuFile = nil
	}

	if p.memProfile == "" {
		return
	}
	err := p.writeHeap()
	if err != nil {
		p.log.Warn("memory profile not written",
			zap.String("file", p.memProfile), zap.Error(err))
	}
	p.memProfile = ""
}

func (p *Profiler) writeHeap() error {
	f, err := os.Create(p.memProfile)
	if err != nil {
		return err
	}
	defer f.Close()

	runtime.GC()
	allocs := pprof.Lookup("allocs")
	if allocs == nil {
		return fmt.Errorf("no allocs profile")
	}
	return allocs.WriteTo(f, 0)
}
