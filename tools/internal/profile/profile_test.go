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

package profile

import (
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestProfiles(t *testing.T) {
	dir := t.TempDir()
	cpu := filepath.Join(dir, "cpu.prof")
	mem := filepath.Join(dir, "mem.prof")

	p, err := Start(cpu, mem, zap.NewNop())
	if err != nil {
		t.Fatal(err)
	}
	p.Stop()
	p.Stop()

	for _, fname := range []string{cpu, mem} {
		fi, err := os.Stat(fname)
		if err != nil {
			t.Error(err)
		} else if fi.Size() == 0 {
			t.Errorf("%s is empty", fname)
		}
	}
}

func TestMemProfileError(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	p, err := Start("", filepath.Join(t.TempDir(), "missing", "mem.prof"), zap.New(core))
	if err != nil {
		t.Fatal(err)
	}
	p.Stop()
	if logs.FilterMessage("memory profile not written").Len() != 1 {
		t.Error("missing warning")
	}
}
