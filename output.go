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

package pagenum

import (
	"os"
	"path/filepath"
)

// outputFile collects the output in a temporary file next to the
// destination.  The destination only changes once Commit succeeds.
type outputFile struct {
	f    *os.File
	dest string

	// writeErr is the first error returned by the underlying file.
	writeErr error
}

func createOutput(dest string) (*outputFile, error) {
	dir, base := filepath.Split(dest)
	if dir == "" {
		dir = "."
	}
	f, err := os.CreateTemp(dir, "."+base+".*.tmp")
	if err != nil {
		return nil, &Error{Kind: KindIO, Op: "create output", Path: dest, Err: err}
	}
	return &outputFile{f: f, dest: dest}, nil
}

func (o *outputFile) Write(p []byte) (int, error) {
	n, err := o.f.Write(p)
	if err != nil && o.writeErr == nil {
		o.writeErr = err
	}
	return n, err
}

// Commit moves the output into place.  The temporary file is removed if
// this fails.
func (o *outputFile) Commit() error {
	err := o.writeErr
	if err == nil {
		err = o.f.Chmod(0o644)
	}
	if err == nil {
		err = o.f.Sync()
	}
	closeErr := o.f.Close()
	if err == nil {
		err = closeErr
	}
	if err == nil {
		err = os.Rename(o.f.Name(), o.dest)
	}
	if err != nil {
		os.Remove(o.f.Name())
		return &Error{Kind: KindIO, Op: "write output", Path: o.dest, Err: err}
	}
	return nil
}

// Abort discards the output.
func (o *outputFile) Abort() {
	o.f.Close()
	os.Remove(o.f.Name())
}
