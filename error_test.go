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
	"errors"
	"fmt"
	"io/fs"
	"testing"
)

func TestErrorMessage(t *testing.T) {
	cases := []struct {
		err  *Error
		want string
	}{
		{&Error{Kind: KindIO, Op: "write output", Path: "out.pdf", Err: errors.New("disk full")},
			"write output out.pdf: disk full"},
		{&Error{Kind: KindParse, Path: "in.pdf"}, "parsing error in.pdf"},
		{configError("", "no input PDF file given"), "invalid settings: no input PDF file given"},
	}
	for _, c := range cases {
		if got := c.err.Error(); got != c.want {
			t.Errorf("got %q, want %q", got, c.want)
		}
	}
}

func TestKindOf(t *testing.T) {
	inner := &Error{Kind: KindIO, Op: "open input", Err: fs.ErrPermission}
	wrapped := fmt.Errorf("while numbering: %w", inner)

	if k := KindOf(wrapped); k != KindIO {
		t.Errorf("got kind %v", k)
	}
	if !errors.Is(wrapped, fs.ErrPermission) {
		t.Error("cause not found in chain")
	}
	if k := KindOf(errors.New("other")); k != 0 {
		t.Errorf("got kind %v for foreign error", k)
	}
	if k := KindOf(nil); k != 0 {
		t.Errorf("got kind %v for nil", k)
	}
}
