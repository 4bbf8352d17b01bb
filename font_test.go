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
	"testing"

	pdffont "github.com/pdfcpu/pdfcpu/pkg/font"
	"golang.org/x/image/font/gofont/goregular"

	"seehuhn.de/go/pagenum/internal/testpdf"
)

// writeGoFont writes the Go Regular TrueType font to a temporary file.
func writeGoFont(t *testing.T) string {
	t.Helper()
	fname := filepath.Join(t.TempDir(), "Go-Regular.ttf")
	err := os.WriteFile(fname, goregular.TTF, 0o644)
	if err != nil {
		t.Fatal(err)
	}
	return fname
}

func TestResolveFont(t *testing.T) {
	for _, name := range []string{"Helvetica", "Times-Bold", "Courier-Oblique", "ZapfDingbats"} {
		f, err := ResolveFont(name)
		if err != nil {
			t.Errorf("%s: %v", name, err)
			continue
		}
		if f.Name != name || !f.IsStandard() {
			t.Errorf("%s: got %+v", name, f)
		}
	}

	for _, name := range []string{"", "Comic Sans", filepath.Join(t.TempDir(), "missing.ttf")} {
		_, err := ResolveFont(name)
		if KindOf(err) != KindConfig {
			t.Errorf("%q: wrong error %v", name, err)
		}
	}
}

func TestCheckText(t *testing.T) {
	helv := &Font{Name: "Helvetica"}
	for _, s := range []string{"- 1 -", "Seite 3 – 4", "€ 5", "page 7 of ½"} {
		if err := helv.CheckText(s); err != nil {
			t.Errorf("%q: %v", s, err)
		}
	}
	for _, s := range []string{"第 3 页", "→ 2", "страница 1"} {
		if err := helv.CheckText(s); err == nil {
			t.Errorf("%q: expected an error", s)
		}
	}

	embedded := &Font{Name: "NotoSans-Regular", File: "NotoSans-Regular.ttf"}
	if err := embedded.CheckText("第 3 页"); err != nil {
		t.Errorf("embedded font: %v", err)
	}
}

func TestTextWidth(t *testing.T) {
	f := &Font{Name: "Courier"}
	// all Courier glyphs are 600/1000 em wide
	got := f.TextWidth("- 12 -", 10)
	if got != 36 {
		t.Errorf("got width %g, want 36", got)
	}
	if f.TextWidth("", 10) != 0 {
		t.Error("empty string has non-zero width")
	}
}

func TestResolveFontFile(t *testing.T) {
	fname := writeGoFont(t)
	prevDir := pdffont.UserFontDir

	f, err := ResolveFont(fname)
	if err != nil {
		t.Fatal(err)
	}
	if f.File != fname || f.IsStandard() {
		t.Errorf("got %+v", f)
	}
	if !pdffont.IsUserFont(f.Name) {
		t.Errorf("font %q not installed", f.Name)
	}
	dir := pdffont.UserFontDir
	if dir == prevDir || dir != f.dir {
		t.Errorf("font installed into %q", dir)
	}
	if _, err := os.Stat(filepath.Join(dir, f.Name+".gob")); err != nil {
		t.Error(err)
	}
	if w := f.TextWidth("- 1 -", 12); w <= 0 {
		t.Errorf("got width %g", w)
	}

	f.Release()
	if pdffont.UserFontDir != prevDir {
		t.Errorf("font directory is %q, want %q", pdffont.UserFontDir, prevDir)
	}
	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Errorf("%s was not removed", dir)
	}
	if pdffont.IsUserFont(f.Name) {
		t.Errorf("font %q still installed", f.Name)
	}

	// releasing twice, or releasing a standard font, is harmless
	f.Release()
	(&Font{Name: "Helvetica"}).Release()
}

func TestResolveFontFileErrors(t *testing.T) {
	prevDir := pdffont.UserFontDir

	bad := filepath.Join(t.TempDir(), "bad.ttf")
	err := os.WriteFile(bad, []byte("not a font"), 0o644)
	if err != nil {
		t.Fatal(err)
	}
	_, err = ResolveFont(bad)
	if KindOf(err) != KindConfig {
		t.Errorf("wrong error %v", err)
	}

	// pdfcpu only installs ".ttf" files
	otf := filepath.Join(t.TempDir(), "Go-Regular.otf")
	err = os.WriteFile(otf, goregular.TTF, 0o644)
	if err != nil {
		t.Fatal(err)
	}
	_, err = ResolveFont(otf)
	if KindOf(err) != KindConfig {
		t.Errorf("wrong error %v", err)
	}

	if pdffont.UserFontDir != prevDir {
		t.Errorf("font directory is %q, want %q", pdffont.UserFontDir, prevDir)
	}
}

func TestEndToEndFontFile(t *testing.T) {
	dir := t.TempDir()
	cfg := DefaultConfig()
	cfg.Input = filepath.Join(dir, "in.pdf")
	cfg.Output = filepath.Join(dir, "out.pdf")
	cfg.FontName = writeGoFont(t)
	cfg.Format = "Seite %i"
	err := testpdf.WriteFile(cfg.Input, 2)
	if err != nil {
		t.Fatal(err)
	}
	prevDir := pdffont.UserFontDir

	res, err := AddPageNumbers(cfg, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Numbered) != 2 {
		t.Errorf("numbered pages %v", res.Numbered)
	}
	for i, n := range xObjectCounts(t, cfg.Output) {
		if n == 0 {
			t.Errorf("page %d has no page number", i+1)
		}
	}
	if pdffont.UserFontDir != prevDir {
		t.Errorf("font directory is %q, want %q", pdffont.UserFontDir, prevDir)
	}
}
