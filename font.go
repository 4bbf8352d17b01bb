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
	"fmt"
	"os"
	"path/filepath"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	pdffont "github.com/pdfcpu/pdfcpu/pkg/font"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"golang.org/x/text/encoding/charmap"
	"seehuhn.de/go/sfnt"
)

// Font is a font which can be used for page numbers.
type Font struct {
	// Name is the name under which the PDF engine knows the font.
	// For the standard fonts this is the PostScript name, for example
	// "Helvetica-Bold".
	Name string

	// File is the font file the font was loaded from,
	// or the empty string for the standard fonts.
	File string

	// dir is the temporary font directory of the PDF engine, while a
	// font file is in use.  prevDir is the directory it replaced.
	dir     string
	prevDir string
}

// ResolveFont finds the font with the given name.
//
// The name can either be the name of one of the 14 standard PDF fonts,
// or the name of a TrueType font file ending in ".ttf".  Font files are
// installed into a temporary font directory of the PDF engine, which
// stays in place until [Font.Release] is called.  Nothing is written to
// the user's pdfcpu configuration directory.  Since the font directory of
// the PDF engine is global, font files must not be used by several
// goroutines at the same time.
func ResolveFont(name string) (*Font, error) {
	if name == "" {
		return nil, configError("", "no font given")
	}
	if pdffont.IsCoreFont(name) {
		return &Font{Name: name}, nil
	}

	// pdfcpu only installs files with this exact extension
	if filepath.Ext(name) == ".ttf" {
		return loadFontFile(name)
	}

	if pdffont.IsUserFont(name) {
		return &Font{Name: name}, nil
	}
	return nil, configError(name, "unknown font")
}

func loadFontFile(fname string) (*Font, error) {
	info, err := sfnt.ReadFile(fname)
	if err != nil {
		return nil, &Error{Kind: KindConfig, Op: "read font", Path: fname, Err: err}
	}
	psName := info.PostScriptName()

	// Loading the default configuration can reset the font directory,
	// so this must happen before the directory is replaced.
	model.NewDefaultConfiguration()

	dir, err := os.MkdirTemp("", "pagenum-fonts-*")
	if err != nil {
		return nil, &Error{Kind: KindIO, Op: "install font", Path: fname, Err: err}
	}
	f := &Font{
		Name:    psName,
		File:    fname,
		dir:     dir,
		prevDir: pdffont.UserFontDir,
	}
	pdffont.UserFontDir = dir

	err = api.InstallFonts([]string{fname})
	if err != nil {
		f.Release()
		return nil, &Error{Kind: KindConfig, Op: "install font", Path: fname, Err: err}
	}
	if !pdffont.IsUserFont(psName) {
		f.Release()
		return nil, configError(fname, fmt.Sprintf("font %q not available after installation", psName))
	}
	return f, nil
}

// Release removes the temporary font directory of a font loaded from a
// file, and restores the previous font directory of the PDF engine.
// For the standard fonts, Release does nothing.
func (f *Font) Release() {
	if f == nil || f.dir == "" {
		return
	}
	pdffont.UserFontMetricsLock.Lock()
	delete(pdffont.UserFontMetrics, f.Name)
	pdffont.UserFontMetricsLock.Unlock()

	pdffont.UserFontDir = f.prevDir
	if f.prevDir != "" {
		// the font may also be installed in the previous directory
		pdffont.LoadUserFonts()
	}
	os.RemoveAll(f.dir)
	f.dir = ""
}

// IsStandard reports whether f is one of the 14 standard PDF fonts.
func (f *Font) IsStandard() bool {
	return f.File == "" && pdffont.IsCoreFont(f.Name)
}

// CheckText verifies that all characters of s can be shown with the font.
//
// The standard text fonts use WinAnsiEncoding, so only characters from the
// Windows-1252 character set are available.  Symbol and ZapfDingbats have
// their own encodings and embedded fonts use Unicode, so no check is done
// for these.
func (f *Font) CheckText(s string) error {
	if !f.IsStandard() || f.Name == "Symbol" || f.Name == "ZapfDingbats" {
		return nil
	}
	_, err := charmap.Windows1252.NewEncoder().String(s)
	if err != nil {
		return fmt.Errorf("font %s cannot show %q", f.Name, s)
	}
	return nil
}

// TextWidth returns the width of s in PDF points, when set at the given size.
func (f *Font) TextWidth(s string, size int) float64 {
	return pdffont.TextWidth(s, f.Name, size)
}
