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

// Package testpdf generates small PDF files for use in tests.
package testpdf

import (
	"fmt"
	"io"
	"os"

	"codeberg.org/go-pdf/fpdf"
)

// Write writes a PDF file with numPages A4 pages to w.
// Page i shows the text "Page i" in Times-Roman, near the top left corner.
func Write(w io.Writer, numPages int) error {
	doc := fpdf.New("P", "pt", "A4", "")
	doc.SetCompression(false)
	doc.SetFont("Times", "", 24)
	for i := 1; i <= numPages; i++ {
		doc.AddPage()
		// fpdf measures y from the top of the page
		doc.Text(72, 120, fmt.Sprintf("Page %d", i))
	}
	return doc.Output(w)
}

// WriteFile writes a PDF file with numPages pages to the named file.
func WriteFile(fname string, numPages int) error {
	fd, err := os.Create(fname)
	if err != nil {
		return err
	}
	err = Write(fd, numPages)
	if err != nil {
		fd.Close()
		return err
	}
	return fd.Close()
}
