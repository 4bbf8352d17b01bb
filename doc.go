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

// Package pagenum adds page numbers to existing PDF files.
//
// For every page in a configurable range, a label like "- 3 -" is drawn on
// top of the existing page content.  All other pages, and the order of the
// pages, are left unchanged:
//
//	cfg := pagenum.DefaultConfig()
//	cfg.Input = "in.pdf"
//	cfg.Output = "out.pdf"
//	first := 2
//	cfg.Start = &first
//	res, err := pagenum.AddPageNumbers(cfg, nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(len(res.Numbered), "of", res.Pages, "pages numbered")
//
// Positions are given in PDF points (1/72 inch), with the origin in the
// bottom left corner of the page, and mark the start of the baseline of
// the label.  The labels are set in one of the 14 standard PDF fonts, or in
// a TrueType font loaded from a .ttf file.
//
// Errors returned by [AddPageNumbers] are of type [*Error]; use [KindOf] to
// distinguish invalid settings from unreadable input and failed writes.
package pagenum
