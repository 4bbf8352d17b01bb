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
	"regexp"
	"strings"

	"seehuhn.de/go/geom/rect"
)

// Alignment describes how the page number is placed relative to the
// horizontal position.
type Alignment int

// These are the supported alignments.
const (
	AlignLeft Alignment = iota // the number starts at X
	AlignCenter
	AlignRight // the number ends at X
)

// ParseAlignment converts "left", "center" or "right" into an Alignment.
func ParseAlignment(s string) (Alignment, error) {
	switch strings.ToLower(s) {
	case "left", "l", "":
		return AlignLeft, nil
	case "center", "centre", "c":
		return AlignCenter, nil
	case "right", "r":
		return AlignRight, nil
	}
	return 0, fmt.Errorf("unknown alignment %q", s)
}

func (a Alignment) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return fmt.Sprintf("Alignment(%d)", int(a))
	}
}

// Config describes one run of [AddPageNumbers].
type Config struct {
	Input  string
	Output string

	// Start and End give the inclusive, 1-based range of pages to number.
	// If Start is nil, numbering begins on the first page; if End is nil,
	// it stops on the last page.  The range is not checked against the
	// page count: pages outside the document are ignored, so that for
	// example an End of 0, or Start > End, selects no pages at all.
	Start *int
	End   *int

	FontName string
	FontSize int    // in points
	Format   string // see [ParseTemplate]

	// PageSize is the canvas on which the number is laid out.
	PageSize rect.Rect

	// X and Y give the start of the baseline of the number in PDF points,
	// with the origin in the bottom left corner of the page.  Align
	// shifts the text horizontally relative to X.
	X, Y  float64
	Align Alignment

	Color   string // fill color, "#RRGGBB"
	Opacity float64

	// Password is used to open encrypted input files.
	Password string
}

// DefaultConfig returns a configuration with all optional fields set to
// their default values.
func DefaultConfig() *Config {
	return &Config{
		FontName: "Helvetica",
		FontSize: 12,
		Format:   "- %i -",
		PageSize: A4,
		X:        280,
		Y:        800,
		Align:    AlignLeft,
		Color:    "#000000",
		Opacity:  1,
	}
}

var colorRe = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Validate checks the configuration for errors.
// All errors returned are of kind [KindConfig].
func (c *Config) Validate() error {
	if c.Input == "" {
		return configError("", "no input PDF file given")
	}
	fi, err := os.Stat(c.Input)
	if err != nil {
		return &Error{Kind: KindConfig, Op: "open input", Path: c.Input, Err: err}
	}
	if !fi.Mode().IsRegular() {
		return configError(c.Input, "input is not a regular file")
	}
	if c.Output == "" {
		return configError("", "no output PDF file given")
	}

	if c.FontSize <= 0 {
		return configError("", fmt.Sprintf("font size must be positive, not %d", c.FontSize))
	}
	if _, err := ParseTemplate(c.Format); err != nil {
		return &Error{Kind: KindConfig, Op: "invalid page number format", Path: c.Format, Err: err}
	}
	if c.PageSize.Dx() <= 0 || c.PageSize.Dy() <= 0 {
		return configError("", "page size must be positive")
	}
	if !colorRe.MatchString(c.Color) {
		return configError("", fmt.Sprintf("invalid color %q, expected #RRGGBB", c.Color))
	}
	if c.Opacity <= 0 || c.Opacity > 1 {
		return configError("", fmt.Sprintf("opacity %g out of range (0, 1]", c.Opacity))
	}
	return nil
}

// pageRange returns the effective inclusive page range for a document with
// the given number of pages.
func (c *Config) pageRange(numPages int) (first, last int) {
	first, last = 1, numPages
	if c.Start != nil {
		first = *c.Start
	}
	if c.End != nil {
		last = *c.End
	}
	return first, last
}
