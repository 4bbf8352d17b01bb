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
	"strconv"
	"strings"

	"seehuhn.de/go/geom/rect"
)

// Common paper sizes, in PDF points.
var (
	A3     = rect.Rect{URx: 841.890, URy: 1190.551}
	A4     = rect.Rect{URx: 595.276, URy: 841.890}
	A5     = rect.Rect{URx: 419.528, URy: 595.276}
	Letter = rect.Rect{URx: 612, URy: 792}
	Legal  = rect.Rect{URx: 612, URy: 1008}
)

var paperNames = map[string]rect.Rect{
	"a3":     A3,
	"a4":     A4,
	"a5":     A5,
	"letter": Letter,
	"legal":  Legal,
}

// ParsePaper converts a paper name like "A4" or "letter", or an explicit size
// like "612x792" (width and height in points), into a rectangle.
func ParsePaper(s string) (rect.Rect, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if r, ok := paperNames[key]; ok {
		return r, nil
	}

	ws, hs, ok := strings.Cut(key, "x")
	if !ok {
		return rect.Rect{}, fmt.Errorf("unknown paper size %q", s)
	}
	w, err := strconv.ParseFloat(ws, 64)
	if err != nil {
		return rect.Rect{}, fmt.Errorf("invalid paper width in %q", s)
	}
	h, err := strconv.ParseFloat(hs, 64)
	if err != nil {
		return rect.Rect{}, fmt.Errorf("invalid paper height in %q", s)
	}
	if w <= 0 || h <= 0 {
		return rect.Rect{}, fmt.Errorf("paper size %q must be positive", s)
	}
	return rect.Rect{URx: w, URy: h}, nil
}

// PaperName returns the name of a known paper size, or "WxH" otherwise.
func PaperName(r rect.Rect) string {
	for _, name := range []string{"a4", "letter", "a3", "a5", "legal"} {
		if paperNames[name] == r {
			if len(name) == 2 {
				return strings.ToUpper(name)
			}
			return strings.ToUpper(name[:1]) + name[1:]
		}
	}
	return strconv.FormatFloat(r.Dx(), 'f', -1, 64) + "x" +
		strconv.FormatFloat(r.Dy(), 'f', -1, 64)
}

func inside(r rect.Rect, x, y float64) bool {
	return x >= r.LLx && x <= r.URx && y >= r.LLy && y <= r.URy
}
