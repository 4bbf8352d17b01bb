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
	"io"
	"math"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	pdffont "github.com/pdfcpu/pdfcpu/pkg/font"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
	"github.com/xdg-go/stringprep"
)

// Stamp is the overlay for a single page.
type Stamp struct {
	Page int // 1-based
	Text string

	// X and Y give the start of the baseline of the text, in PDF points.
	X, Y float64
}

// A Stamper reads PDF files and composites stamps onto their pages.
type Stamper interface {
	// NumPages returns the number of pages of the PDF file.
	NumPages(in io.ReadSeeker) (int, error)

	// Stamp copies the PDF file from in to out.  The entries of stamps
	// are drawn on top of the existing content of the corresponding pages,
	// all other pages are copied unchanged.
	Stamp(in io.ReadSeeker, out io.Writer, stamps map[int]*Stamp) error
}

// TextStyle describes how stamps are rendered.
type TextStyle struct {
	Font    *Font
	Size    int
	Color   string // "#RRGGBB"
	Opacity float64
}

type pdfcpuStamper struct {
	style    TextStyle
	password string
}

// NewStamper returns a [Stamper] which uses pdfcpu to read and write PDF
// files.  If password is non-empty, it is used to open encrypted files.
func NewStamper(style TextStyle, password string) (Stamper, error) {
	if password != "" {
		prepped, err := stringprep.SASLprep.Prepare(password)
		if err != nil {
			return nil, &Error{Kind: KindConfig, Op: "invalid password", Err: err}
		}
		password = prepped
	}
	s := &pdfcpuStamper{
		style:    style,
		password: password,
	}
	return s, nil
}

func (s *pdfcpuStamper) conf() *model.Configuration {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	if s.password != "" {
		conf.UserPW = s.password
		conf.OwnerPW = s.password
	}
	return conf
}

func (s *pdfcpuStamper) NumPages(in io.ReadSeeker) (int, error) {
	return api.PageCount(in, s.conf())
}

func (s *pdfcpuStamper) Stamp(in io.ReadSeeker, out io.Writer, stamps map[int]*Stamp) error {
	desc := fmt.Sprintf("font:%s, points:%d, pos:bl, scale:1 abs, rot:0, fillcolor:%s, opacity:%g",
		s.style.Font.Name, s.style.Size, s.style.Color, s.style.Opacity)

	m := make(map[int]*model.Watermark, len(stamps))
	for pageNo, st := range stamps {
		wm, err := api.TextWatermark(st.Text, desc, true, false, types.POINTS)
		if err != nil {
			return fmt.Errorf("page %d: %w", pageNo, err)
		}
		// The offset moves the bottom left corner of the text box, and
		// pdfcpu sets the baseline ceil(descent) above that corner.
		wm.Dx = st.X
		wm.Dy = st.Y - baselineOffset(s.style.Font.Name, s.style.Size)
		m[pageNo] = wm
	}

	return api.AddWatermarksMap(in, out, m, s.conf())
}

// baselineOffset gives the distance between the bottom of a text stamp and
// the baseline of its text.
func baselineOffset(fontName string, size int) float64 {
	return math.Ceil(pdffont.Descent(fontName, size))
}
