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
	"io"
	"os"

	"go.uber.org/zap"
)

// Options can be used to modify the behaviour of [AddPageNumbers].
type Options struct {
	// Logger receives one informational message per page.
	// If this is nil, nothing is logged.
	Logger *zap.Logger

	// Stamper is used to read the input and to write the output.
	// If this is nil, the stamper returned by [NewStamper] is used.
	Stamper Stamper
}

// Result summarises a successful run of [AddPageNumbers].
type Result struct {
	Pages    int   // number of pages in the document
	Numbered []int // the pages which received a number, in increasing order
	Output   string
}

// AddPageNumbers reads the PDF file cfg.Input, adds page numbers to all
// pages in the range cfg.Start to cfg.End, and writes the result to
// cfg.Output.  An existing output file is overwritten.
//
// The output file is only replaced once the complete document has been
// written, so a failed run leaves any previous output file untouched.
// Errors are of type [*Error].
func AddPageNumbers(cfg *Config, opt *Options) (*Result, error) {
	if opt == nil {
		opt = &Options{}
	}
	log := opt.Logger
	if log == nil {
		log = zap.NewNop()
	}

	err := cfg.Validate()
	if err != nil {
		return nil, err
	}
	tmpl, err := ParseTemplate(cfg.Format)
	if err != nil {
		return nil, &Error{Kind: KindConfig, Op: "invalid page number format", Path: cfg.Format, Err: err}
	}
	font, err := ResolveFont(cfg.FontName)
	if err != nil {
		return nil, err
	}
	defer font.Release()

	stamper := opt.Stamper
	if stamper == nil {
		style := TextStyle{
			Font:    font,
			Size:    cfg.FontSize,
			Color:   cfg.Color,
			Opacity: cfg.Opacity,
		}
		stamper, err = NewStamper(style, cfg.Password)
		if err != nil {
			return nil, err
		}
	}

	in, err := os.Open(cfg.Input)
	if err != nil {
		return nil, &Error{Kind: KindConfig, Op: "open input", Path: cfg.Input, Err: err}
	}
	defer in.Close()

	log.Info("reading input",
		zap.String("input", cfg.Input),
		zap.String("output", cfg.Output))

	numPages, err := stamper.NumPages(in)
	if err != nil {
		return nil, &Error{Kind: KindParse, Op: "read", Path: cfg.Input, Err: err}
	}

	first, last := cfg.pageRange(numPages)
	stamps := make(map[int]*Stamp)
	var numbered []int
	warned := false
	for pageNo := 1; pageNo <= numPages; pageNo++ {
		if pageNo < first || pageNo > last {
			log.Info("page left unchanged", zap.Int("page", pageNo))
			continue
		}

		text := tmpl.Format(pageNo)
		err = font.CheckText(text)
		if err != nil {
			return nil, &Error{Kind: KindConfig, Op: "invalid page number format", Path: cfg.Format, Err: err}
		}

		x := cfg.X
		switch cfg.Align {
		case AlignCenter:
			x -= font.TextWidth(text, cfg.FontSize) / 2
		case AlignRight:
			x -= font.TextWidth(text, cfg.FontSize)
		}
		if !warned && !inside(cfg.PageSize, x, cfg.Y) {
			log.Warn("page number lies outside the page",
				zap.Float64("x", x),
				zap.Float64("y", cfg.Y),
				zap.String("paper", PaperName(cfg.PageSize)))
			warned = true
		}

		stamps[pageNo] = &Stamp{Page: pageNo, Text: text, X: x, Y: cfg.Y}
		numbered = append(numbered, pageNo)
		log.Info("page number added", zap.Int("page", pageNo), zap.String("text", text))
	}

	_, err = in.Seek(0, io.SeekStart)
	if err != nil {
		return nil, &Error{Kind: KindIO, Op: "read", Path: cfg.Input, Err: err}
	}

	out, err := createOutput(cfg.Output)
	if err != nil {
		return nil, err
	}
	if len(stamps) == 0 {
		_, err = io.Copy(out, in)
		if err != nil {
			out.Abort()
			return nil, &Error{Kind: KindIO, Op: "copy", Path: cfg.Input, Err: err}
		}
	} else {
		err = stamper.Stamp(in, out, stamps)
		if err != nil {
			out.Abort()
			if out.writeErr != nil {
				return nil, &Error{Kind: KindIO, Op: "write", Path: cfg.Output, Err: out.writeErr}
			}
			return nil, &Error{Kind: KindParse, Op: "add page numbers to", Path: cfg.Input, Err: err}
		}
	}
	err = out.Commit()
	if err != nil {
		return nil, err
	}

	log.Info("output written",
		zap.String("output", cfg.Output),
		zap.Int("pages", numPages),
		zap.Int("numbered", len(numbered)))

	res := &Result{
		Pages:    numPages,
		Numbered: numbered,
		Output:   cfg.Output,
	}
	return res, nil
}
