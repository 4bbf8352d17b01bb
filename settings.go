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

	"gopkg.in/yaml.v2"
)

// Settings holds the presentation settings which can be stored in a YAML
// file, so that a house style does not need to be repeated on every
// command line.  Fields which are absent from the file are nil.
type Settings struct {
	Start   *int     `yaml:"start"`
	End     *int     `yaml:"end"`
	Font    *string  `yaml:"font"`
	Size    *int     `yaml:"size"`
	Format  *string  `yaml:"format"`
	Paper   *string  `yaml:"paper"`
	X       *float64 `yaml:"x"`
	Y       *float64 `yaml:"y"`
	Align   *string  `yaml:"align"`
	Color   *string  `yaml:"color"`
	Opacity *float64 `yaml:"opacity"`
}

// ReadSettings reads a settings file.  Unknown keys are reported as errors.
func ReadSettings(fname string) (*Settings, error) {
	data, err := os.ReadFile(fname)
	if err != nil {
		return nil, &Error{Kind: KindConfig, Op: "read settings", Path: fname, Err: err}
	}

	s := &Settings{}
	err = yaml.UnmarshalStrict(data, s)
	if err != nil {
		return nil, &Error{Kind: KindConfig, Op: "parse settings", Path: fname, Err: err}
	}
	return s, nil
}

// Apply copies all values present in s into c.
func (s *Settings) Apply(c *Config) error {
	if s.Start != nil {
		start := *s.Start
		c.Start = &start
	}
	if s.End != nil {
		end := *s.End
		c.End = &end
	}
	if s.Font != nil {
		c.FontName = *s.Font
	}
	if s.Size != nil {
		c.FontSize = *s.Size
	}
	if s.Format != nil {
		c.Format = *s.Format
	}
	if s.Paper != nil {
		r, err := ParsePaper(*s.Paper)
		if err != nil {
			return &Error{Kind: KindConfig, Op: "invalid settings", Err: err}
		}
		c.PageSize = r
	}
	if s.X != nil {
		c.X = *s.X
	}
	if s.Y != nil {
		c.Y = *s.Y
	}
	if s.Align != nil {
		a, err := ParseAlignment(*s.Align)
		if err != nil {
			return &Error{Kind: KindConfig, Op: "invalid settings", Err: err}
		}
		c.Align = a
	}
	if s.Color != nil {
		c.Color = *s.Color
	}
	if s.Opacity != nil {
		c.Opacity = *s.Opacity
	}
	return nil
}
