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
	"strings"
)

// Template is a parsed page number format, like "- %i -".
type Template struct {
	src    string
	layout string // the template rewritten for fmt.Sprintf
}

var (
	errNoVerb       = errors.New("format contains no integer placeholder")
	errTooManyVerbs = errors.New("format contains more than one placeholder")
	errBadVerb      = errors.New("unsupported placeholder in format")
	errTrailingPct  = errors.New("format ends with an incomplete placeholder")
)

// ParseTemplate parses a page number template.
//
// The template must contain exactly one integer placeholder.  Both %d and
// %i are accepted, optionally with the flags "-+ 0#", a width and a
// precision, e.g. %03i or %.3i.
// The sequence %% denotes a literal percent sign.
func ParseTemplate(s string) (*Template, error) {
	var b strings.Builder
	verbs := 0

	i := 0
	for i < len(s) {
		c := s[i]
		if c != '%' {
			b.WriteByte(c)
			i++
			continue
		}

		j := i + 1
		if j < len(s) && s[j] == '%' {
			b.WriteString("%%")
			i = j + 1
			continue
		}
		for j < len(s) && strings.IndexByte("-+ 0#", s[j]) >= 0 {
			j++
		}
		for j < len(s) && s[j] >= '0' && s[j] <= '9' {
			j++
		}
		if j < len(s) && s[j] == '.' {
			j++
			for j < len(s) && s[j] >= '0' && s[j] <= '9' {
				j++
			}
		}
		if j >= len(s) {
			return nil, errTrailingPct
		}

		switch s[j] {
		case 'd', 'i':
			verbs++
			if verbs > 1 {
				return nil, errTooManyVerbs
			}
			b.WriteString(s[i:j])
			b.WriteByte('d')
		default:
			return nil, fmt.Errorf("%w: %q", errBadVerb, s[i:j+1])
		}
		i = j + 1
	}
	if verbs == 0 {
		return nil, errNoVerb
	}

	return &Template{src: s, layout: b.String()}, nil
}

// Format returns the label for the given page number.
func (t *Template) Format(pageNo int) string {
	return fmt.Sprintf(t.layout, pageNo)
}

func (t *Template) String() string {
	return t.src
}
