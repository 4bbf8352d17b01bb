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
	"strings"
)

// Kind classifies the errors returned by this package.
type Kind int

// These are the error kinds used by [Error].
const (
	// KindConfig indicates missing or invalid settings, detected before
	// any output is written.
	KindConfig Kind = iota + 1

	// KindParse indicates that the input could not be read as a PDF file.
	KindParse

	// KindIO indicates that the output file could not be written.
	KindIO
)

func (k Kind) String() string {
	switch k {
	case KindConfig:
		return "configuration error"
	case KindParse:
		return "parsing error"
	case KindIO:
		return "I/O error"
	default:
		return "unknown error"
	}
}

// Error is the error type returned by [AddPageNumbers].
type Error struct {
	Kind Kind
	Op   string // the operation which failed, e.g. "read" or "rename"
	Path string // the file involved, if any
	Err  error
}

func (err *Error) Error() string {
	var b strings.Builder
	if err.Op != "" {
		b.WriteString(err.Op)
	} else {
		b.WriteString(err.Kind.String())
	}
	if err.Path != "" {
		b.WriteString(" ")
		b.WriteString(err.Path)
	}
	if err.Err != nil {
		b.WriteString(": ")
		b.WriteString(err.Err.Error())
	}
	return b.String()
}

func (err *Error) Unwrap() error {
	return err.Err
}

// KindOf returns the kind of the first [Error] in err's chain.
// If there is no such error, 0 is returned.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

func configError(path, msg string) *Error {
	return &Error{Kind: KindConfig, Op: "invalid settings", Path: path, Err: errors.New(msg)}
}
