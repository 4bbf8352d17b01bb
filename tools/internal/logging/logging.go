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

// Package logging sets up the logger used by the command line tools.
package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"
)

// Options control the output of the logger.
type Options struct {
	// JSON selects one JSON object per line instead of human-readable text.
	JSON bool

	// Quiet suppresses informational messages.
	Quiet bool
}

// New returns a logger which writes to w.
// Levels are colored if w is a terminal.
func New(w *os.File, opt Options) *zap.Logger {
	level := zapcore.InfoLevel
	if opt.Quiet {
		level = zapcore.WarnLevel
	}

	var enc zapcore.Encoder
	if opt.JSON {
		enc = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	} else {
		cfg := zap.NewDevelopmentEncoderConfig()
		cfg.TimeKey = ""
		cfg.CallerKey = ""
		cfg.NameKey = ""
		if term.IsTerminal(int(w.Fd())) {
			cfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		} else {
			cfg.EncodeLevel = zapcore.CapitalLevelEncoder
		}
		enc = zapcore.NewConsoleEncoder(cfg)
	}

	core := zapcore.NewCore(enc, zapcore.Lock(w), level)
	return zap.New(core)
}
