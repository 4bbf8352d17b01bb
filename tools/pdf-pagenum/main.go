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

// Pdf-pagenum adds page numbers to the pages of a PDF file.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"golang.org/x/term"

	"seehuhn.de/go/pagenum"
	"seehuhn.de/go/pagenum/tools/internal/buildinfo"
	"seehuhn.de/go/pagenum/tools/internal/logging"
	"seehuhn.de/go/pagenum/tools/internal/profile"
)

// Exit codes.
const (
	exitOK      = 0
	exitFailed  = 1
	exitInvalid = 2
)

// options holds everything given on the command line.
type options struct {
	cfg *pagenum.Config

	askPassword bool
	log         logging.Options
	cpuprofile  string
	memprofile  string
}

// errUsage is returned for command lines which the flag package already
// reported.
var errUsage = errors.New("invalid command line")

func main() {
	// all settings come from the command line, and font files are
	// installed into a temporary directory
	api.DisableConfigDir()

	opt, err := parseArgs(os.Args[1:], os.Stderr)
	switch {
	case errors.Is(err, flag.ErrHelp):
		os.Exit(exitOK)
	case errors.Is(err, errUsage):
		os.Exit(exitInvalid)
	case err != nil:
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(exitInvalid)
	}

	err = run(opt)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		if pagenum.KindOf(err) == pagenum.KindConfig {
			os.Exit(exitInvalid)
		}
		os.Exit(exitFailed)
	}
}

func usage(fs *flag.FlagSet) func() {
	return func() {
		w := fs.Output()
		fmt.Fprintf(w, "pdf-pagenum - add page numbers to a PDF file\n")
		fmt.Fprintf(w, "%s\n\n", buildinfo.Short("pdf-pagenum"))
		fmt.Fprintf(w, "Usage:\n")
		fmt.Fprintf(w, "  pdf-pagenum -i input.pdf -o output.pdf [options]\n\n")
		fmt.Fprintf(w, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(w, "\nExamples:\n")
		fmt.Fprintf(w, "  pdf-pagenum -i thesis.pdf -o numbered.pdf\n")
		fmt.Fprintf(w, "  pdf-pagenum -i thesis.pdf -o numbered.pdf -s 3 -f 'Page %%i' -x 297 -y 30 -a center\n")
		fmt.Fprintf(w, "  pdf-pagenum -config house-style.yaml -i report.pdf -o out.pdf\n")
	}
}

// parseArgs converts the command line into options.  Values from a
// settings file given with -config are overridden by explicit flags.
func parseArgs(args []string, stderr io.Writer) (*options, error) {
	def := pagenum.DefaultConfig()

	fs := flag.NewFlagSet("pdf-pagenum", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = usage(fs)

	input := fs.String("i", "", "input PDF `file` (required)")
	output := fs.String("o", "", "output PDF `file` (required), overwritten if it exists")
	start := fs.Int("s", 0, "first `page` to number, 1-based (default first page)")
	end := fs.Int("e", 0, "last `page` to number, 1-based (default last page)")
	fontName := fs.String("F", def.FontName, "standard font `name`, or a .ttf font file")
	fontSize := fs.Int("S", def.FontSize, "font `size` in points")
	format := fs.String("f", def.Format, "page number `format`, with one %i or %d placeholder")
	x := fs.Float64("x", def.X, "horizontal `position` of the page number, in points")
	y := fs.Float64("y", def.Y, "vertical `position` of the page number, in points")
	align := fs.String("a", def.Align.String(), "alignment relative to -x: left, center or right")
	color := fs.String("color", def.Color, "text color as `#RRGGBB`")
	opacity := fs.Float64("opacity", def.Opacity, "text opacity, between 0 and 1")
	paper := fs.String("paper", pagenum.PaperName(def.PageSize), "page `size` the position refers to: A3, A4, A5, Letter, Legal or WxH")
	password := fs.String("p", "", "PDF `password`")
	askPassword := fs.Bool("ask", false, "prompt for the PDF password")
	settings := fs.String("config", "", "read settings from a YAML `file`")
	quiet := fs.Bool("q", false, "only report warnings and errors")
	jsonLog := fs.Bool("json", false, "write log messages as JSON")
	cpuprofile := fs.String("cpuprofile", "", "write cpu profile to `file`")
	memprofile := fs.String("memprofile", "", "write memory profile to `file`")

	err := fs.Parse(args)
	if errors.Is(err, flag.ErrHelp) {
		return nil, err
	} else if err != nil {
		return nil, errUsage
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(stderr, "unexpected argument %q\n", fs.Arg(0))
		fs.Usage()
		return nil, errUsage
	}

	cfg := pagenum.DefaultConfig()
	if *settings != "" {
		s, err := pagenum.ReadSettings(*settings)
		if err != nil {
			return nil, err
		}
		err = s.Apply(cfg)
		if err != nil {
			return nil, err
		}
	}

	var flagErr error
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "s":
			cfg.Start = start
		case "e":
			cfg.End = end
		case "F":
			cfg.FontName = *fontName
		case "S":
			cfg.FontSize = *fontSize
		case "f":
			cfg.Format = *format
		case "x":
			cfg.X = *x
		case "y":
			cfg.Y = *y
		case "a":
			a, err := pagenum.ParseAlignment(*align)
			if err != nil {
				flagErr = err
			}
			cfg.Align = a
		case "color":
			cfg.Color = *color
		case "opacity":
			cfg.Opacity = *opacity
		case "paper":
			r, err := pagenum.ParsePaper(*paper)
			if err != nil {
				flagErr = err
			}
			cfg.PageSize = r
		}
	})
	if flagErr != nil {
		return nil, flagErr
	}
	cfg.Input = *input
	cfg.Output = *output
	cfg.Password = *password

	opt := &options{
		cfg:         cfg,
		askPassword: *askPassword,
		log:         logging.Options{JSON: *jsonLog, Quiet: *quiet},
		cpuprofile:  *cpuprofile,
		memprofile:  *memprofile,
	}
	return opt, nil
}

func run(opt *options) error {
	log := logging.New(os.Stderr, opt.log)
	defer log.Sync()

	prof, err := profile.Start(opt.cpuprofile, opt.memprofile, log)
	if err != nil {
		return err
	}
	defer prof.Stop()

	if opt.askPassword && opt.cfg.Password == "" {
		passwd, err := readPassword()
		if err != nil {
			return err
		}
		opt.cfg.Password = passwd
	}

	_, err = pagenum.AddPageNumbers(opt.cfg, &pagenum.Options{Logger: log})
	return err
}

func readPassword() (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", errors.New("-ask needs a terminal on standard input")
	}
	fmt.Fprint(os.Stderr, "password: ")
	passwd, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", err
	}
	return string(passwd), nil
}
