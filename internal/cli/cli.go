// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cli holds the flags and entry point shared by the analysis
// commands.
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"gonum.org/v1/plot/vg"

	"github.com/imt-benchmarks/analysis/benchjson"
)

// ErrUsage reports bad command-line arguments. The usage message has
// already been printed when a command returns it.
var ErrUsage = errors.New("invalid usage")

var exit = os.Exit // replaced during testing

// A UsageError reports flag values that parsed but are not valid
// together, such as -y1 equal to -y2. It matches ErrUsage.
type UsageError struct {
	Err error
}

func (e *UsageError) Error() string { return e.Err.Error() }

func (e *UsageError) Unwrap() error { return e.Err }

func (e *UsageError) Is(target error) bool { return target == ErrUsage }

// Invalid wraps a non-nil configuration error in a *UsageError.
func Invalid(err error) error {
	if err == nil {
		return nil
	}
	return &UsageError{err}
}

// Main runs a command's run function with the process's arguments and
// standard streams. It exits with status 2 on ErrUsage and 1 on any
// other error. A *UsageError is printed before exiting; the flag
// package has already reported other usage errors.
func Main(name string, run func(stdout, stderr io.Writer, args []string) error) {
	log.SetPrefix(name + ": ")
	log.SetFlags(0)
	err := run(os.Stdout, os.Stderr, os.Args[1:])
	switch {
	case err == nil:
	case errors.Is(err, flag.ErrHelp):
		exit(0)
	case errors.Is(err, ErrUsage):
		var uerr *UsageError
		if errors.As(err, &uerr) {
			log.Print(err)
		}
		exit(2)
	default:
		log.Print(err)
		exit(1)
	}
}

// NewFlagSet returns a flag set that reports errors instead of
// exiting. Its usage message starts with synopsis, followed by doc
// and the flag defaults.
func NewFlagSet(name string, stderr io.Writer, synopsis, doc string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: %s %s\n\n%s\nFlags:\n", name, synopsis, doc)
		fs.PrintDefaults()
	}
	return fs
}

// Parse parses args into fs and checks that between minArgs and
// maxArgs positional arguments remain. Errors are returned wrapped
// around ErrUsage, or as flag.ErrHelp for -h.
func Parse(fs *flag.FlagSet, args []string, minArgs, maxArgs int) error {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}
	if fs.NArg() < minArgs {
		fmt.Fprintf(fs.Output(), "missing arguments\n")
		fs.Usage()
		return ErrUsage
	}
	if fs.NArg() > maxArgs {
		fmt.Fprintf(fs.Output(), "too many arguments: %q\n", fs.Args()[maxArgs:])
		fs.Usage()
		return ErrUsage
	}
	return nil
}

// Logger returns a logger that writes prefixed diagnostics to stderr.
func Logger(name string, stderr io.Writer) *log.Logger {
	return log.New(stderr, name+": ", 0)
}

// Common holds the flags every command takes.
type Common struct {
	// Data is the directory holding input and output files.
	Data string

	// Verbose prints the produced table to stdout.
	Verbose bool
}

// Register defines -data and -v on fs.
func (c *Common) Register(fs *flag.FlagSet) {
	fs.StringVar(&c.Data, "data", benchjson.DefaultDir, "read and write files in `dir`")
	fs.BoolVar(&c.Verbose, "v", false, "print the produced table to stdout")
}

// Files resolves base names against the data directory.
func (c *Common) Files() benchjson.Files {
	return benchjson.Files{Dir: c.Data}
}

// Chart holds the flags of commands that render a chart.
type Chart struct {
	Title, XLabel, YLabel string

	// Out is the chart file. Its extension selects the image
	// format. If empty, the command picks a name next to its input.
	Out string

	// Width and Height are the image size in centimetres.
	Width, Height float64
}

// Register defines the chart flags on fs with the given default
// labels.
func (c *Chart) Register(fs *flag.FlagSet, title, xlabel, ylabel string) {
	fs.StringVar(&c.Title, "title", title, "chart `title`")
	fs.StringVar(&c.XLabel, "xlabel", xlabel, "X axis `label`")
	fs.StringVar(&c.YLabel, "ylabel", ylabel, "Y axis `label`")
	fs.StringVar(&c.Out, "o", "", "write the chart to `file` (.png, .svg, .pdf, ...)")
	fs.Float64Var(&c.Width, "width", 16, "image width in `cm`")
	fs.Float64Var(&c.Height, "height", 10, "image height in `cm`")
}

func (c *Chart) Validate() error {
	if !(c.Width > 0) || !(c.Height > 0) {
		return fmt.Errorf("-width and -height must be positive, got %vx%v", c.Width, c.Height)
	}
	return nil
}

// Size returns the image size.
func (c *Chart) Size() (vg.Length, vg.Length) {
	return vg.Length(c.Width) * vg.Centimeter, vg.Length(c.Height) * vg.Centimeter
}
