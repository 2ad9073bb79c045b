// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchtab

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/aclements/go-gg/table"
)

// A Format is an output format for tables.
type Format int

const (
	CSV Format = iota
	HTML
	Text
)

var formatNames = map[string]Format{
	"csv":  CSV,
	"html": HTML,
	"text": Text,
}

// ParseFormat returns the Format with the given name.
func ParseFormat(name string) (Format, error) {
	f, ok := formatNames[name]
	if !ok {
		return 0, fmt.Errorf("unknown format %q; want csv, html, or text", name)
	}
	return f, nil
}

func (f Format) String() string {
	switch f {
	case CSV:
		return "csv"
	case HTML:
		return "html"
	case Text:
		return "text"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// Ext returns the file extension for f, including the dot.
func (f Format) Ext() string {
	switch f {
	case HTML:
		return ".html"
	case Text:
		return ".txt"
	}
	return ".csv"
}

// Write writes g to w in format f.
func Write(w io.Writer, g table.Grouping, f Format) error {
	switch f {
	case CSV:
		return writeCSV(w, g)
	case HTML:
		return writeHTML(w, g)
	case Text:
		return table.Fprint(w, g)
	}
	return fmt.Errorf("unknown format %v", f)
}

// A WriteError reports that a table could not be written to a file.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("writing %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// WriteFile writes g to the file at path in format f, replacing any
// existing file.
func WriteFile(path string, g table.Grouping, f Format) error {
	file, err := os.Create(path)
	if err != nil {
		return &WriteError{path, err}
	}
	w := bufio.NewWriter(file)
	err = Write(w, g, f)
	if err == nil {
		err = w.Flush()
	}
	if cerr := file.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return &WriteError{path, err}
	}
	return nil
}
