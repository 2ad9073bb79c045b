// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchjson

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
)

// Options configures reading of result files.
type Options struct {
	// Logf, if non-nil, receives informational diagnostics, such
	// as the number of samples in the first record.
	Logf func(format string, args ...interface{})
}

func (o *Options) logf(format string, args ...interface{}) {
	if o != nil && o.Logf != nil {
		o.Logf(format, args...)
	}
}

// A NotFoundError reports that a result file does not exist.
type NotFoundError struct {
	Path string
	Err  error
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s: result file not found", e.Path)
}

func (e *NotFoundError) Unwrap() error { return e.Err }

// A ParseError reports that a result file is not a well-formed JSON
// array of record objects.
type ParseError struct {
	FileName string
	// Index is the index of the offending record, or -1 if the
	// file as a whole is malformed.
	Index int
	Err   error
}

func (e *ParseError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("%s: %v", e.FileName, e.Err)
	}
	return fmt.Sprintf("%s: record %d: %v", e.FileName, e.Index, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

var errNotArray = errors.New("top-level value is not an array of records")

// Read reads a result file from r. fileName is used in errors and
// diagnostics only. Read returns one Record per element of the
// top-level array, in file order.
func Read(r io.Reader, fileName string, opts *Options) ([]*Record, error) {
	if fileName == "" {
		fileName = "<unknown>"
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	// Decode in two steps so that a bad record can be reported by
	// position.
	if trimmed := bytes.TrimSpace(data); len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, &ParseError{fileName, -1, errNotArray}
	}
	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, &ParseError{fileName, -1, err}
	}
	records := make([]*Record, len(raws))
	for i, raw := range raws {
		rec := new(Record)
		if err := rec.UnmarshalJSON(raw); err != nil {
			return nil, &ParseError{fileName, i, err}
		}
		records[i] = rec
	}

	if len(records) > 0 {
		opts.logf("%s: %d samples in first record", fileName, len(records[0].Samples))
	}
	return records, nil
}

// Load reads the result file at path. If the file does not exist, it
// returns a *NotFoundError.
func Load(path string, opts *Options) ([]*Record, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &NotFoundError{path, err}
		}
		return nil, err
	}
	defer f.Close()
	return Read(f, path, opts)
}
