// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchjson

import (
	"path/filepath"
	"strings"
)

// DefaultDir is the directory the analysis tools read from and write
// to when none is given.
const DefaultDir = "./data"

// A Files resolves result base names, such as "insert", against a
// data directory.
type Files struct {
	// Dir is the data directory. If empty, DefaultDir is used.
	Dir string
}

// DataExts are the extensions of the files the analysis tools read
// and write. Other dots in a base name, as in "node-v20.11", are part
// of the name.
var DataExts = []string{".json", ".csv"}

// HasDataExt reports whether name ends in one of DataExts.
func HasDataExt(name string) bool {
	ext := filepath.Ext(name)
	for _, e := range DataExts {
		if ext == e {
			return true
		}
	}
	return false
}

// Path returns the path of the file with base name name and extension
// ext (including the dot) in f's directory. A name that already ends
// in ext is used as given, and a name with a directory component is
// not moved into f's directory.
func (f Files) Path(name, ext string) string {
	if ext != "" && filepath.Ext(name) == ext {
		return name
	}
	if strings.ContainsRune(name, filepath.Separator) {
		return name + ext
	}
	dir := f.Dir
	if dir == "" {
		dir = DefaultDir
	}
	return filepath.Join(dir, name+ext)
}

// Output returns the path of a derived output file, such as
// "<dir>/insert-bar.csv" for name "insert", suffix "bar", and ext
// ".csv".
func (f Files) Output(name, suffix, ext string) string {
	base := filepath.Base(name)
	if HasDataExt(base) {
		base = strings.TrimSuffix(base, filepath.Ext(base))
	}
	if suffix != "" {
		base += "-" + suffix
	}
	dir := f.Dir
	if dir == "" {
		dir = DefaultDir
	}
	if strings.ContainsRune(name, filepath.Separator) {
		dir = filepath.Dir(name)
	}
	return filepath.Join(dir, base+ext)
}

// Load reads the result file with base name name.
func (f Files) Load(name string, opts *Options) ([]*Record, error) {
	return Load(f.Path(name, ".json"), opts)
}
