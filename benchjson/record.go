// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchjson reads the JSON benchmark result files produced by
// the Merkle tree benchmarking harness.
//
// A result file is a JSON array of objects, one per measured
// (data structure, function) pair. The harness writes a handful of
// well-known keys, which Record exposes as fields, and spreads the
// remaining per-task statistics into the same object. Every key is
// retained verbatim so that exporters can carry arbitrary columns.
package benchjson

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Well-known record keys.
const (
	KeyFunction    = "Function"
	KeyAverageTime = "Average Time (ms)"
	KeyOpsPerSec   = "ops/sec"
	KeySampleCount = "Samples"
	KeySamples     = "samples"

	// KeyRelativePrefix prefixes the "Relative to <Baseline>" key.
	KeyRelativePrefix = "Relative to "
)

// A Record is one benchmark result: the timing statistics of one
// function on one data structure.
type Record struct {
	// Function is the benchmark name, conventionally of the form
	// "<DataStructure> - <FunctionName>".
	Function string

	// AverageTime is the mean time per operation in milliseconds.
	AverageTime Number

	// OpsPerSec is the measured throughput.
	OpsPerSec Number

	// SampleCount is the harness's own count of samples. It is
	// NaN if the record doesn't carry one.
	SampleCount Number

	// Samples holds the per-trial timings in milliseconds, in
	// trial order.
	Samples []float64

	// fields holds every key of the record as it appeared in the
	// input. Keys are case-sensitive: "Samples" and "samples" are
	// distinct keys in harness output.
	fields map[string]json.RawMessage
	keys   []string
}

// UnmarshalJSON decodes a single record object.
//
// Decoding goes through a raw map rather than struct tags because
// encoding/json matches struct field names case-insensitively, which
// would conflate "Samples" and "samples".
func (r *Record) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '{' {
		return fmt.Errorf("record is not an object")
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	keys, err := objectKeys(data)
	if err != nil {
		return err
	}

	*r = Record{
		AverageTime: Number(math.NaN()),
		OpsPerSec:   Number(math.NaN()),
		SampleCount: Number(math.NaN()),
		fields:      fields,
		keys:        keys,
	}
	if raw, ok := fields[KeyFunction]; ok {
		if err := json.Unmarshal(raw, &r.Function); err != nil {
			return fmt.Errorf("key %q: %w", KeyFunction, err)
		}
	}
	for key, dst := range map[string]*Number{
		KeyAverageTime: &r.AverageTime,
		KeyOpsPerSec:   &r.OpsPerSec,
		KeySampleCount: &r.SampleCount,
	} {
		if raw, ok := fields[key]; ok {
			if err := json.Unmarshal(raw, dst); err != nil {
				return fmt.Errorf("key %q: %w", key, err)
			}
		}
	}
	if raw, ok := fields[KeySamples]; ok {
		var samples []Number
		if err := json.Unmarshal(raw, &samples); err != nil {
			return fmt.Errorf("key %q: %w", KeySamples, err)
		}
		r.Samples = make([]float64, len(samples))
		for i, s := range samples {
			r.Samples[i] = float64(s)
		}
	}
	return nil
}

// MarshalJSON re-encodes the record with its original keys in their
// original order.
func (r *Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range r.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		buf.Write(r.fields[k])
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Keys returns the record's keys in input order.
func (r *Record) Keys() []string {
	return r.keys
}

// Has reports whether the record has the given key.
func (r *Record) Has(key string) bool {
	_, ok := r.fields[key]
	return ok
}

// Field returns the value of key formatted for a table cell. Strings
// are returned unquoted, null is returned as the empty string, and
// all other values are returned as their JSON text.
func (r *Record) Field(key string) (string, bool) {
	raw, ok := r.fields[key]
	if !ok {
		return "", false
	}
	raw = bytes.TrimSpace(raw)
	switch {
	case bytes.Equal(raw, []byte("null")):
		return "", true
	case len(raw) > 0 && raw[0] == '"':
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			return s, true
		}
	}
	return string(raw), true
}

// Relative returns the record's "Relative to <baseline>" field.
func (r *Record) Relative(baseline string) (string, bool) {
	return r.Field(KeyRelativePrefix + baseline)
}

// objectKeys returns the keys of the JSON object data in order.
func objectKeys(data []byte) ([]string, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	if _, err := dec.Token(); err != nil { // {
		return nil, err
	}
	var keys []string
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected object key %v", tok)
		}
		var skip json.RawMessage
		if err := dec.Decode(&skip); err != nil {
			return nil, err
		}
		keys = appendKey(keys, key)
	}
	return keys, nil
}

// appendKey appends key to keys unless a duplicate key already
// appeared, in which case the later value wins but the first position
// is kept, matching encoding/json.
func appendKey(keys []string, key string) []string {
	for _, k := range keys {
		if k == key {
			return keys
		}
	}
	return append(keys, key)
}

// A Number is a measured value. The harness is not consistent about
// how it writes numbers: depending on the field they may be JSON
// numbers, decimal strings (e.g., "0.01234"), or the string "NaN" for
// failed tasks. Number accepts all of these. Missing and null values
// decode as NaN.
type Number float64

func (n *Number) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*n = Number(math.NaN())
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		// Some harness output is locale-formatted ("1,234").
		s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("invalid number %q", s)
		}
		*n = Number(v)
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*n = Number(v)
	return nil
}

// Float returns n as a float64.
func (n Number) Float() float64 {
	return float64(n)
}

// Defined reports whether n holds a value (that is, is not NaN).
func (n Number) Defined() bool {
	return !math.IsNaN(float64(n))
}
