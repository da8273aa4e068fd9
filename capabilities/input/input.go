/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package input

import (
	"encoding/json"
	"strings"

	"chainguard.dev/repoagent/githubapi"
)

// Positional parses a compact slash-delimited input string into named
// fields. It returns a ValidationError describing the expected format
// when the string does not fit.
type Positional func(raw string) (map[string]any, error)

// Request is a normalized capability input. Field values retain their
// JSON decoding types: string, float64, bool, []any, map[string]any.
type Request struct {
	fields     map[string]any
	positional bool
	raw        string
}

// Normalize parses raw input into a Request. A JSON object takes
// precedence only when it contains every field named in required;
// otherwise the positional parser, when given, is attempted on the raw
// string. Malformed JSON falls through to the positional parser too,
// so inputs like "golang/go" normalize without quoting gymnastics.
func Normalize(raw string, required []string, pos Positional) (*Request, error) {
	trimmed := strings.TrimSpace(raw)

	structured := parseObject(trimmed)
	if structured != nil && firstMissing(structured, required) == "" {
		return &Request{fields: structured, raw: raw}, nil
	}

	if pos != nil {
		fields, err := pos(trimmed)
		if err == nil {
			if missing := firstMissing(fields, required); missing != "" {
				return nil, githubapi.Validationf("Missing required field '%s'.", missing)
			}
			return &Request{fields: fields, positional: true, raw: raw}, nil
		}
		if structured == nil {
			return nil, err
		}
	}

	if structured == nil {
		return nil, githubapi.Validationf("Invalid JSON format. Please provide valid JSON.")
	}
	return nil, githubapi.Validationf("Missing required field '%s'.", firstMissing(structured, required))
}

// Has reports whether the request carries a value for name. Optional
// fields like the blob SHA on a file commit are detected this way.
func (r *Request) Has(name string) bool {
	_, ok := r.fields[name]
	return ok
}

// Get returns the raw decoded value for name, for callers that do
// their own shape validation. Most callers want Extract instead.
func (r *Request) Get(name string) (any, bool) {
	v, ok := r.fields[name]
	return v, ok
}

// FromPositional reports whether the request was parsed from the
// compact positional form rather than a JSON object.
func (r *Request) FromPositional() bool {
	return r.positional
}

// Raw returns the input string as received, for diagnostics.
func (r *Request) Raw() string {
	return r.raw
}

// parseObject decodes s as a JSON object, returning nil when s is not
// one. Scalars, arrays and null all return nil so the positional form
// gets its chance.
func parseObject(s string) map[string]any {
	var m map[string]any
	if err := json.Unmarshal([]byte(s), &m); err != nil {
		return nil
	}
	return m
}

// firstMissing returns the first name in required (declared order)
// absent from fields, or "" when all are present.
func firstMissing(fields map[string]any, required []string) string {
	for _, name := range required {
		if _, ok := fields[name]; !ok {
			return name
		}
	}
	return ""
}
