/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package input_test

import (
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"chainguard.dev/repoagent/capabilities/input"
	"chainguard.dev/repoagent/githubapi"
)

// pullPositional mirrors the compact form used by the pull request
// capabilities: "owner/repo/pull_number".
func pullPositional(raw string) (map[string]any, error) {
	parts := strings.Split(raw, "/")
	if len(parts) < 3 {
		return nil, githubapi.Validationf("Invalid input format. Use 'owner/repo/pull_number' or JSON format.")
	}
	number, err := strconv.Atoi(parts[2])
	if err != nil {
		return nil, githubapi.Validationf("Pull request number must be an integer.")
	}
	return map[string]any{
		"repo_full_name": parts[0] + "/" + parts[1],
		"pull_number":    float64(number),
	}, nil
}

func validationMessage(t *testing.T, err error) string {
	t.Helper()
	var verr *githubapi.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("error = %v, want *githubapi.ValidationError", err)
	}
	return verr.Message
}

func fieldsOf(req *input.Request, names ...string) map[string]any {
	got := map[string]any{}
	for _, name := range names {
		if v, ok := req.Get(name); ok {
			got[name] = v
		}
	}
	return got
}

func TestNormalize(t *testing.T) {
	required := []string{"repo_full_name", "pull_number"}

	tests := []struct {
		name           string
		raw            string
		wantFields     map[string]any
		wantPositional bool
		wantErr        string
	}{{
		name: "structured object wins",
		raw:  `{"repo_full_name": "golang/go", "pull_number": 42}`,
		wantFields: map[string]any{
			"repo_full_name": "golang/go",
			"pull_number":    float64(42),
		},
	}, {
		name: "positional form",
		raw:  "golang/go/42",
		wantFields: map[string]any{
			"repo_full_name": "golang/go",
			"pull_number":    float64(42),
		},
		wantPositional: true,
	}, {
		name: "positional form with surrounding whitespace",
		raw:  "  golang/go/42\n",
		wantFields: map[string]any{
			"repo_full_name": "golang/go",
			"pull_number":    float64(42),
		},
		wantPositional: true,
	}, {
		name:    "structured object missing a field",
		raw:     `{"repo_full_name": "golang/go"}`,
		wantErr: "Missing required field 'pull_number'.",
	}, {
		name:    "positional form with bad number",
		raw:     "golang/go/abc",
		wantErr: "Pull request number must be an integer.",
	}, {
		name:    "positional form with too few segments",
		raw:     "golang/go",
		wantErr: "Invalid input format. Use 'owner/repo/pull_number' or JSON format.",
	}, {
		name:    "JSON array is not an object",
		raw:     `[1, 2]`,
		wantErr: "Invalid input format. Use 'owner/repo/pull_number' or JSON format.",
	}, {
		name:    "JSON null is not an object",
		raw:     `null`,
		wantErr: "Invalid input format. Use 'owner/repo/pull_number' or JSON format.",
	}}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := input.Normalize(tt.raw, required, pullPositional)
			if tt.wantErr != "" {
				if msg := validationMessage(t, err); msg != tt.wantErr {
					t.Errorf("Normalize(%q) error = %q, want %q", tt.raw, msg, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Normalize(%q) returned unexpected error: %v", tt.raw, err)
			}

			got := fieldsOf(req, "repo_full_name", "pull_number")
			if diff := cmp.Diff(tt.wantFields, got); diff != "" {
				t.Errorf("Normalize(%q) fields mismatch (-want, +got):\n%s", tt.raw, diff)
			}
			if req.FromPositional() != tt.wantPositional {
				t.Errorf("FromPositional() = %v, want %v", req.FromPositional(), tt.wantPositional)
			}
			if req.Raw() != tt.raw {
				t.Errorf("Raw() = %q, want %q", req.Raw(), tt.raw)
			}
		})
	}
}

// Capabilities without a compact form pass a nil positional parser and
// report JSON problems directly.
func TestNormalizeJSONOnly(t *testing.T) {
	required := []string{"repo_full_name", "title"}

	tests := []struct {
		name    string
		raw     string
		wantErr string
	}{{
		name: "complete object",
		raw:  `{"repo_full_name": "golang/go", "title": "fix typo"}`,
	}, {
		name:    "malformed JSON",
		raw:     "not json at all",
		wantErr: "Invalid JSON format. Please provide valid JSON.",
	}, {
		name:    "missing fields reported in declared order",
		raw:     `{"title": "fix typo"}`,
		wantErr: "Missing required field 'repo_full_name'.",
	}, {
		name:    "empty object reports the first declared field",
		raw:     `{}`,
		wantErr: "Missing required field 'repo_full_name'.",
	}}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := input.Normalize(tt.raw, required, nil)
			if tt.wantErr != "" {
				if msg := validationMessage(t, err); msg != tt.wantErr {
					t.Errorf("Normalize(%q) error = %q, want %q", tt.raw, msg, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Normalize(%q) returned unexpected error: %v", tt.raw, err)
			}
			if req.FromPositional() {
				t.Error("FromPositional() = true, want false")
			}
		})
	}
}

func TestRequestHas(t *testing.T) {
	req, err := input.Normalize(`{"sha": "abc123", "branch": "main"}`, nil, nil)
	if err != nil {
		t.Fatalf("Normalize returned unexpected error: %v", err)
	}

	if !req.Has("sha") {
		t.Error("Has(sha) = false, want true")
	}
	if req.Has("path") {
		t.Error("Has(path) = true, want false")
	}
}

func newRequest(t *testing.T, raw string) *input.Request {
	t.Helper()
	req, err := input.Normalize(raw, nil, nil)
	if err != nil {
		t.Fatalf("Normalize(%q) returned unexpected error: %v", raw, err)
	}
	return req
}

func TestExtract(t *testing.T) {
	req := newRequest(t, `{
		"repo_full_name": "golang/go",
		"pull_number": 42,
		"draft": true,
		"files": [{"path": "a.txt", "content": "a"}]
	}`)

	repo, err := input.Extract[string](req, "repo_full_name")
	if err != nil {
		t.Fatalf("Extract[string] returned unexpected error: %v", err)
	}
	if repo != "golang/go" {
		t.Errorf("Extract[string](repo_full_name) = %q, want %q", repo, "golang/go")
	}

	// JSON numbers decode as float64 and convert to integer kinds.
	number, err := input.Extract[int](req, "pull_number")
	if err != nil {
		t.Fatalf("Extract[int] returned unexpected error: %v", err)
	}
	if number != 42 {
		t.Errorf("Extract[int](pull_number) = %d, want 42", number)
	}

	wide, err := input.Extract[int64](req, "pull_number")
	if err != nil {
		t.Fatalf("Extract[int64] returned unexpected error: %v", err)
	}
	if wide != 42 {
		t.Errorf("Extract[int64](pull_number) = %d, want 42", wide)
	}

	draft, err := input.Extract[bool](req, "draft")
	if err != nil {
		t.Fatalf("Extract[bool] returned unexpected error: %v", err)
	}
	if !draft {
		t.Error("Extract[bool](draft) = false, want true")
	}

	files, err := input.Extract[[]any](req, "files")
	if err != nil {
		t.Fatalf("Extract[[]any] returned unexpected error: %v", err)
	}
	if len(files) != 1 {
		t.Errorf("Extract[[]any](files) returned %d entries, want 1", len(files))
	}
}

func TestExtractErrors(t *testing.T) {
	req := newRequest(t, `{"pull_number": "forty-two"}`)

	_, err := input.Extract[string](req, "repo_full_name")
	if msg := validationMessage(t, err); msg != "Missing required field 'repo_full_name'." {
		t.Errorf("Extract missing field error = %q", msg)
	}

	_, err = input.Extract[int](req, "pull_number")
	if msg := validationMessage(t, err); msg != "pull_number must be of type int, got string." {
		t.Errorf("Extract type mismatch error = %q", msg)
	}
}

func TestExtractOptional(t *testing.T) {
	req := newRequest(t, `{"merge_method": "squash", "per_page": 10}`)

	method, err := input.ExtractOptional(req, "merge_method", "merge")
	if err != nil {
		t.Fatalf("ExtractOptional returned unexpected error: %v", err)
	}
	if method != "squash" {
		t.Errorf("ExtractOptional(merge_method) = %q, want %q", method, "squash")
	}

	title, err := input.ExtractOptional(req, "commit_title", "")
	if err != nil {
		t.Fatalf("ExtractOptional returned unexpected error: %v", err)
	}
	if title != "" {
		t.Errorf("ExtractOptional(commit_title) = %q, want default", title)
	}

	perPage, err := input.ExtractOptional(req, "per_page", 5)
	if err != nil {
		t.Fatalf("ExtractOptional returned unexpected error: %v", err)
	}
	if perPage != 10 {
		t.Errorf("ExtractOptional(per_page) = %d, want 10", perPage)
	}

	_, err = input.ExtractOptional(req, "merge_method", 0)
	if msg := validationMessage(t, err); msg != "merge_method must be of type int, got string." {
		t.Errorf("ExtractOptional type mismatch error = %q", msg)
	}
}
