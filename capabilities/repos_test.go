/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package capabilities_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const searchResultsJSON = `{
	"total_count": 2,
	"incomplete_results": false,
	"items": [{
		"full_name": "golang/go",
		"description": "The Go programming language",
		"language": "Go",
		"stargazers_count": 120000,
		"forks_count": 17000,
		"updated_at": "2024-03-01T10:00:00Z",
		"html_url": "https://github.com/golang/go"
	}, {
		"full_name": "golang/tools",
		"stargazers_count": 7000,
		"forks_count": 2200,
		"updated_at": "2024-02-15T08:30:00Z",
		"html_url": "https://github.com/golang/tools"
	}]
}`

func TestSearchRepositories(t *testing.T) {
	var gotQuery string
	mux := http.NewServeMux()
	mux.HandleFunc("GET /search/repositories", func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("q")
		fmt.Fprint(w, searchResultsJSON)
	})
	reg := newTestRegistry(t, mux)

	got := invoke(t, reg, "github_search_repositories", "language:go stars:>1000")

	if gotQuery != "language:go stars:>1000" {
		t.Errorf("search query = %q, want the raw input", gotQuery)
	}

	want := `Found 2 repositories matching your query. Here are the top 2 results:

1. golang/go
   Description: The Go programming language
   Language: Go
   Stars: 120000, Forks: 17000
   Updated: 2024-03-01T10:00:00Z
   URL: https://github.com/golang/go

2. golang/tools
   Description: No description
   Language: Not specified
   Stars: 7000, Forks: 2200
   Updated: 2024-02-15T08:30:00Z
   URL: https://github.com/golang/tools

`
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("rendered search results mismatch (-want, +got):\n%s", diff)
	}
}

// The page size is clamped into 1-100 and defaults to 5, whatever the
// input asked for.
func TestSearchRepositoriesPageSize(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{{
		name: "compact input defaults to 5",
		raw:  "language:go",
		want: "5",
	}, {
		name: "requested size passes through",
		raw:  `{"query": "language:go", "per_page": 7}`,
		want: "7",
	}, {
		name: "oversized request is capped",
		raw:  `{"query": "language:go", "per_page": 500}`,
		want: "100",
	}, {
		name: "zero falls back to the default",
		raw:  `{"query": "language:go", "per_page": 0}`,
		want: "5",
	}}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotPerPage string
			mux := http.NewServeMux()
			mux.HandleFunc("GET /search/repositories", func(w http.ResponseWriter, r *http.Request) {
				gotPerPage = r.URL.Query().Get("per_page")
				fmt.Fprint(w, `{"total_count": 0, "items": []}`)
			})
			reg := newTestRegistry(t, mux)

			got := invoke(t, reg, "github_search_repositories", tt.raw)
			if got != "No repositories found matching your query." {
				t.Errorf("Invoke = %q, want the no-results text", got)
			}
			if gotPerPage != tt.want {
				t.Errorf("per_page = %q, want %q", gotPerPage, tt.want)
			}
		})
	}
}

func TestRepoDetails(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /repos/golang/go", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{
			"full_name": "golang/go",
			"description": "The Go programming language",
			"owner": {"login": "golang", "type": "Organization"},
			"created_at": "2014-08-19T04:33:40Z",
			"updated_at": "2024-03-01T10:00:00Z",
			"default_branch": "master",
			"stargazers_count": 120000,
			"watchers_count": 120000,
			"forks_count": 17000,
			"open_issues_count": 9000,
			"size": 400000,
			"homepage": "https://go.dev",
			"html_url": "https://github.com/golang/go",
			"clone_url": "https://github.com/golang/go.git",
			"ssh_url": "git@github.com:golang/go.git",
			"license": {"name": "BSD 3-Clause License"}
		}`)
	})
	mux.HandleFunc("GET /repos/golang/go/languages", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"Go": 61200, "Shell": 26200, "Assembly": 12600}`)
	})
	reg := newTestRegistry(t, mux)

	got := invoke(t, reg, "github_repo_details", "golang/go")

	want := `# golang/go

**Description**: The Go programming language

**Owner**: golang (Organization)
**Created**: 2014-08-19T04:33:40Z
**Last Updated**: 2024-03-01T10:00:00Z
**Default Branch**: master

## Stats

**Stars**: 120000
**Watchers**: 120000
**Forks**: 17000
**Open Issues**: 9000
**Size**: 400000 KB

## Languages

Go (61.2%), Shell (26.2%), Assembly (12.6%)

## URLs

**Homepage**: https://go.dev
**GitHub URL**: https://github.com/golang/go
**Clone URL**: https://github.com/golang/go.git
**SSH URL**: git@github.com:golang/go.git

**License**: BSD 3-Clause License
`
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("rendered repository details mismatch (-want, +got):\n%s", diff)
	}
}

// Repositories without optional metadata render placeholders rather
// than empty fields, and skip the license line entirely.
func TestRepoDetailsSparse(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /repos/octocat/hello-world", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{
			"full_name": "octocat/hello-world",
			"owner": {"login": "octocat", "type": "User"},
			"created_at": "2020-01-01T00:00:00Z",
			"updated_at": "2020-06-01T00:00:00Z",
			"default_branch": "main",
			"html_url": "https://github.com/octocat/hello-world",
			"clone_url": "https://github.com/octocat/hello-world.git",
			"ssh_url": "git@github.com:octocat/hello-world.git"
		}`)
	})
	mux.HandleFunc("GET /repos/octocat/hello-world/languages", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{}`)
	})
	reg := newTestRegistry(t, mux)

	got := invoke(t, reg, "github_repo_details", "octocat/hello-world")

	want := `# octocat/hello-world

**Description**: No description

**Owner**: octocat (User)
**Created**: 2020-01-01T00:00:00Z
**Last Updated**: 2020-06-01T00:00:00Z
**Default Branch**: main

## Stats

**Stars**: 0
**Watchers**: 0
**Forks**: 0
**Open Issues**: 0
**Size**: 0 KB

## Languages

No language data available

## URLs

**Homepage**: N/A
**GitHub URL**: https://github.com/octocat/hello-world
**Clone URL**: https://github.com/octocat/hello-world.git
**SSH URL**: git@github.com:octocat/hello-world.git
`
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("rendered repository details mismatch (-want, +got):\n%s", diff)
	}
}
