/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package capabilities

import (
	"time"

	"github.com/google/go-github/v75/github"

	"chainguard.dev/repoagent/capabilities/input"
	"chainguard.dev/repoagent/githubapi"
)

// orDefault substitutes fallback for an empty string, e.g. a missing
// repository description.
func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

// formatTime renders an API timestamp the way the API itself does,
// RFC 3339 in UTC.
func formatTime(ts github.Timestamp) string {
	return ts.UTC().Format(time.RFC3339)
}

// extractRepo reads and parses the repo_full_name field.
func extractRepo(req *input.Request) (githubapi.RepositoryRef, error) {
	full, err := input.Extract[string](req, "repo_full_name")
	if err != nil {
		return githubapi.RepositoryRef{}, err
	}
	return githubapi.ParseRepositoryRef(full)
}

// extractPull reads the repo_full_name and pull_number fields shared
// by the pull-request capabilities.
func extractPull(req *input.Request) (githubapi.RepositoryRef, int, error) {
	repo, err := extractRepo(req)
	if err != nil {
		return githubapi.RepositoryRef{}, 0, err
	}
	number, err := input.Extract[int](req, "pull_number")
	if err != nil {
		return githubapi.RepositoryRef{}, 0, err
	}
	return repo, number, nil
}
