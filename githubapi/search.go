/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package githubapi

import (
	"context"

	"github.com/google/go-github/v75/github"
)

// SearchRepositories runs a repository search query and returns the
// first page of results, perPage entries at most.
func (c *Client) SearchRepositories(ctx context.Context, query string, perPage int) (*github.RepositoriesSearchResult, error) {
	opts := &github.SearchOptions{
		ListOptions: github.ListOptions{PerPage: perPage},
	}
	result, _, err := c.rest.Search.Repositories(ctx, query, opts)
	if err != nil {
		return nil, normalizeError(err)
	}
	return result, nil
}
