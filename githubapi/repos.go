/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package githubapi

import (
	"context"

	"github.com/google/go-github/v75/github"
)

// Repository fetches repository metadata.
func (c *Client) Repository(ctx context.Context, repo RepositoryRef) (*github.Repository, error) {
	r, _, err := c.rest.Repositories.Get(ctx, repo.Owner, repo.Name)
	if err != nil {
		return nil, normalizeError(err)
	}
	return r, nil
}

// Languages fetches the byte counts per language for a repository.
func (c *Client) Languages(ctx context.Context, repo RepositoryRef) (map[string]int, error) {
	langs, _, err := c.rest.Repositories.ListLanguages(ctx, repo.Owner, repo.Name)
	if err != nil {
		return nil, normalizeError(err)
	}
	return langs, nil
}
