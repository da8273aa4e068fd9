/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package githubapi

import (
	"context"

	"github.com/google/go-github/v75/github"
)

// GitCommit fetches a raw commit object from the git database,
// including its tree sha.
func (c *Client) GitCommit(ctx context.Context, repo RepositoryRef, sha string) (*github.Commit, error) {
	commit, _, err := c.rest.Git.GetCommit(ctx, repo.Owner, repo.Name, sha)
	if err != nil {
		return nil, normalizeError(err)
	}
	return commit, nil
}

// CreateTree submits a new tree as a delta over baseTree: paths named
// in entries are added or replaced, every other path in the base is
// preserved by the remote service.
func (c *Client) CreateTree(ctx context.Context, repo RepositoryRef, baseTree string, entries []*github.TreeEntry) (*github.Tree, error) {
	tree, _, err := c.rest.Git.CreateTree(ctx, repo.Owner, repo.Name, baseTree, entries)
	if err != nil {
		return nil, normalizeError(err)
	}
	return tree, nil
}

// CreateCommit submits a new commit object. The commit's tree and
// parents must already exist remotely.
func (c *Client) CreateCommit(ctx context.Context, repo RepositoryRef, commit *github.Commit) (*github.Commit, error) {
	created, _, err := c.rest.Git.CreateCommit(ctx, repo.Owner, repo.Name, commit, nil)
	if err != nil {
		return nil, normalizeError(err)
	}
	return created, nil
}
