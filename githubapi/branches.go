/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package githubapi

import (
	"context"

	"github.com/google/go-github/v75/github"
)

const branchPageSize = 100

// Branch fetches one branch, including its head commit sha.
func (c *Client) Branch(ctx context.Context, repo RepositoryRef, branch string) (*github.Branch, error) {
	b, _, err := c.rest.Repositories.GetBranch(ctx, repo.Owner, repo.Name, branch, 0)
	if err != nil {
		return nil, normalizeError(err)
	}
	return b, nil
}

// Branches lists the repository's branches.
func (c *Client) Branches(ctx context.Context, repo RepositoryRef) ([]*github.Branch, error) {
	opts := &github.BranchListOptions{
		ListOptions: github.ListOptions{PerPage: branchPageSize},
	}
	branches, _, err := c.rest.Repositories.ListBranches(ctx, repo.Owner, repo.Name, opts)
	if err != nil {
		return nil, normalizeError(err)
	}
	return branches, nil
}

// CreateBranchRef creates refs/heads/{branch} pointing at sha.
func (c *Client) CreateBranchRef(ctx context.Context, repo RepositoryRef, branch, sha string) (*github.Reference, error) {
	ref, _, err := c.rest.Git.CreateRef(ctx, repo.Owner, repo.Name, &github.Reference{
		Ref:    github.Ptr("refs/heads/" + branch),
		Object: &github.GitObject{SHA: github.Ptr(sha)},
	})
	if err != nil {
		return nil, normalizeError(err)
	}
	return ref, nil
}

// UpdateBranchRef points refs/heads/{branch} at sha as a fast-forward
// only update: the remote service rejects it if the branch head moved
// since the caller observed it.
func (c *Client) UpdateBranchRef(ctx context.Context, repo RepositoryRef, branch, sha string) (*github.Reference, error) {
	ref, _, err := c.rest.Git.UpdateRef(ctx, repo.Owner, repo.Name, &github.Reference{
		Ref:    github.Ptr("refs/heads/" + branch),
		Object: &github.GitObject{SHA: github.Ptr(sha)},
	}, false)
	if err != nil {
		return nil, normalizeError(err)
	}
	return ref, nil
}
