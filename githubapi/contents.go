/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package githubapi

import (
	"context"

	"github.com/google/go-github/v75/github"
)

// Contents fetches a path from a repository. Exactly one of the two
// returns is non-nil on success: a file yields file metadata plus
// content, a directory yields the entry listing. gitRef selects a
// branch, tag, or commit; empty means the default branch.
func (c *Client) Contents(ctx context.Context, repo RepositoryRef, path, gitRef string) (*github.RepositoryContent, []*github.RepositoryContent, error) {
	var opts *github.RepositoryContentGetOptions
	if gitRef != "" {
		opts = &github.RepositoryContentGetOptions{Ref: gitRef}
	}
	file, dir, _, err := c.rest.Repositories.GetContents(ctx, repo.Owner, repo.Name, path, opts)
	if err != nil {
		return nil, nil, normalizeError(err)
	}
	return file, dir, nil
}

// PutFileOptions describes a single-file create or update. SHA must be
// the file's current blob sha when updating an existing file so the
// remote side can reject overwrites of concurrent edits; leave it empty
// to create a new file.
type PutFileOptions struct {
	Message string
	Content string
	Branch  string
	SHA     string
}

// PutFile creates or updates one file through the contents API. The
// remote service performs the tree/commit/ref bookkeeping internally.
func (c *Client) PutFile(ctx context.Context, repo RepositoryRef, path string, opts PutFileOptions) (*github.RepositoryContentResponse, error) {
	fileOpts := &github.RepositoryContentFileOptions{
		Message: github.Ptr(opts.Message),
		Content: []byte(opts.Content),
		Branch:  github.Ptr(opts.Branch),
	}

	var (
		resp *github.RepositoryContentResponse
		err  error
	)
	if opts.SHA != "" {
		fileOpts.SHA = github.Ptr(opts.SHA)
		resp, _, err = c.rest.Repositories.UpdateFile(ctx, repo.Owner, repo.Name, path, fileOpts)
	} else {
		resp, _, err = c.rest.Repositories.CreateFile(ctx, repo.Owner, repo.Name, path, fileOpts)
	}
	if err != nil {
		return nil, normalizeError(err)
	}
	return resp, nil
}
