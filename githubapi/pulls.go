/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package githubapi

import (
	"context"

	"github.com/google/go-github/v75/github"
)

const pullFilesPageSize = 100

// CreatePullRequest opens a pull request.
func (c *Client) CreatePullRequest(ctx context.Context, repo RepositoryRef, pull *github.NewPullRequest) (*github.PullRequest, error) {
	pr, _, err := c.rest.PullRequests.Create(ctx, repo.Owner, repo.Name, pull)
	if err != nil {
		return nil, normalizeError(err)
	}
	return pr, nil
}

// PullRequest fetches one pull request.
func (c *Client) PullRequest(ctx context.Context, repo RepositoryRef, number int) (*github.PullRequest, error) {
	pr, _, err := c.rest.PullRequests.Get(ctx, repo.Owner, repo.Name, number)
	if err != nil {
		return nil, normalizeError(err)
	}
	return pr, nil
}

// PullRequestFiles lists the files changed by a pull request.
func (c *Client) PullRequestFiles(ctx context.Context, repo RepositoryRef, number int) ([]*github.CommitFile, error) {
	files, _, err := c.rest.PullRequests.ListFiles(ctx, repo.Owner, repo.Name, number, &github.ListOptions{
		PerPage: pullFilesPageSize,
	})
	if err != nil {
		return nil, normalizeError(err)
	}
	return files, nil
}

// MergePullRequest merges a pull request. commitMessage may be empty to
// let the remote service compose one.
func (c *Client) MergePullRequest(ctx context.Context, repo RepositoryRef, number int, commitMessage string, opts *github.PullRequestOptions) (*github.PullRequestMergeResult, error) {
	result, _, err := c.rest.PullRequests.Merge(ctx, repo.Owner, repo.Name, number, commitMessage, opts)
	if err != nil {
		return nil, normalizeError(err)
	}
	return result, nil
}

// CreateReview submits a review on a pull request.
func (c *Client) CreateReview(ctx context.Context, repo RepositoryRef, number int, review *github.PullRequestReviewRequest) (*github.PullRequestReview, error) {
	created, _, err := c.rest.PullRequests.CreateReview(ctx, repo.Owner, repo.Name, number, review)
	if err != nil {
		return nil, normalizeError(err)
	}
	return created, nil
}

// Reviews lists the reviews on a pull request.
func (c *Client) Reviews(ctx context.Context, repo RepositoryRef, number int) ([]*github.PullRequestReview, error) {
	reviews, _, err := c.rest.PullRequests.ListReviews(ctx, repo.Owner, repo.Name, number, nil)
	if err != nil {
		return nil, normalizeError(err)
	}
	return reviews, nil
}
