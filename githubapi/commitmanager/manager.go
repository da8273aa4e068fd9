/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package commitmanager

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/chainguard-dev/clog"
	"github.com/google/go-github/v75/github"

	"chainguard.dev/repoagent/githubapi"
)

const (
	blobMode = "100644"
	blobType = "blob"
)

// FileChange is one file to create or replace in the commit.
type FileChange struct {
	Path    string
	Content string
}

// Result describes a successfully created commit.
type Result struct {
	// SHA is the new commit, now the branch head.
	SHA string
	// TreeSHA is the new commit's tree.
	TreeSHA string
	// ParentSHA is the branch head observed before the commit; it is
	// always the new commit's sole parent.
	ParentSHA string
}

// RaceLostError reports that the branch moved between resolving its
// head and the fast-forward ref update, so the update was rejected and
// nothing was applied. The manager never retries; re-issue the commit
// to try again against the new head.
type RaceLostError struct {
	Branch string
	Err    *githubapi.APIError
}

func (e *RaceLostError) Error() string {
	return fmt.Sprintf("lost fast-forward race on branch '%s': %v", e.Branch, e.Err)
}

func (e *RaceLostError) Unwrap() error {
	return e.Err
}

// Manager commits file changes to branches through the git database
// API. It holds no state between calls; every commit re-derives the
// branch head and base tree remotely.
type Manager struct {
	client *githubapi.Client
}

// New constructs a Manager on top of the given API client.
func New(client *githubapi.Client) *Manager {
	return &Manager{client: client}
}

// Commit stages changes into one new commit on branch and advances the
// branch to it. The changes list must be non-empty and every entry
// needs a path; the branch must already exist.
//
// The five remote calls run strictly in order, each depending on the
// previous result. Any failure aborts the sequence and leaves the
// branch where it was.
func (m *Manager) Commit(ctx context.Context, repo githubapi.RepositoryRef, branch, message string, changes []FileChange) (*Result, error) {
	if err := validateChanges(changes); err != nil {
		return nil, err
	}

	log := clog.FromContext(ctx).With("repo", repo.String(), "branch", branch)

	// Step 1: resolve the branch head. This sha is both the commit
	// parent and the baseline the final ref update is checked against.
	head, err := m.client.Branch(ctx, repo, branch)
	if err != nil {
		return nil, err
	}
	headSHA := head.GetCommit().GetSHA()

	// Step 2: read the head commit to learn its tree.
	headCommit, err := m.client.GitCommit(ctx, repo, headSHA)
	if err != nil {
		return nil, err
	}
	baseTreeSHA := headCommit.GetTree().GetSHA()

	// Step 3: create the new tree as a delta over the base tree.
	entries := make([]*github.TreeEntry, 0, len(changes))
	for _, change := range changes {
		entries = append(entries, &github.TreeEntry{
			Path:    github.Ptr(change.Path),
			Mode:    github.Ptr(blobMode),
			Type:    github.Ptr(blobType),
			Content: github.Ptr(change.Content),
		})
	}
	tree, err := m.client.CreateTree(ctx, repo, baseTreeSHA, entries)
	if err != nil {
		return nil, err
	}

	// Step 4: create the commit with the observed head as sole parent.
	commit, err := m.client.CreateCommit(ctx, repo, &github.Commit{
		Message: github.Ptr(message),
		Tree:    tree,
		Parents: []*github.Commit{{SHA: github.Ptr(headSHA)}},
	})
	if err != nil {
		return nil, err
	}
	commitSHA := commit.GetSHA()

	// Step 5: fast-forward the branch. A rejection here means the head
	// moved since step 1 and the whole operation counts as failed.
	if _, err := m.client.UpdateBranchRef(ctx, repo, branch, commitSHA); err != nil {
		if raced := asRaceLost(branch, err); raced != nil {
			log.With("head", headSHA).Warnf("branch moved during commit: %v", raced)
			return nil, raced
		}
		return nil, err
	}

	log.With("commit", commitSHA, "parent", headSHA, "files", len(changes)).Info("committed file changes")
	return &Result{
		SHA:       commitSHA,
		TreeSHA:   tree.GetSHA(),
		ParentSHA: headSHA,
	}, nil
}

func validateChanges(changes []FileChange) error {
	if len(changes) == 0 {
		return githubapi.Validationf("'files' must be a non-empty array of file objects.")
	}
	for _, change := range changes {
		if change.Path == "" {
			return githubapi.Validationf("Each file object must have 'path' and 'content' fields.")
		}
	}
	return nil
}

// The ref endpoint rejects a non-fast-forward update with 422, and a
// compare-and-swap style conflict with 409. Both mean the head moved.
func asRaceLost(branch string, err error) *RaceLostError {
	var apiErr *githubapi.APIError
	if !errors.As(err, &apiErr) {
		return nil
	}
	if apiErr.StatusCode == http.StatusUnprocessableEntity || apiErr.StatusCode == http.StatusConflict {
		return &RaceLostError{Branch: branch, Err: apiErr}
	}
	return nil
}
