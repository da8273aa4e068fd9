/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package capabilities

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/go-github/v75/github"

	"chainguard.dev/repoagent/capabilities/input"
	"chainguard.dev/repoagent/githubapi"
)

const createPullRequestDescription = `Create a pull request on a GitHub repository.
Input should be a JSON-formatted string with the following fields:
- repo_full_name: Repository name in the format "owner/repo"
- title: Title of the pull request
- head: The name of the branch where your changes are implemented
- base: The name of the branch you want the changes pulled into (usually "main" or "master")
- body: Description of the pull request (optional)

Example:
{
    "repo_full_name": "pankajmisr/github-react-agent",
    "title": "Add new feature",
    "head": "feature-branch",
    "base": "main",
    "body": "This PR adds a new feature that..."
}`

func createPullRequest(client *githubapi.Client) *Capability {
	return &Capability{
		Name:        "github_create_pull_request",
		Description: createPullRequestDescription,
		Parameters: []Parameter{
			{Name: "repo_full_name", Type: "string", Description: `Repository name in the format "owner/repo"`, Required: true},
			{Name: "title", Type: "string", Description: "Title of the pull request", Required: true},
			{Name: "head", Type: "string", Description: "Branch where the changes are implemented", Required: true},
			{Name: "base", Type: "string", Description: "Branch the changes should be pulled into", Required: true},
			{Name: "body", Type: "string", Description: "Description of the pull request"},
		},
		action: "creating pull request",
		run: func(ctx context.Context, req *input.Request) (string, error) {
			repo, err := extractRepo(req)
			if err != nil {
				return "", err
			}
			title, err := input.Extract[string](req, "title")
			if err != nil {
				return "", err
			}
			head, err := input.Extract[string](req, "head")
			if err != nil {
				return "", err
			}
			base, err := input.Extract[string](req, "base")
			if err != nil {
				return "", err
			}

			pull := &github.NewPullRequest{
				Title: github.Ptr(title),
				Head:  github.Ptr(head),
				Base:  github.Ptr(base),
			}
			if req.Has("body") {
				body, err := input.Extract[string](req, "body")
				if err != nil {
					return "", err
				}
				pull.Body = github.Ptr(body)
			}

			created, err := client.CreatePullRequest(ctx, repo, pull)
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("Successfully created pull request #%d: %s", created.GetNumber(), created.GetHTMLURL()), nil
		},
	}
}

const getPullRequestDescription = `Get detailed information about a GitHub pull request.
Input should be in the format "owner/repo/pull_number" or as a JSON object.

Simple format example: "pankajmisr/github-react-agent/5"

JSON format example:
{
    "repo_full_name": "pankajmisr/github-react-agent",
    "pull_number": 5
}`

func getPullRequest(client *githubapi.Client) *Capability {
	return &Capability{
		Name:        "github_get_pull_request",
		Description: getPullRequestDescription,
		Parameters: []Parameter{
			{Name: "repo_full_name", Type: "string", Description: `Repository name in the format "owner/repo"`, Required: true},
			{Name: "pull_number", Type: "integer", Description: "The pull request number", Required: true},
		},
		action:     "getting pull request details",
		positional: pullNumberPositional,
		run: func(ctx context.Context, req *input.Request) (string, error) {
			repo, number, err := extractPull(req)
			if err != nil {
				return "", err
			}

			pr, err := client.PullRequest(ctx, repo, number)
			if err != nil {
				return "", err
			}
			files, err := client.PullRequestFiles(ctx, repo, number)
			if err != nil {
				return "", err
			}

			var b strings.Builder
			fmt.Fprintf(&b, "# Pull Request #%d: %s\n\n", number, pr.GetTitle())

			fmt.Fprintf(&b, "**Status**: %s", strings.ToUpper(pr.GetState()))
			if pr.GetMerged() {
				b.WriteString(" (MERGED)")
			}
			b.WriteString("\n")

			fmt.Fprintf(&b, "**Author**: %s\n", pr.GetUser().GetLogin())
			fmt.Fprintf(&b, "**Created**: %s\n", formatTime(pr.GetCreatedAt()))
			if !pr.GetUpdatedAt().IsZero() {
				fmt.Fprintf(&b, "**Updated**: %s\n", formatTime(pr.GetUpdatedAt()))
			}
			if !pr.GetClosedAt().IsZero() {
				fmt.Fprintf(&b, "**Closed**: %s\n", formatTime(pr.GetClosedAt()))
			}
			if !pr.GetMergedAt().IsZero() {
				fmt.Fprintf(&b, "**Merged**: %s\n", formatTime(pr.GetMergedAt()))
			}
			fmt.Fprintf(&b, "**URL**: %s\n\n", pr.GetHTMLURL())

			fmt.Fprintf(&b, "**Base Branch**: %s\n", pr.GetBase().GetRef())
			fmt.Fprintf(&b, "**Head Branch**: %s\n\n", pr.GetHead().GetRef())

			if pr.GetBody() != "" {
				b.WriteString("## Description\n\n")
				fmt.Fprintf(&b, "%s\n\n", pr.GetBody())
			}

			if len(files) > 0 {
				b.WriteString("## Files Changed\n\n")
				for _, f := range files {
					fmt.Fprintf(&b, "- %s **%s** (%s, +%d/-%d)\n",
						fileStatusIcon(f.GetStatus()), f.GetFilename(), f.GetStatus(), f.GetAdditions(), f.GetDeletions())
				}
			}
			return b.String(), nil
		},
	}
}

func fileStatusIcon(status string) string {
	switch status {
	case "added":
		return "➕"
	case "modified":
		return "✏️"
	case "removed":
		return "🗑️"
	default:
		return "🔄"
	}
}

const mergePullRequestDescription = `Merge a GitHub pull request.
Input should be a JSON-formatted string with the following fields:
- repo_full_name: Repository name in the format "owner/repo"
- pull_number: The pull request number
- merge_method: (Optional) Merge method to use, one of: "merge" (default), "squash", "rebase"
- commit_title: (Optional) Title for the automatic commit message
- commit_message: (Optional) Extra detail to append to automatic commit message

Example:
{
    "repo_full_name": "pankajmisr/github-react-agent",
    "pull_number": 5,
    "merge_method": "squash",
    "commit_title": "Implement new feature"
}`

func mergePullRequest(client *githubapi.Client) *Capability {
	return &Capability{
		Name:        "github_merge_pull_request",
		Description: mergePullRequestDescription,
		Parameters: []Parameter{
			{Name: "repo_full_name", Type: "string", Description: `Repository name in the format "owner/repo"`, Required: true},
			{Name: "pull_number", Type: "integer", Description: "The pull request number", Required: true},
			{Name: "merge_method", Type: "string", Description: `One of "merge", "squash", "rebase"; defaults to "merge"`},
			{Name: "commit_title", Type: "string", Description: "Title for the automatic commit message"},
			{Name: "commit_message", Type: "string", Description: "Extra detail to append to the automatic commit message"},
		},
		action: "merging pull request",
		run: func(ctx context.Context, req *input.Request) (string, error) {
			repo, number, err := extractPull(req)
			if err != nil {
				return "", err
			}

			method := "merge"
			opts := &github.PullRequestOptions{}
			if req.Has("merge_method") {
				method, err = input.Extract[string](req, "merge_method")
				if err != nil {
					return "", err
				}
				switch method {
				case "merge", "squash", "rebase":
				default:
					return "", &githubapi.ValidationError{Message: "Invalid merge method. Must be one of: merge, squash, rebase."}
				}
				opts.MergeMethod = method
			}
			if req.Has("commit_title") {
				if opts.CommitTitle, err = input.Extract[string](req, "commit_title"); err != nil {
					return "", err
				}
			}
			commitMessage, err := input.ExtractOptional[string](req, "commit_message", "")
			if err != nil {
				return "", err
			}

			result, err := client.MergePullRequest(ctx, repo, number, commitMessage, opts)
			if err != nil {
				return mergeFailureText(repo, number, err)
			}

			if !result.GetMerged() {
				return fmt.Sprintf("Failed to merge pull request #%d in %s.", number, repo), nil
			}
			return fmt.Sprintf("Successfully merged pull request #%d in %s using %s method.\nCommit SHA: %s\nMessage: %s",
				number, repo, method, result.GetSHA(), result.GetMessage()), nil
		},
	}
}

// mergeFailureText maps the common merge rejections onto targeted
// guidance; anything else propagates for standard failure rendering.
func mergeFailureText(repo githubapi.RepositoryRef, number int, err error) (string, error) {
	var apiErr *githubapi.APIError
	if !errors.As(err, &apiErr) {
		return "", err
	}
	msg := apiErr.Error()
	switch {
	case strings.Contains(msg, "Pull Request is not mergeable"):
		return fmt.Sprintf("Error: Pull request #%d in %s cannot be merged. It may have conflicts that need to be resolved.", number, repo), nil
	case strings.Contains(msg, "Required status check"):
		return fmt.Sprintf("Error: Cannot merge pull request #%d because required status checks have not passed.", number), nil
	case strings.Contains(msg, "Pull Request review"):
		return fmt.Sprintf("Error: Cannot merge pull request #%d because it requires reviews.", number), nil
	}
	return "", err
}

// pullNumberPositional parses "owner/repo/pull_number".
func pullNumberPositional(raw string) (map[string]any, error) {
	parts := strings.Split(raw, "/")
	if len(parts) < 3 {
		return nil, &githubapi.ValidationError{Message: "Invalid input format. Use 'owner/repo/pull_number' or JSON format."}
	}
	number, err := strconv.Atoi(parts[2])
	if err != nil {
		return nil, &githubapi.ValidationError{Message: "Pull request number must be an integer."}
	}
	return map[string]any{
		"repo_full_name": parts[0] + "/" + parts[1],
		"pull_number":    number,
	}, nil
}
