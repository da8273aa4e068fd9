/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package capabilities

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"chainguard.dev/repoagent/capabilities/input"
	"chainguard.dev/repoagent/capabilities/render"
	"chainguard.dev/repoagent/githubapi"
	"chainguard.dev/repoagent/githubapi/commitmanager"
)

const commitFileDescription = `Create or update a file in a GitHub repository.
Input should be a JSON-formatted string with the following fields:
- repo_full_name: Repository name in the format "owner/repo"
- path: Path where to create/update the file
- content: Content of the file
- message: Commit message
- branch: Branch to commit to (usually "main" or "master")
- sha: SHA of the file being replaced (required only when updating existing files)

Example for creating a new file:
{
    "repo_full_name": "pankajmisr/github-react-agent",
    "path": "docs/example.md",
    "content": "# Example File\n\nThis is an example file.",
    "message": "Add example documentation file",
    "branch": "main"
}

Example for updating an existing file:
{
    "repo_full_name": "pankajmisr/github-react-agent",
    "path": "docs/example.md",
    "content": "# Updated Example File\n\nThis file has been updated.",
    "message": "Update example documentation file",
    "branch": "main",
    "sha": "abc123def456..."
}`

func commitFile(client *githubapi.Client) *Capability {
	return &Capability{
		Name:        "github_commit_file",
		Description: commitFileDescription,
		Parameters: []Parameter{
			{Name: "repo_full_name", Type: "string", Description: `Repository name in the format "owner/repo"`, Required: true},
			{Name: "path", Type: "string", Description: "Path where to create/update the file", Required: true},
			{Name: "content", Type: "string", Description: "Content of the file", Required: true},
			{Name: "message", Type: "string", Description: "Commit message", Required: true},
			{Name: "branch", Type: "string", Description: "Branch to commit to", Required: true},
			{Name: "sha", Type: "string", Description: "Blob SHA of the file being replaced, required when updating an existing file"},
		},
		action: "committing file",
		run: func(ctx context.Context, req *input.Request) (string, error) {
			repo, err := extractRepo(req)
			if err != nil {
				return "", err
			}
			path, err := input.Extract[string](req, "path")
			if err != nil {
				return "", err
			}
			opts := githubapi.PutFileOptions{}
			if opts.Content, err = input.Extract[string](req, "content"); err != nil {
				return "", err
			}
			if opts.Message, err = input.Extract[string](req, "message"); err != nil {
				return "", err
			}
			if opts.Branch, err = input.Extract[string](req, "branch"); err != nil {
				return "", err
			}
			updating := req.Has("sha")
			if updating {
				if opts.SHA, err = input.Extract[string](req, "sha"); err != nil {
					return "", err
				}
			}

			resp, err := client.PutFile(ctx, repo, path, opts)
			if err != nil {
				return "", err
			}
			if resp.Content == nil {
				return "File operation completed, but full details not available.", nil
			}

			action := "created"
			if updating {
				action = "updated"
			}
			return fmt.Sprintf("Successfully %s file '%s' in commit %s\nFile URL: %s",
				action, resp.Content.GetPath(), render.ShortSHA(resp.Commit.GetSHA()), resp.Content.GetHTMLURL()), nil
		},
	}
}

const commitMultipleFilesDescription = `Create or update multiple files in a GitHub repository with a single commit.
Input should be a JSON-formatted string with the following fields:
- repo_full_name: Repository name in the format "owner/repo"
- files: Array of file objects, each containing "path" and "content"
- message: Commit message
- branch: Branch to commit to (usually "main" or "master")

Example:
{
    "repo_full_name": "pankajmisr/github-react-agent",
    "files": [
        {
            "path": "docs/example1.md",
            "content": "# Example File 1\n\nThis is the first example file."
        },
        {
            "path": "docs/example2.md",
            "content": "# Example File 2\n\nThis is the second example file."
        }
    ],
    "message": "Add example documentation files",
    "branch": "main"
}`

func commitMultipleFiles(commits *commitmanager.Manager) *Capability {
	return &Capability{
		Name:        "github_commit_multiple_files",
		Description: commitMultipleFilesDescription,
		Parameters: []Parameter{
			{Name: "repo_full_name", Type: "string", Description: `Repository name in the format "owner/repo"`, Required: true},
			{Name: "files", Type: "array", Description: `Array of file objects, each containing "path" and "content"`, Required: true},
			{Name: "message", Type: "string", Description: "Commit message", Required: true},
			{Name: "branch", Type: "string", Description: "Branch to commit to", Required: true},
		},
		action: "committing files",
		run: func(ctx context.Context, req *input.Request) (string, error) {
			repo, err := extractRepo(req)
			if err != nil {
				return "", err
			}
			changes, err := extractFileChanges(req)
			if err != nil {
				return "", err
			}
			message, err := input.Extract[string](req, "message")
			if err != nil {
				return "", err
			}
			branch, err := input.Extract[string](req, "branch")
			if err != nil {
				return "", err
			}

			result, err := commits.Commit(ctx, repo, branch, message, changes)
			if err != nil {
				// Failures inside the object-graph sequence, including a
				// lost fast-forward race, render with the step context the
				// error already carries. The loop decides whether to retry.
				var raceErr *commitmanager.RaceLostError
				var apiErr *githubapi.APIError
				if errors.As(err, &raceErr) || errors.As(err, &apiErr) {
					return fmt.Sprintf("Error during Git operation: %v", err), nil
				}
				return "", err
			}

			quoted := make([]string, 0, len(changes))
			for _, change := range changes {
				quoted = append(quoted, "'"+change.Path+"'")
			}
			return fmt.Sprintf("Successfully committed %d files to %s on branch '%s'.\nCommit message: '%s'\nCommit SHA: %s\nFiles: %s",
				len(changes), repo, branch, message, render.ShortSHA(result.SHA), strings.Join(quoted, ", ")), nil
		},
	}
}

// extractFileChanges validates the files field: a non-empty array of
// objects that each carry path and content strings.
func extractFileChanges(req *input.Request) ([]commitmanager.FileChange, error) {
	value, _ := req.Get("files")
	rawList, ok := value.([]any)
	if !ok || len(rawList) == 0 {
		return nil, &githubapi.ValidationError{Message: "'files' must be a non-empty array of file objects."}
	}

	changes := make([]commitmanager.FileChange, 0, len(rawList))
	for _, item := range rawList {
		obj, ok := item.(map[string]any)
		if !ok {
			return nil, &githubapi.ValidationError{Message: "Each file object must have 'path' and 'content' fields."}
		}
		path, pathOK := obj["path"].(string)
		content, contentOK := obj["content"].(string)
		if !pathOK || !contentOK {
			return nil, &githubapi.ValidationError{Message: "Each file object must have 'path' and 'content' fields."}
		}
		changes = append(changes, commitmanager.FileChange{Path: path, Content: content})
	}
	return changes, nil
}
