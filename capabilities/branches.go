/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package capabilities

import (
	"context"
	"fmt"
	"strings"

	"chainguard.dev/repoagent/capabilities/input"
	"chainguard.dev/repoagent/capabilities/render"
	"chainguard.dev/repoagent/githubapi"
)

const createBranchDescription = `Create a new branch in a GitHub repository.
Input should be a JSON-formatted string with the following fields:
- repo_full_name: Repository name in the format "owner/repo"
- branch_name: Name for the new branch
- from_branch: Source branch to create from (optional, defaults to the repository's default branch)

Example:
{
    "repo_full_name": "pankajmisr/github-react-agent",
    "branch_name": "feature/new-tool",
    "from_branch": "main"
}`

// branchURLReplacer rewrites a ref API URL into the branch's web URL.
var branchURLReplacer = strings.NewReplacer(
	"api.github.com/repos", "github.com",
	"/git/refs/heads", "/tree",
)

func createBranch(client *githubapi.Client) *Capability {
	return &Capability{
		Name:        "github_create_branch",
		Description: createBranchDescription,
		Parameters: []Parameter{
			{Name: "repo_full_name", Type: "string", Description: `Repository name in the format "owner/repo"`, Required: true},
			{Name: "branch_name", Type: "string", Description: "Name for the new branch", Required: true},
			{Name: "from_branch", Type: "string", Description: "Source branch to create from, defaults to the repository's default branch"},
		},
		action: "creating branch",
		run: func(ctx context.Context, req *input.Request) (string, error) {
			repo, err := extractRepo(req)
			if err != nil {
				return "", err
			}
			branchName, err := input.Extract[string](req, "branch_name")
			if err != nil {
				return "", err
			}
			fromBranch, err := input.ExtractOptional[string](req, "from_branch", "")
			if err != nil {
				return "", err
			}

			if fromBranch == "" {
				details, err := client.Repository(ctx, repo)
				if err != nil {
					return "", err
				}
				fromBranch = details.GetDefaultBranch()
			}

			source, err := client.Branch(ctx, repo, fromBranch)
			if err != nil {
				return "", err
			}
			sha := source.GetCommit().GetSHA()

			ref, err := client.CreateBranchRef(ctx, repo, branchName, sha)
			if err != nil {
				return "", err
			}

			return fmt.Sprintf("Successfully created branch '%s' in repository %s\nCreated from: %s (%s)\nBranch URL: %s",
				branchName, repo, fromBranch, render.ShortSHA(sha), branchURLReplacer.Replace(ref.GetURL())), nil
		},
	}
}

const listBranchesDescription = `List branches in a GitHub repository.
Input should be the repository name in the format "owner/repo".

Example: "pankajmisr/github-react-agent"`

func listBranches(client *githubapi.Client) *Capability {
	return &Capability{
		Name:        "github_list_branches",
		Description: listBranchesDescription,
		Parameters: []Parameter{
			{Name: "repo_full_name", Type: "string", Description: `Repository name in the format "owner/repo"`, Required: true},
		},
		action: "listing branches",
		positional: func(raw string) (map[string]any, error) {
			return map[string]any{"repo_full_name": raw}, nil
		},
		run: func(ctx context.Context, req *input.Request) (string, error) {
			repo, err := extractRepo(req)
			if err != nil {
				return "", err
			}

			details, err := client.Repository(ctx, repo)
			if err != nil {
				return "", err
			}
			defaultBranch := details.GetDefaultBranch()

			branches, err := client.Branches(ctx, repo)
			if err != nil {
				return "", err
			}
			if len(branches) == 0 {
				return fmt.Sprintf("No branches found in repository %s.", repo), nil
			}

			render.SortBranches(branches, defaultBranch)

			var b strings.Builder
			fmt.Fprintf(&b, "# Branches in %s\n\n", repo)
			for _, branch := range branches {
				marker := ""
				if branch.GetName() == defaultBranch {
					marker = " (default)"
				}
				fmt.Fprintf(&b, "- [%s%s](https://github.com/%s/tree/%s) - Latest commit: %s\n",
					branch.GetName(), marker, repo, branch.GetName(), render.ShortSHA(branch.GetCommit().GetSHA()))
			}
			return b.String(), nil
		},
	}
}
