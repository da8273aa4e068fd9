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

const searchRepositoriesDescription = `Search for GitHub repositories based on a query.
Input should be a search query string, or a JSON object with a "query" field and an optional "per_page" field (1-100, default 5).
Examples:
- "language:python stars:>1000"
- "react native"
- "machine learning language:python stars:>500 created:>2022-01-01"
- "user:microsoft language:typescript"
- "org:tensorflow"

Useful search qualifiers:
- language:[language] - Filter by programming language
- stars:[number] or stars:>[number] - Filter by stars
- created:[date] - Filter by creation date
- pushed:[date] - Filter by last update date
- user:[username] - Repositories from a specific user
- org:[org] - Repositories from a specific organization`

func searchRepositories(client *githubapi.Client) *Capability {
	return &Capability{
		Name:        "github_search_repositories",
		Description: searchRepositoriesDescription,
		Parameters: []Parameter{
			{Name: "query", Type: "string", Description: "Search query, supports GitHub search qualifiers", Required: true},
			{Name: "per_page", Type: "integer", Description: "Number of results to return (1-100, default 5)"},
		},
		action: "searching repositories",
		positional: func(raw string) (map[string]any, error) {
			return map[string]any{"query": raw}, nil
		},
		run: func(ctx context.Context, req *input.Request) (string, error) {
			query, err := input.Extract[string](req, "query")
			if err != nil {
				return "", err
			}
			perPage, err := input.ExtractOptional[int](req, "per_page", 0)
			if err != nil {
				return "", err
			}

			results, err := client.SearchRepositories(ctx, query, render.ClampPageSize(perPage))
			if err != nil {
				return "", err
			}

			if results.GetTotal() == 0 {
				return "No repositories found matching your query.", nil
			}

			var b strings.Builder
			fmt.Fprintf(&b, "Found %d repositories matching your query. Here are the top %d results:\n\n",
				results.GetTotal(), len(results.Repositories))
			for i, repo := range results.Repositories {
				fmt.Fprintf(&b, "%d. %s\n", i+1, repo.GetFullName())
				fmt.Fprintf(&b, "   Description: %s\n", orDefault(repo.GetDescription(), "No description"))
				fmt.Fprintf(&b, "   Language: %s\n", orDefault(repo.GetLanguage(), "Not specified"))
				fmt.Fprintf(&b, "   Stars: %d, Forks: %d\n", repo.GetStargazersCount(), repo.GetForksCount())
				fmt.Fprintf(&b, "   Updated: %s\n", formatTime(repo.GetUpdatedAt()))
				fmt.Fprintf(&b, "   URL: %s\n\n", repo.GetHTMLURL())
			}
			return b.String(), nil
		},
	}
}

const repoDetailsDescription = `Get detailed information about a GitHub repository.
Input should be in the format "owner/repo".
Examples:
- "langchain-ai/langchain"
- "facebook/react"
- "tensorflow/tensorflow"
- "microsoft/vscode"`

func repoDetails(client *githubapi.Client) *Capability {
	return &Capability{
		Name:        "github_repo_details",
		Description: repoDetailsDescription,
		Parameters: []Parameter{
			{Name: "repo_full_name", Type: "string", Description: `Repository name in the format "owner/repo"`, Required: true},
		},
		action: "getting repository details",
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
			languages, err := client.Languages(ctx, repo)
			if err != nil {
				return "", err
			}

			var b strings.Builder
			fmt.Fprintf(&b, "# %s\n\n", details.GetFullName())
			fmt.Fprintf(&b, "**Description**: %s\n\n", orDefault(details.GetDescription(), "No description"))
			fmt.Fprintf(&b, "**Owner**: %s (%s)\n", details.GetOwner().GetLogin(), details.GetOwner().GetType())
			fmt.Fprintf(&b, "**Created**: %s\n", formatTime(details.GetCreatedAt()))
			fmt.Fprintf(&b, "**Last Updated**: %s\n", formatTime(details.GetUpdatedAt()))
			fmt.Fprintf(&b, "**Default Branch**: %s\n\n", details.GetDefaultBranch())

			b.WriteString("## Stats\n\n")
			fmt.Fprintf(&b, "**Stars**: %d\n", details.GetStargazersCount())
			fmt.Fprintf(&b, "**Watchers**: %d\n", details.GetWatchersCount())
			fmt.Fprintf(&b, "**Forks**: %d\n", details.GetForksCount())
			fmt.Fprintf(&b, "**Open Issues**: %d\n", details.GetOpenIssuesCount())
			fmt.Fprintf(&b, "**Size**: %d KB\n\n", details.GetSize())

			b.WriteString("## Languages\n\n")
			fmt.Fprintf(&b, "%s\n\n", formatLanguages(languages))

			b.WriteString("## URLs\n\n")
			fmt.Fprintf(&b, "**Homepage**: %s\n", orDefault(details.GetHomepage(), "N/A"))
			fmt.Fprintf(&b, "**GitHub URL**: %s\n", details.GetHTMLURL())
			fmt.Fprintf(&b, "**Clone URL**: %s\n", details.GetCloneURL())
			fmt.Fprintf(&b, "**SSH URL**: %s\n", details.GetSSHURL())

			if license := details.GetLicense(); license != nil {
				fmt.Fprintf(&b, "\n**License**: %s\n", license.GetName())
			}
			return b.String(), nil
		},
	}
}

// formatLanguages renders the languages map as "Go (61.2%), Shell
// (38.8%)", ordered by byte count.
func formatLanguages(languages map[string]int) string {
	total := 0
	for _, bytes := range languages {
		total += bytes
	}
	if total == 0 {
		return "No language data available"
	}
	parts := make([]string, 0, len(languages))
	for _, lang := range render.SortedLanguages(languages) {
		parts = append(parts, fmt.Sprintf("%s (%.1f%%)", lang.Name, 100*float64(lang.Bytes)/float64(total)))
	}
	return strings.Join(parts, ", ")
}
