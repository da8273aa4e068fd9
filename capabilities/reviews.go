/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package capabilities

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/go-github/v75/github"

	"chainguard.dev/repoagent/capabilities/input"
	"chainguard.dev/repoagent/githubapi"
)

const reviewPullRequestDescription = `Review a pull request on GitHub with approval, comments, or requested changes.
Input should be a JSON-formatted string with the following fields:
- repo_full_name: Repository name in the format "owner/repo"
- pull_number: The pull request number
- event: Review decision, must be one of: "APPROVE", "REQUEST_CHANGES", "COMMENT"
- body: The review comment text
- comments: (Optional) List of specific comments on code, each with:
  - path: File path
  - position: Position in the diff
  - body: Comment text

Example:
{
    "repo_full_name": "pankajmisr/github-react-agent",
    "pull_number": 5,
    "event": "APPROVE",
    "body": "This looks good to me. Great work!"
}

Example with line comments:
{
    "repo_full_name": "pankajmisr/github-react-agent",
    "pull_number": 5,
    "event": "REQUEST_CHANGES",
    "body": "Please fix the issues mentioned in the comments.",
    "comments": [
        {
            "path": "src/App.js",
            "position": 4,
            "body": "This variable should be renamed for clarity."
        }
    ]
}`

func reviewPullRequest(client *githubapi.Client) *Capability {
	return &Capability{
		Name:        "github_review_pull_request",
		Description: reviewPullRequestDescription,
		Parameters: []Parameter{
			{Name: "repo_full_name", Type: "string", Description: `Repository name in the format "owner/repo"`, Required: true},
			{Name: "pull_number", Type: "integer", Description: "The pull request number", Required: true},
			{Name: "event", Type: "string", Description: `One of "APPROVE", "REQUEST_CHANGES", "COMMENT"`, Required: true},
			{Name: "body", Type: "string", Description: "The review comment text", Required: true},
			{Name: "comments", Type: "array", Description: "Line comments, each with path, position, and body"},
		},
		action: "reviewing pull request",
		run: func(ctx context.Context, req *input.Request) (string, error) {
			repo, number, err := extractPull(req)
			if err != nil {
				return "", err
			}
			event, err := input.Extract[string](req, "event")
			if err != nil {
				return "", err
			}
			switch event {
			case "APPROVE", "REQUEST_CHANGES", "COMMENT":
			default:
				return "", &githubapi.ValidationError{Message: "Invalid event type. Must be one of: APPROVE, REQUEST_CHANGES, COMMENT."}
			}
			body, err := input.Extract[string](req, "body")
			if err != nil {
				return "", err
			}

			review := &github.PullRequestReviewRequest{
				Event: github.Ptr(event),
				Body:  github.Ptr(body),
			}
			if req.Has("comments") {
				if review.Comments, err = extractDraftComments(req); err != nil {
					return "", err
				}
			}

			created, err := client.CreateReview(ctx, repo, number, review)
			if err != nil {
				return "", err
			}

			return fmt.Sprintf("Successfully %s pull request #%d in %s.\nReview ID: %d",
				eventPhrase(event), number, repo, created.GetID()), nil
		},
	}
}

// eventPhrase turns a review event into the verb phrase used in the
// success text.
func eventPhrase(event string) string {
	switch event {
	case "APPROVE":
		return "approved"
	case "REQUEST_CHANGES":
		return "requested changes to"
	default:
		return "commented on"
	}
}

// extractDraftComments validates and converts the optional line
// comments on a review.
func extractDraftComments(req *input.Request) ([]*github.DraftReviewComment, error) {
	value, _ := req.Get("comments")
	rawList, ok := value.([]any)
	if !ok {
		return nil, &githubapi.ValidationError{Message: "Each comment must have 'path', 'position', and 'body' fields."}
	}

	comments := make([]*github.DraftReviewComment, 0, len(rawList))
	for _, item := range rawList {
		obj, ok := item.(map[string]any)
		if !ok {
			return nil, &githubapi.ValidationError{Message: "Each comment must have 'path', 'position', and 'body' fields."}
		}
		path, pathOK := obj["path"].(string)
		position, positionOK := obj["position"].(float64)
		body, bodyOK := obj["body"].(string)
		if !pathOK || !positionOK || !bodyOK {
			return nil, &githubapi.ValidationError{Message: "Each comment must have 'path', 'position', and 'body' fields."}
		}
		comments = append(comments, &github.DraftReviewComment{
			Path:     github.Ptr(path),
			Position: github.Ptr(int(position)),
			Body:     github.Ptr(body),
		})
	}
	return comments, nil
}

const listPullRequestReviewsDescription = `List all reviews on a GitHub pull request.
Input should be in the format "owner/repo/pull_number" or as a JSON object.

Simple format example: "pankajmisr/github-react-agent/5"

JSON format example:
{
    "repo_full_name": "pankajmisr/github-react-agent",
    "pull_number": 5
}`

func listPullRequestReviews(client *githubapi.Client) *Capability {
	return &Capability{
		Name:        "github_list_pull_request_reviews",
		Description: listPullRequestReviewsDescription,
		Parameters: []Parameter{
			{Name: "repo_full_name", Type: "string", Description: `Repository name in the format "owner/repo"`, Required: true},
			{Name: "pull_number", Type: "integer", Description: "The pull request number", Required: true},
		},
		action:     "listing pull request reviews",
		positional: pullNumberPositional,
		run: func(ctx context.Context, req *input.Request) (string, error) {
			repo, number, err := extractPull(req)
			if err != nil {
				return "", err
			}

			reviews, err := client.Reviews(ctx, repo, number)
			if err != nil {
				return "", err
			}
			if len(reviews) == 0 {
				return fmt.Sprintf("No reviews found for pull request #%d in %s.", number, repo), nil
			}

			var b strings.Builder
			fmt.Fprintf(&b, "# Reviews for Pull Request #%d in %s\n\n", number, repo)
			for _, review := range reviews {
				user := orDefault(review.GetUser().GetLogin(), "Unknown")
				body := orDefault(strings.TrimSpace(review.GetBody()), "(No comment)")

				fmt.Fprintf(&b, "## Review by %s - %s\n\n", user, reviewStateDisplay(review.GetState()))
				fmt.Fprintf(&b, "%s\n\n", body)
				b.WriteString("---\n\n")
			}
			return b.String(), nil
		},
	}
}

// reviewStateDisplay decorates a review state for the listing header.
func reviewStateDisplay(state string) string {
	switch state = orDefault(strings.ToUpper(state), "UNKNOWN"); state {
	case "APPROVED":
		return "✅ APPROVED"
	case "CHANGES_REQUESTED":
		return "❌ CHANGES REQUESTED"
	case "COMMENTED":
		return "💬 COMMENTED"
	default:
		return "⚪ " + state
	}
}
