/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package capabilities

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"unicode/utf8"

	"chainguard.dev/repoagent/capabilities/input"
	"chainguard.dev/repoagent/capabilities/render"
	"chainguard.dev/repoagent/githubapi"
)

// maxRenderableFileSize is the size above which file content is never
// rendered inline, matching the contents API's base64 payload limit.
const maxRenderableFileSize = 1024 * 1024

const listContentsDescription = `List the contents of a GitHub repository or directory within a repository.
Input should be in the format "owner/repo/path" where path is optional.
Examples:
- "langchain-ai/langchain" (lists root directory)
- "langchain-ai/langchain/docs" (lists contents of the docs directory)
- "tensorflow/tensorflow/tensorflow/python" (lists contents of the tensorflow/python directory)`

func listContents(client *githubapi.Client) *Capability {
	return &Capability{
		Name:        "github_list_contents",
		Description: listContentsDescription,
		Parameters: []Parameter{
			{Name: "repo_full_name", Type: "string", Description: `Repository name in the format "owner/repo"`, Required: true},
			{Name: "path", Type: "string", Description: "Directory path within the repository, empty for the root"},
		},
		action: "listing repository contents",
		positional: func(raw string) (map[string]any, error) {
			parts := strings.Split(raw, "/")
			if len(parts) < 2 {
				return nil, &githubapi.ValidationError{Message: "Invalid input. Please provide at least owner/repo."}
			}
			return map[string]any{
				"repo_full_name": parts[0] + "/" + parts[1],
				"path":           strings.Join(parts[2:], "/"),
			}, nil
		},
		run: func(ctx context.Context, req *input.Request) (string, error) {
			repo, err := extractRepo(req)
			if err != nil {
				return "", err
			}
			path, err := input.ExtractOptional[string](req, "path", "")
			if err != nil {
				return "", err
			}

			file, listing, err := client.Contents(ctx, repo, path, "")
			if err != nil {
				return "", err
			}
			if file != nil {
				return fmt.Sprintf("'%s' is a file, not a directory. Use github_get_file_content to view its contents.", path), nil
			}

			fullPath := repo.String()
			if path != "" {
				fullPath += "/" + path
			}

			var b strings.Builder
			fmt.Fprintf(&b, "# Contents of %s\n\n", fullPath)

			dirs, files := render.SplitContents(listing)
			if len(dirs) > 0 {
				b.WriteString("## Directories\n\n")
				for _, d := range dirs {
					fmt.Fprintf(&b, "- 📁 [%s](%s)\n", d.GetName(), d.GetHTMLURL())
				}
				b.WriteString("\n")
			}
			if len(files) > 0 {
				b.WriteString("## Files\n\n")
				for _, f := range files {
					fmt.Fprintf(&b, "- 📄 [%s](%s)\n", f.GetName(), f.GetHTMLURL())
				}
			}

			b.WriteString("\n## Navigation\n\n")
			if path != "" {
				parent := repo.String()
				if i := strings.LastIndex(path, "/"); i >= 0 {
					parent += "/" + path[:i]
				}
				fmt.Fprintf(&b, "- ⬆️ Parent directory: Use `github_list_contents(%q)`\n", parent)
			}
			if len(dirs) > 0 {
				fmt.Fprintf(&b, "- 📁 View subdirectory: Use `github_list_contents(%q)`\n", fullPath+"/"+dirs[0].GetName())
			}
			if len(files) > 0 {
				fmt.Fprintf(&b, "- 📄 View file: Use `github_get_file_content(%q)`\n", fullPath+"/"+files[0].GetName())
			}
			return b.String(), nil
		},
	}
}

const getFileContentDescription = `Get the content of a file from a GitHub repository.
Input should be in the format "owner/repo/path_to_file".
Examples:
- "langchain-ai/langchain/README.md"
- "facebook/react/package.json"
- "microsoft/vscode/src/vs/editor/editor.main.ts"`

func getFileContent(client *githubapi.Client) *Capability {
	return &Capability{
		Name:        "github_get_file_content",
		Description: getFileContentDescription,
		Parameters: []Parameter{
			{Name: "repo_full_name", Type: "string", Description: `Repository name in the format "owner/repo"`, Required: true},
			{Name: "path", Type: "string", Description: "File path within the repository", Required: true},
			{Name: "ref", Type: "string", Description: "Git reference (branch, tag, or commit) to read from"},
		},
		action: "getting file content",
		positional: filePathPositional("Invalid input. Please provide owner/repo/path_to_file."),
		run: func(ctx context.Context, req *input.Request) (string, error) {
			repo, err := extractRepo(req)
			if err != nil {
				return "", err
			}
			path, err := input.Extract[string](req, "path")
			if err != nil {
				return "", err
			}
			ref, err := input.ExtractOptional[string](req, "ref", "")
			if err != nil {
				return "", err
			}

			file, _, err := client.Contents(ctx, repo, path, ref)
			if err != nil {
				return "", err
			}
			if file == nil {
				return fmt.Sprintf("'%s' is a directory, not a file. Use github_list_contents to list its contents.", path), nil
			}

			if file.GetEncoding() != "base64" || file.GetSize() > maxRenderableFileSize {
				return fmt.Sprintf("File: %s\nSize: %d bytes\nURL: %s\n\nThis file is too large or is a binary file that cannot be displayed.",
					file.GetName(), file.GetSize(), file.GetHTMLURL()), nil
			}

			content, err := file.GetContent()
			if err != nil || !utf8.ValidString(content) {
				return "Error: The file appears to be a binary file and cannot be displayed as text.", nil
			}

			var b strings.Builder
			fmt.Fprintf(&b, "# File: %s\n\n", file.GetName())
			fmt.Fprintf(&b, "**Size**: %d bytes\n", file.GetSize())
			fmt.Fprintf(&b, "**URL**: %s\n\n", file.GetHTMLURL())

			if language := render.LanguageForFile(file.GetName()); language != "" {
				fmt.Fprintf(&b, "```%s\n%s\n```", language, render.TruncateContent(content))
			} else {
				fmt.Fprintf(&b, "```\n%s\n```", render.TruncateContent(content))
			}
			return b.String(), nil
		},
	}
}

const getFileMetadataDescription = `Get metadata about a file in a GitHub repository, including its SHA.
Input should be in the format "owner/repo/path_to_file" or as a JSON string with additional options.

Simple format example:
"pankajmisr/vendor-contract-app/src/App.js"

JSON format example with branch specification:
{
    "repo_full_name": "pankajmisr/vendor-contract-app",
    "path": "src/App.js",
    "branch": "feature/some-branch"
}`

func getFileMetadata(client *githubapi.Client) *Capability {
	return &Capability{
		Name:        "github_get_file_metadata",
		Description: getFileMetadataDescription,
		Parameters: []Parameter{
			{Name: "repo_full_name", Type: "string", Description: `Repository name in the format "owner/repo"`, Required: true},
			{Name: "path", Type: "string", Description: "File path within the repository", Required: true},
			{Name: "branch", Type: "string", Description: "Branch or ref to read from, defaults to the default branch"},
		},
		action:     "retrieving file metadata",
		positional: filePathPositional("Invalid input format. Use 'owner/repo/path_to_file' or JSON format."),
		run: func(ctx context.Context, req *input.Request) (string, error) {
			repo, err := extractRepo(req)
			if err != nil {
				return "", err
			}
			path, err := input.Extract[string](req, "path")
			if err != nil {
				return "", err
			}
			ref, err := input.ExtractOptional[string](req, "branch", "")
			if err != nil {
				return "", err
			}

			file, _, err := client.Contents(ctx, repo, path, ref)
			if err != nil {
				if notFound(err) {
					return fileNotFoundText(ctx, client, repo, path, ref), nil
				}
				return "", err
			}
			if file == nil {
				return fmt.Sprintf("Error: '%s' is a directory, not a file.", path), nil
			}

			var b strings.Builder
			fmt.Fprintf(&b, "# File Metadata: %s\n\n", path)
			fmt.Fprintf(&b, "**Repository**: %s\n", repo)
			if ref != "" {
				fmt.Fprintf(&b, "**Branch/Ref**: %s\n", ref)
			}
			fmt.Fprintf(&b, "**Name**: %s\n", file.GetName())
			fmt.Fprintf(&b, "**Path**: %s\n", file.GetPath())
			fmt.Fprintf(&b, "**SHA**: %s\n", file.GetSHA())
			fmt.Fprintf(&b, "**Size**: %d bytes\n", file.GetSize())
			fmt.Fprintf(&b, "**Type**: %s\n", file.GetType())
			fmt.Fprintf(&b, "**URL**: %s\n", file.GetHTMLURL())
			if file.Encoding != nil {
				fmt.Fprintf(&b, "**Encoding**: %s\n", file.GetEncoding())
			}
			return b.String(), nil
		},
	}
}

// fileNotFoundText distinguishes a missing file on an existing branch
// from a branch that does not exist at all, by probing the branch when
// one was named.
func fileNotFoundText(ctx context.Context, client *githubapi.Client, repo githubapi.RepositoryRef, path, ref string) string {
	if ref != "" {
		if _, err := client.Branch(ctx, repo, ref); err == nil {
			return fmt.Sprintf("Error: File '%s' not found in branch '%s' of repository %s.", path, ref, repo)
		}
	}
	return fmt.Sprintf("Error: File '%s' not found in repository %s or branch '%s' does not exist.",
		path, repo, orDefault(ref, "default"))
}

// notFound reports whether err is a GitHub 404.
func notFound(err error) bool {
	var apiErr *githubapi.APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// filePathPositional parses "owner/repo/path_to_file", rejecting input
// with fewer than three segments using the given message.
func filePathPositional(message string) input.Positional {
	return func(raw string) (map[string]any, error) {
		parts := strings.Split(raw, "/")
		if len(parts) < 3 {
			return nil, &githubapi.ValidationError{Message: message}
		}
		return map[string]any{
			"repo_full_name": parts[0] + "/" + parts[1],
			"path":           strings.Join(parts[2:], "/"),
		}, nil
	}
}
