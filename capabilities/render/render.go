/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package render

import (
	"fmt"
	"slices"
	"strings"

	"github.com/google/go-github/v75/github"
)

const (
	// maxContentChars is the cutoff beyond which rendered file content
	// is truncated with an explicit marker.
	maxContentChars = 5000

	defaultSearchPageSize = 5
	maxSearchPageSize     = 100

	shortSHALen = 7
)

// ShortSHA returns the first seven characters of a commit SHA, the
// abbreviated form used throughout rendered output.
func ShortSHA(sha string) string {
	if len(sha) <= shortSHALen {
		return sha
	}
	return sha[:shortSHALen]
}

// TruncateContent returns content unmodified when it is at most 5000
// characters, and otherwise the first 5000 characters followed by a
// marker stating the shown and original sizes.
func TruncateContent(content string) string {
	runes := []rune(content)
	if len(runes) <= maxContentChars {
		return content
	}
	return string(runes[:maxContentChars]) +
		fmt.Sprintf("\n\n... [Content truncated, showing %d of %d bytes] ...\n", maxContentChars, len(runes))
}

// ClampPageSize maps a requested search page size into the accepted
// range: values below 1 become the default of 5, values above 100
// become 100.
func ClampPageSize(perPage int) int {
	if perPage < 1 {
		return defaultSearchPageSize
	}
	return min(perPage, maxSearchPageSize)
}

// SortBranches orders branches with the default branch first and the
// rest by case-insensitive name. The sort is stable so equal-folding
// names keep their listing order.
func SortBranches(branches []*github.Branch, defaultBranch string) {
	slices.SortStableFunc(branches, func(a, b *github.Branch) int {
		if ra, rb := branchRank(a, defaultBranch), branchRank(b, defaultBranch); ra != rb {
			return ra - rb
		}
		return strings.Compare(strings.ToLower(a.GetName()), strings.ToLower(b.GetName()))
	})
}

func branchRank(b *github.Branch, defaultBranch string) int {
	if b.GetName() == defaultBranch {
		return 0
	}
	return 1
}

// SplitContents partitions a directory listing into directories and
// regular files, each sorted by case-insensitive name. Entries of
// other types (symlinks, submodules) are omitted.
func SplitContents(entries []*github.RepositoryContent) (dirs, files []*github.RepositoryContent) {
	for _, entry := range entries {
		switch entry.GetType() {
		case "dir":
			dirs = append(dirs, entry)
		case "file":
			files = append(files, entry)
		}
	}
	byName := func(a, b *github.RepositoryContent) int {
		return strings.Compare(strings.ToLower(a.GetName()), strings.ToLower(b.GetName()))
	}
	slices.SortStableFunc(dirs, byName)
	slices.SortStableFunc(files, byName)
	return dirs, files
}

// Language pairs a language name with its byte count from the
// repository languages endpoint.
type Language struct {
	Name  string
	Bytes int
}

// SortedLanguages flattens a languages map into a slice ordered by
// byte count descending, breaking ties by name so the output is
// deterministic.
func SortedLanguages(languages map[string]int) []Language {
	out := make([]Language, 0, len(languages))
	for name, bytes := range languages {
		out = append(out, Language{Name: name, Bytes: bytes})
	}
	slices.SortFunc(out, func(a, b Language) int {
		if a.Bytes != b.Bytes {
			return b.Bytes - a.Bytes
		}
		return strings.Compare(a.Name, b.Name)
	})
	return out
}

// languageByExtension maps file extensions to the language tag used on
// fenced code blocks.
var languageByExtension = map[string]string{
	"py":         "python",
	"js":         "javascript",
	"ts":         "typescript",
	"jsx":        "jsx",
	"tsx":        "tsx",
	"java":       "java",
	"c":          "c",
	"cpp":        "cpp",
	"cs":         "csharp",
	"go":         "go",
	"rb":         "ruby",
	"php":        "php",
	"rs":         "rust",
	"swift":      "swift",
	"kt":         "kotlin",
	"scala":      "scala",
	"html":       "html",
	"css":        "css",
	"scss":       "scss",
	"json":       "json",
	"yml":        "yaml",
	"yaml":       "yaml",
	"md":         "markdown",
	"sh":         "bash",
	"bash":       "bash",
	"sql":        "sql",
	"r":          "r",
	"dockerfile": "dockerfile",
}

// LanguageForFile returns the fenced-code-block language tag for a
// file name, or "" when the extension is unknown or absent.
func LanguageForFile(name string) string {
	idx := strings.LastIndex(name, ".")
	if idx < 0 {
		return ""
	}
	return languageByExtension[strings.ToLower(name[idx+1:])]
}
