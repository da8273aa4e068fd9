/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package capabilities exposes a fixed catalog of GitHub operations as
// uniform, independently invocable capabilities for a reasoning loop.
//
// Every capability has the same contract: a stable snake_case name, a
// human-readable description with worked input examples, a declared
// parameter list, and an Invoke method that accepts a raw input string
// and always returns text. Invoke never returns an error and never
// panics: invalid input, GitHub API failures, and lost commit races
// all come back as explanatory prose the calling loop can read and
// correct from.
//
// Input arrives in one of two shapes, a JSON object with named fields
// or a compact positional string like "owner/repo/path", normalized by
// the input subpackage. Result text is markdown, formatted by the
// deterministic rules in the render subpackage.
//
// NewRegistry wires the full catalog against a githubapi.Client:
//
//	client, err := githubapi.New(cfg)
//	if err != nil { ... }
//	reg := capabilities.NewRegistry(client)
//	if c, ok := reg.Get("github_repo_details"); ok {
//		fmt.Println(c.Invoke(ctx, "golang/go"))
//	}
package capabilities
