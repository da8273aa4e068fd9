/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package githubapi wraps the GitHub REST API client used by every
// capability in this module.
//
// The package owns three concerns:
//
//   - Construction: New builds a client from an explicit Config value
//     (token, API root, user agent). Nothing in this package reads
//     ambient process state; callers that want environment-driven
//     configuration use FromEnv and pass the result in.
//
//   - Resource operations: typed, per-resource calls (repositories,
//     contents, branches, git objects, pull requests, reviews, search)
//     that each perform exactly one network round trip and return the
//     remote object or an error. No call is retried or duplicated.
//
//   - Failure mapping: every non-2xx response is normalized into an
//     *APIError carrying the HTTP status and GitHub's message field (or
//     the status text when the body carries none). Input problems
//     detected before any network call are *ValidationError values.
//
// Callers needing cancellation or deadlines supply them through the
// context; the client imposes no timeout of its own beyond the
// transport default.
package githubapi
