/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package render holds the deterministic formatting rules shared by
// the GitHub capabilities: branch and directory-listing sort orders,
// the file-content truncation marker, search page-size clamping, and
// the extension-to-language table for fenced code blocks.
package render
