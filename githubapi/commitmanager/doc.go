/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package commitmanager stages one or more file changes into a single
// new commit on an existing branch, without a local working tree.
//
// The manager drives the git database API through five sequential
// calls: resolve the branch head, read the head commit's tree, create a
// new tree as a delta over it, create a commit whose sole parent is the
// observed head, and finally advance the branch ref to the new commit
// with a fast-forward-only update.
//
// The branch moves if and only if all five steps succeed. A failure in
// any of the first four steps leaves the branch untouched; objects
// created before the failure are unreferenced and never traversed. A
// rejected ref update means another writer moved the branch after the
// head was resolved; that surfaces as *RaceLostError and the manager
// performs no retry. Callers re-issue the whole operation if they want
// another attempt, so the new head is re-resolved.
package commitmanager
