/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package capabilities

import (
	"chainguard.dev/repoagent/githubapi"
	"chainguard.dev/repoagent/githubapi/commitmanager"
)

// Registry is the fixed, ordered catalog of GitHub capabilities. The
// catalog is closed: the set of capabilities and their order are
// decided at construction and never change at runtime.
type Registry struct {
	caps  []*Capability
	index map[string]*Capability
}

// NewRegistry builds the full capability catalog against client. The
// order is the order capabilities are presented to a reasoning loop,
// read-only discovery first, then writes, then pull-request flow.
func NewRegistry(client *githubapi.Client) *Registry {
	commits := commitmanager.New(client)
	caps := []*Capability{
		searchRepositories(client),
		repoDetails(client),
		listContents(client),
		getFileContent(client),
		getFileMetadata(client),
		createBranch(client),
		listBranches(client),
		commitFile(client),
		commitMultipleFiles(commits),
		createPullRequest(client),
		reviewPullRequest(client),
		listPullRequestReviews(client),
		getPullRequest(client),
		mergePullRequest(client),
	}

	index := make(map[string]*Capability, len(caps))
	for _, c := range caps {
		index[c.Name] = c
	}
	return &Registry{caps: caps, index: index}
}

// Get returns the capability registered under name.
func (r *Registry) Get(name string) (*Capability, bool) {
	c, ok := r.index[name]
	return c, ok
}

// Capabilities returns the catalog in registration order. The returned
// slice is shared; callers must not modify it.
func (r *Registry) Capabilities() []*Capability {
	return r.caps
}

// Names returns the capability names in registration order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.caps))
	for _, c := range r.caps {
		names = append(names, c.Name)
	}
	return names
}
