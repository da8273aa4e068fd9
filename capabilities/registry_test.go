/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package capabilities_test

import (
	"net/http"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRegistryCatalog(t *testing.T) {
	reg := newTestRegistry(t, http.NotFoundHandler())

	want := []string{
		"github_search_repositories",
		"github_repo_details",
		"github_list_contents",
		"github_get_file_content",
		"github_get_file_metadata",
		"github_create_branch",
		"github_list_branches",
		"github_commit_file",
		"github_commit_multiple_files",
		"github_create_pull_request",
		"github_review_pull_request",
		"github_list_pull_request_reviews",
		"github_get_pull_request",
		"github_merge_pull_request",
	}
	if diff := cmp.Diff(want, reg.Names()); diff != "" {
		t.Errorf("Names() mismatch (-want, +got):\n%s", diff)
	}

	for _, c := range reg.Capabilities() {
		if c.Description == "" {
			t.Errorf("capability %s has no description", c.Name)
		}
		if len(c.Parameters) == 0 {
			t.Errorf("capability %s declares no parameters", c.Name)
			continue
		}
		if !c.Parameters[0].Required {
			t.Errorf("capability %s: first parameter %s is optional", c.Name, c.Parameters[0].Name)
		}
	}
}

func TestRegistryGet(t *testing.T) {
	reg := newTestRegistry(t, http.NotFoundHandler())

	c, ok := reg.Get("github_commit_multiple_files")
	if !ok {
		t.Fatal("Get(github_commit_multiple_files) not found")
	}
	if c.Name != "github_commit_multiple_files" {
		t.Errorf("Get returned capability %q", c.Name)
	}

	if _, ok := reg.Get("github_delete_repository"); ok {
		t.Error("Get(github_delete_repository) = true, want false")
	}
}
