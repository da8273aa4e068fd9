/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package githubapi_test

import (
	"context"
	"os"
	"testing"

	"chainguard.dev/repoagent/githubapi"
)

func TestFromEnv(t *testing.T) {
	t.Setenv("GITHUB_API_TOKEN", "ghp_testtoken")

	cfg, err := githubapi.FromEnv(context.Background())
	if err != nil {
		t.Fatalf("FromEnv() failed: %v", err)
	}
	if cfg.Token != "ghp_testtoken" {
		t.Errorf("Token = %q, want %q", cfg.Token, "ghp_testtoken")
	}
	if cfg.BaseURL != githubapi.DefaultBaseURL {
		t.Errorf("BaseURL = %q, want default %q", cfg.BaseURL, githubapi.DefaultBaseURL)
	}
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("GITHUB_API_TOKEN", "ghp_testtoken")
	t.Setenv("GITHUB_API_URL", "https://github.example.com/api/v3/")
	t.Setenv("GITHUB_USER_AGENT", "repoagent-test")

	cfg, err := githubapi.FromEnv(context.Background())
	if err != nil {
		t.Fatalf("FromEnv() failed: %v", err)
	}
	if cfg.BaseURL != "https://github.example.com/api/v3/" {
		t.Errorf("BaseURL = %q, want the enterprise URL", cfg.BaseURL)
	}
	if cfg.UserAgent != "repoagent-test" {
		t.Errorf("UserAgent = %q, want %q", cfg.UserAgent, "repoagent-test")
	}
}

func TestFromEnvRequiresToken(t *testing.T) {
	// Setenv registers the restore, Unsetenv makes the variable truly
	// absent rather than empty.
	t.Setenv("GITHUB_API_TOKEN", "placeholder")
	os.Unsetenv("GITHUB_API_TOKEN")

	if _, err := githubapi.FromEnv(context.Background()); err == nil {
		t.Error("FromEnv() without token succeeded, want error")
	}
}
