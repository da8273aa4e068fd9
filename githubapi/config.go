/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package githubapi

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

// DefaultBaseURL is the public GitHub REST API root.
const DefaultBaseURL = "https://api.github.com/"

// Config carries everything needed to construct a Client. It is a plain
// value: build it directly, or use FromEnv to populate it from the
// environment once at startup and hand it to New.
type Config struct {
	// Token authenticates every request. Required.
	Token string `env:"GITHUB_API_TOKEN,required"`

	// BaseURL is the API root. Override it for GitHub Enterprise or for
	// tests pointing at a local fake.
	BaseURL string `env:"GITHUB_API_URL,default=https://api.github.com/"`

	// UserAgent is sent with every request when set.
	UserAgent string `env:"GITHUB_USER_AGENT"`
}

// FromEnv loads a Config from the process environment.
func FromEnv(ctx context.Context) (Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return Config{}, fmt.Errorf("processing config: %w", err)
	}
	return cfg, nil
}
