/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package githubapi

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/go-github/v75/github"
)

// Client executes GitHub API operations. All methods perform a single
// network round trip and map remote failures through the package error
// taxonomy. The zero value is not usable; construct with New.
type Client struct {
	rest *github.Client

	httpClient *http.Client
}

// Option customizes a Client during construction.
type Option func(*Client) error

// WithHTTPClient supplies the underlying HTTP client, e.g. to install a
// custom transport. Authentication is still layered on top of it.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) error {
		if hc == nil {
			return errors.New("http client must not be nil")
		}
		c.httpClient = hc
		return nil
	}
}

// New constructs a Client from the given configuration.
func New(cfg Config, opts ...Option) (*Client, error) {
	if cfg.Token == "" {
		return nil, errors.New("github token must be set")
	}

	c := &Client{}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	rest := github.NewClient(c.httpClient).WithAuthToken(cfg.Token)
	if cfg.BaseURL != "" && cfg.BaseURL != DefaultBaseURL {
		base, err := url.Parse(ensureTrailingSlash(cfg.BaseURL))
		if err != nil {
			return nil, err
		}
		rest.BaseURL = base
	}
	if cfg.UserAgent != "" {
		rest.UserAgent = cfg.UserAgent
	}
	c.rest = rest
	return c, nil
}

// go-github requires the base URL to end in a slash so relative
// endpoint paths resolve under it.
func ensureTrailingSlash(u string) string {
	if strings.HasSuffix(u, "/") {
		return u
	}
	return u + "/"
}

// RepositoryRef identifies a repository by owner and name.
type RepositoryRef struct {
	Owner string
	Name  string
}

// String renders the ref in the canonical "owner/name" form.
func (r RepositoryRef) String() string {
	return r.Owner + "/" + r.Name
}

// ParseRepositoryRef splits an "owner/name" identifier. Both halves
// must be non-empty.
func ParseRepositoryRef(full string) (RepositoryRef, error) {
	owner, name, ok := strings.Cut(full, "/")
	if !ok || owner == "" || name == "" {
		return RepositoryRef{}, &ValidationError{
			Message: "Invalid repository name. Please provide in the format 'owner/repo'.",
		}
	}
	return RepositoryRef{Owner: owner, Name: name}, nil
}
