/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package capabilities_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"chainguard.dev/repoagent/capabilities"
	"chainguard.dev/repoagent/githubapi"
)

// newTestRegistry builds a registry against a stub API server.
func newTestRegistry(t *testing.T, handler http.Handler) *capabilities.Registry {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := githubapi.New(githubapi.Config{Token: "test-token", BaseURL: srv.URL})
	if err != nil {
		t.Fatalf("constructing client: %v", err)
	}
	return capabilities.NewRegistry(client)
}

// invoke runs one named capability and returns its rendered output.
func invoke(t *testing.T, reg *capabilities.Registry, name, raw string) string {
	t.Helper()

	c, ok := reg.Get(name)
	if !ok {
		t.Fatalf("capability %q not registered", name)
	}
	return c.Invoke(context.Background(), raw)
}

// noRequests fails the test on any API traffic, for inputs that must be
// rejected before reaching the network.
func noRequests(t *testing.T) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected API request: %s %s", r.Method, r.URL.Path)
		w.WriteHeader(http.StatusTeapot)
	})
}
