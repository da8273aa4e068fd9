/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package capabilities

import (
	"context"
	"errors"
	"fmt"

	"github.com/chainguard-dev/clog"

	"chainguard.dev/repoagent/capabilities/input"
	"chainguard.dev/repoagent/githubapi"
)

// Parameter describes one named input field of a capability, used both
// for documentation and for deriving provider tool schemas.
type Parameter struct {
	Name        string
	Type        string // "string", "integer", or "array"
	Description string
	Required    bool
}

// Capability is one invocable GitHub operation. Instances are built by
// NewRegistry; the zero value is not usable.
type Capability struct {
	// Name is the stable identifier the reasoning loop selects by,
	// e.g. "github_commit_multiple_files".
	Name string

	// Description documents the input contract with worked examples.
	Description string

	// Parameters lists the named fields of the JSON input shape in
	// declared order. Required fields are validated in this order.
	Parameters []Parameter

	// action names the operation for API failure text, e.g.
	// "creating branch" renders as "Error creating branch: ...".
	action string

	// positional parses the compact slash form, nil when the
	// capability accepts only the JSON shape.
	positional input.Positional

	run func(ctx context.Context, req *input.Request) (string, error)
}

// Invoke runs the capability against raw input and returns the result
// as text. It never returns an error: validation problems, API
// failures, and anything else that goes wrong are rendered into the
// returned string so the caller can read the outcome and self-correct.
func (c *Capability) Invoke(ctx context.Context, raw string) (out string) {
	log := clog.FromContext(ctx).With("capability", c.Name)
	defer func() {
		if r := recover(); r != nil {
			log.Errorf("capability panicked: %v", r)
			out = fmt.Sprintf("Unexpected error: %v", r)
		}
	}()

	req, err := input.Normalize(raw, c.requiredFields(), c.positional)
	if err != nil {
		log.Debugf("rejecting input: %v", err)
		return renderFailure(c.action, err)
	}

	out, err = c.run(ctx, req)
	if err != nil {
		log.Warnf("capability failed: %v", err)
		return renderFailure(c.action, err)
	}
	return out
}

// requiredFields returns the names of required parameters in declared
// order, the order missing-field validation reports them in.
func (c *Capability) requiredFields() []string {
	var names []string
	for _, p := range c.Parameters {
		if p.Required {
			names = append(names, p.Name)
		}
	}
	return names
}

// renderFailure maps an error to the capability result text. Validation
// errors render with an "Error: " prefix, GitHub API failures name the
// operation that failed, and anything else is surfaced as unexpected.
func renderFailure(action string, err error) string {
	var verr *githubapi.ValidationError
	if errors.As(err, &verr) {
		return "Error: " + verr.Message
	}
	var apiErr *githubapi.APIError
	if errors.As(err, &apiErr) {
		return fmt.Sprintf("Error %s: %v", action, apiErr)
	}
	return fmt.Sprintf("Unexpected error: %v", err)
}
