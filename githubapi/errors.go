/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package githubapi

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/google/go-github/v75/github"
)

// APIError reports a GitHub response with status >= 400. Message is the
// conventional "message" field from the response body when present,
// otherwise the HTTP status text.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("GitHub API request failed: %d - %s", e.StatusCode, e.Message)
}

// ValidationError reports malformed or incomplete input detected before
// any network call. Message is a complete sentence suitable for showing
// to the caller; the capability boundary adds the failure prefix.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Validationf builds a ValidationError from a format string.
func Validationf(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// normalizeError maps go-github failures into the package taxonomy.
// Transport-level errors pass through unchanged.
func normalizeError(err error) error {
	if err == nil {
		return nil
	}

	var ghErr *github.ErrorResponse
	if errors.As(err, &ghErr) {
		return &APIError{
			StatusCode: ghErr.Response.StatusCode,
			Message:    messageOrStatus(ghErr.Message, ghErr.Response.StatusCode),
		}
	}

	var rateErr *github.RateLimitError
	if errors.As(err, &rateErr) {
		return &APIError{
			StatusCode: rateErr.Response.StatusCode,
			Message:    messageOrStatus(rateErr.Message, rateErr.Response.StatusCode),
		}
	}

	var abuseErr *github.AbuseRateLimitError
	if errors.As(err, &abuseErr) {
		return &APIError{
			StatusCode: abuseErr.Response.StatusCode,
			Message:    messageOrStatus(abuseErr.Message, abuseErr.Response.StatusCode),
		}
	}

	return err
}

func messageOrStatus(msg string, code int) string {
	if msg != "" {
		return msg
	}
	return http.StatusText(code)
}
