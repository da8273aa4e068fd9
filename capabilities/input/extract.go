/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package input

import (
	"chainguard.dev/repoagent/githubapi"
)

// Extract extracts a required field from the request with type safety.
// Returns a ValidationError if the field is missing or cannot be
// converted to T.
func Extract[T any](r *Request, name string) (T, error) {
	var zero T

	value, exists := r.fields[name]
	if !exists {
		return zero, githubapi.Validationf("Missing required field '%s'.", name)
	}

	// Try direct type assertion
	if v, ok := value.(T); ok {
		return v, nil
	}

	// Handle common JSON numeric conversions
	if v, ok := convertNumeric[T](value); ok {
		return v, nil
	}

	return zero, githubapi.Validationf("%s must be of type %T, got %T.", name, zero, value)
}

// ExtractOptional extracts an optional field with a default value.
// Returns the default if the field doesn't exist, or a ValidationError
// if type conversion fails.
func ExtractOptional[T any](r *Request, name string, defaultValue T) (T, error) {
	value, exists := r.fields[name]
	if !exists {
		return defaultValue, nil
	}

	// Try direct type assertion
	if v, ok := value.(T); ok {
		return v, nil
	}

	// Handle common JSON numeric conversions
	if v, ok := convertNumeric[T](value); ok {
		return v, nil
	}

	var zero T
	return zero, githubapi.Validationf("%s must be of type %T, got %T.", name, zero, value)
}

// convertNumeric handles common JSON numeric conversions (float64 -> int/int32/int64).
func convertNumeric[T any](value any) (T, bool) {
	var zero T
	switch any(zero).(type) {
	case int:
		if floatVal, ok := value.(float64); ok {
			return any(int(floatVal)).(T), true
		}
	case int32:
		if floatVal, ok := value.(float64); ok {
			return any(int32(floatVal)).(T), true
		}
	case int64:
		if floatVal, ok := value.(float64); ok {
			return any(int64(floatVal)).(T), true
		}
	}
	return zero, false
}
