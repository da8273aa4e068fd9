/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package input normalizes the loosely-typed capability inputs coming
// from a reasoning loop into one request record.
//
// Capabilities accept up to two shapes: a JSON object with named
// fields, and a compact slash-delimited positional string such as
// "owner/repo/path". Normalize tries them in a fixed order: the
// structured object wins only when it carries every required field;
// otherwise the positional form is attempted. Input that parses as
// neither shape, or parses but lacks a required field, yields a
// ValidationError naming exactly the first missing field in declared
// order, so the caller can self-correct from the message.
//
// Extract and ExtractOptional read typed values out of a normalized
// request, converting the float64 numbers JSON decoding produces into
// the integer types handlers want.
package input
