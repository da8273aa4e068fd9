/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package googletool exposes the capability catalog to Gemini's
// function-calling feature: Declarations converts the registry into
// function declarations, and Dispatch routes a function call to the
// named capability, returning its text output under the "result" key
// (or "error" for unknown names). Error containment is inherited from
// Capability.Invoke.
package googletool
