/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package googletool

import (
	"context"
	"encoding/json"
	"fmt"

	"google.golang.org/genai"

	"chainguard.dev/repoagent/capabilities"
)

// Declaration builds the Gemini function declaration for a capability
// from its declared parameter list.
func Declaration(c *capabilities.Capability) *genai.FunctionDeclaration {
	properties := make(map[string]*genai.Schema, len(c.Parameters))
	var required []string
	for _, p := range c.Parameters {
		schema := &genai.Schema{Type: schemaType(p.Type), Description: p.Description}
		if p.Type == "array" {
			schema.Items = &genai.Schema{Type: genai.TypeObject}
		}
		properties[p.Name] = schema
		if p.Required {
			required = append(required, p.Name)
		}
	}

	return &genai.FunctionDeclaration{
		Name:        c.Name,
		Description: c.Description,
		Parameters: &genai.Schema{
			Type:       genai.TypeObject,
			Properties: properties,
			Required:   required,
		},
	}
}

// schemaType maps a JSON-schema type name onto the genai enum.
func schemaType(t string) genai.Type {
	switch t {
	case "string":
		return genai.TypeString
	case "number":
		return genai.TypeNumber
	case "integer":
		return genai.TypeInteger
	case "boolean":
		return genai.TypeBoolean
	case "array":
		return genai.TypeArray
	case "object":
		return genai.TypeObject
	default:
		return genai.TypeUnspecified
	}
}

// Declarations converts the registry catalog into Gemini function
// declarations, preserving catalog order.
func Declarations(reg *capabilities.Registry) []*genai.FunctionDeclaration {
	catalog := reg.Capabilities()
	decls := make([]*genai.FunctionDeclaration, 0, len(catalog))
	for _, c := range catalog {
		decls = append(decls, Declaration(c))
	}
	return decls
}

// Dispatch executes a function call against the registry and wraps the
// capability's text output as the function response.
func Dispatch(ctx context.Context, reg *capabilities.Registry, call *genai.FunctionCall) *genai.FunctionResponse {
	c, ok := reg.Get(call.Name)
	if !ok {
		return &genai.FunctionResponse{
			ID:   call.ID,
			Name: call.Name,
			Response: map[string]any{
				"error": fmt.Sprintf("unknown capability '%s'.", call.Name),
			},
		}
	}

	raw, err := json.Marshal(call.Args)
	if err != nil {
		return &genai.FunctionResponse{
			ID:   call.ID,
			Name: call.Name,
			Response: map[string]any{
				"error": fmt.Sprintf("encoding arguments: %v", err),
			},
		}
	}

	return &genai.FunctionResponse{
		ID:   call.ID,
		Name: call.Name,
		Response: map[string]any{
			"result": c.Invoke(ctx, string(raw)),
		},
	}
}
