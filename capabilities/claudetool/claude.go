/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package claudetool

import (
	"context"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"

	"chainguard.dev/repoagent/capabilities"
)

// Tool builds the Anthropic tool definition for a capability from its
// declared parameter list.
func Tool(c *capabilities.Capability) anthropic.ToolParam {
	properties := make(map[string]any, len(c.Parameters))
	var required []string
	for _, p := range c.Parameters {
		schema := map[string]any{
			"type":        p.Type,
			"description": p.Description,
		}
		if p.Type == "array" {
			schema["items"] = map[string]any{"type": "object"}
		}
		properties[p.Name] = schema
		if p.Required {
			required = append(required, p.Name)
		}
	}

	return anthropic.ToolParam{
		Name:        c.Name,
		Description: anthropic.String(c.Description),
		InputSchema: anthropic.ToolInputSchemaParam{
			Type:       "object",
			Properties: properties,
			Required:   required,
		},
	}
}

// Tools converts the registry catalog into Claude tool definitions,
// preserving catalog order.
func Tools(reg *capabilities.Registry) []anthropic.ToolUnionParam {
	catalog := reg.Capabilities()
	defs := make([]anthropic.ToolUnionParam, 0, len(catalog))
	for _, c := range catalog {
		tool := Tool(c)
		defs = append(defs, anthropic.ToolUnionParam{OfTool: &tool})
	}
	return defs
}

// Dispatch executes a tool-use block against the registry and wraps
// the capability's text output as a tool result. An unknown tool name
// comes back as an error result rather than a Go error, so the
// conversation loop keeps moving.
func Dispatch(ctx context.Context, reg *capabilities.Registry, toolUse anthropic.ToolUseBlock) anthropic.ContentBlockParamUnion {
	var text string
	if c, ok := reg.Get(toolUse.Name); ok {
		text = c.Invoke(ctx, string(toolUse.Input))
	} else {
		text = fmt.Sprintf("Error: unknown capability '%s'.", toolUse.Name)
	}

	return anthropic.ContentBlockParamUnion{
		OfToolResult: &anthropic.ToolResultBlockParam{
			ToolUseID: toolUse.ID,
			Content: []anthropic.ToolResultBlockParamContentUnion{{
				OfText: &anthropic.TextBlockParam{Text: text},
			}},
		},
	}
}
