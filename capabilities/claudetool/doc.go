/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

/*
Package claudetool exposes the capability catalog to Claude's tool-use
feature.

The adapter is mechanical: Tool builds an Anthropic tool definition
from a capability's declared parameters, Tools converts the whole
registry in catalog order, and Dispatch routes a tool-use block to the
named capability, wrapping its text output as a tool result. Error
containment is inherited from Capability.Invoke, so Dispatch always
produces a well-formed result block.

	reg := capabilities.NewRegistry(client)

	params := anthropic.MessageNewParams{
		Model:     anthropic.ModelClaudeSonnet4_5,
		MaxTokens: 4096,
		Tools:     claudetool.Tools(reg),
		Messages:  messages,
	}

	// In the conversation loop, for each tool_use block:
	result := claudetool.Dispatch(ctx, reg, toolUse)
	messages = append(messages, anthropic.MessageParam{
		Role:    anthropic.MessageParamRoleUser,
		Content: []anthropic.ContentBlockParamUnion{result},
	})
*/
package claudetool
