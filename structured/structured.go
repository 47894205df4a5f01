// Package structured forces a chat model to answer through a single
// tool call whose arguments decode into a typed Go value. The tool
// schema is derived from the output type, so adding a field to the
// struct changes the contract the model is held to.
package structured

import (
	"context"
	"fmt"

	"github.com/bytedance/sonic"
	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/components/tool/utils"
	"github.com/cloudwego/eino/schema"
)

// PromptBuilder renders the typed input into chat messages.
type PromptBuilder[TInput any] func(ctx context.Context, input TInput) ([]*schema.Message, error)

// Chain binds a prompt builder, a tool-calling chat model and an
// output type into one invocable unit.
type Chain[TInput, TOutput any] struct {
	buildPrompt PromptBuilder[TInput]
	chatModel   model.ToolCallingChatModel
	toolInfo    *schema.ToolInfo
}

func NewChain[TInput, TOutput any](
	chatModel model.ToolCallingChatModel,
	buildPrompt PromptBuilder[TInput],
	toolName, toolDesc string,
) (*Chain[TInput, TOutput], error) {
	toolInfo, err := utils.GoStruct2ToolInfo[TOutput](toolName, toolDesc)
	if err != nil {
		return nil, fmt.Errorf("convert tool info failed: %w", err)
	}
	return &Chain[TInput, TOutput]{
		buildPrompt: buildPrompt,
		chatModel:   chatModel,
		toolInfo:    toolInfo,
	}, nil
}

// Invoke runs the chain once and decodes the forced tool call.
func (c *Chain[TInput, TOutput]) Invoke(ctx context.Context, input TInput) (*TOutput, error) {
	messages, err := c.buildPrompt(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("build prompt failed: %w", err)
	}

	response, err := c.chatModel.Generate(ctx, messages,
		model.WithTools([]*schema.ToolInfo{c.toolInfo}),
		model.WithToolChoice(schema.ToolChoiceForced, c.toolInfo.Name),
	)
	if err != nil {
		return nil, fmt.Errorf("call model failed: %w", err)
	}
	if len(response.ToolCalls) == 0 {
		return nil, fmt.Errorf("no ToolCall found in model response: %s", response.Content)
	}

	var result TOutput
	if err := sonic.UnmarshalString(response.ToolCalls[0].Function.Arguments, &result); err != nil {
		return nil, fmt.Errorf("parse ToolCall arguments failed: %w", err)
	}
	return &result, nil
}
