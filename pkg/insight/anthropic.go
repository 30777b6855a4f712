package insight

import (
	"context"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

type AnthropicClient struct {
	client *anthropic.Client
	model  anthropic.Model
}

func NewAnthropicClient(apiKey, model string) *AnthropicClient {
	client := anthropic.NewClient(option.WithAPIKey(apiKey))
	anthropicModel := anthropic.ModelClaudeHaiku4_5
	if model != "" {
		anthropicModel = anthropic.Model(model)
	}
	return &AnthropicClient{
		client: &client,
		model:  anthropicModel,
	}
}

func (c *AnthropicClient) Name() string {
	return string(c.model)
}

func (c *AnthropicClient) GenerateInsights(ctx context.Context, kpis []KPIInput) (*Insight, error) {
	userPrompt, err := buildInsightPrompt(kpis)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     c.model,
		MaxTokens: 1024,
		System: []anthropic.TextBlockParam{
			{Text: insightSystemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(userPrompt)),
		},
	})

	if err != nil {
		return nil, fmt.Errorf("anthropic API error: %w", err)
	}

	if len(resp.Content) == 0 {
		return nil, fmt.Errorf("no response from anthropic")
	}

	return parseInsight(resp.Content[0].Text)
}
