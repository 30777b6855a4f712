package insight

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

type OpenAIClient struct {
	client *openai.Client
	model  openai.ChatModel
}

func NewOpenAIClient(apiKey, model string) *OpenAIClient {
	client := openai.NewClient(option.WithAPIKey(apiKey))
	chatModel := openai.ChatModelGPT4oMini
	if model != "" {
		chatModel = openai.ChatModel(model)
	}
	return &OpenAIClient{
		client: &client,
		model:  chatModel,
	}
}

func (c *OpenAIClient) Name() string {
	return string(c.model)
}

func (c *OpenAIClient) GenerateInsights(ctx context.Context, kpis []KPIInput) (*Insight, error) {
	userPrompt, err := buildInsightPrompt(kpis)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(insightSystemPrompt),
			openai.UserMessage(userPrompt),
		},
	})

	if err != nil {
		return nil, fmt.Errorf("openai API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no response from openai")
	}

	return parseInsight(resp.Choices[0].Message.Content)
}
