package completion

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ethanbaker/relay/pkg/transcript"
	"github.com/ethanbaker/relay/pkg/utils"
	openai "github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"
)

const defaultBaseURL = "https://openrouter.ai/api/v1"

// Client calls an OpenRouter-compatible chat completions endpoint
type Client struct {
	api    openai.Client
	params Params
}

// NewClient creates a completion client from configuration. The API key is
// required and read from OPENROUTER_API_KEY; it is never embedded in source
func NewClient(cfg *utils.Config) (*Client, error) {
	apiKey := cfg.Get("OPENROUTER_API_KEY")
	if apiKey == "" {
		return nil, errors.New("OPENROUTER_API_KEY not set in environment")
	}

	baseURL := cfg.GetWithDefault("OPENROUTER_BASE_URL", defaultBaseURL)

	// Load generation parameters from the params file if one is configured
	params := DefaultParams()
	if path := cfg.Get("COMPLETION_PARAMS_PATH"); path != "" {
		var err error
		params, err = LoadParams(path)
		if err != nil {
			return nil, err
		}
	}

	// The upstream call is the only blocking point in the relay, so cap it
	timeout := cfg.GetIntWithDefault("COMPLETION_TIMEOUT_SECONDS", 120)

	api := openai.NewClient(
		option.WithAPIKey(apiKey),
		option.WithBaseURL(baseURL),
		option.WithRequestTimeout(time.Duration(timeout)*time.Second),
	)

	return &Client{api: api, params: params}, nil
}

// Params returns the generation parameters in use
func (c *Client) Params() Params {
	return c.params
}

// Complete sends the full conversation to the completion endpoint and
// returns the first candidate's message content. Transport failures,
// provider errors, and empty candidate lists all surface as errors
func (c *Client) Complete(ctx context.Context, turns []transcript.Turn) (string, error) {
	resp, err := c.api.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:       openai.ChatModel(c.params.Model),
		Messages:    toMessages(turns),
		Temperature: openai.Float(c.params.Temperature),
		MaxTokens:   openai.Int(c.params.MaxTokens),
		TopP:        openai.Float(c.params.TopP),
	})
	if err != nil {
		return "", fmt.Errorf("completion request failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", errors.New("completion response contained no choices")
	}

	return resp.Choices[0].Message.Content, nil
}

// toMessages converts transcript turns into chat completion message params
func toMessages(turns []transcript.Turn) []openai.ChatCompletionMessageParamUnion {
	messages := make([]openai.ChatCompletionMessageParamUnion, 0, len(turns))

	for _, turn := range turns {
		switch turn.Role {
		case transcript.RoleSystem:
			messages = append(messages, openai.SystemMessage(turn.Text))
		case transcript.RoleAssistant:
			messages = append(messages, openai.AssistantMessage(turn.Text))
		default:
			if turn.IsStructured() {
				messages = append(messages, openai.UserMessage(toContentParts(turn.Parts)))
			} else {
				messages = append(messages, openai.UserMessage(turn.Text))
			}
		}
	}

	return messages
}

// toContentParts converts structured turn parts into content part params
func toContentParts(parts []transcript.Part) []openai.ChatCompletionContentPartUnionParam {
	converted := make([]openai.ChatCompletionContentPartUnionParam, 0, len(parts))

	for _, part := range parts {
		switch part.Kind {
		case transcript.PartImageURL:
			converted = append(converted, openai.ImageContentPart(
				openai.ChatCompletionContentPartImageImageURLParam{URL: part.URL},
			))
		default:
			converted = append(converted, openai.TextContentPart(part.Text))
		}
	}

	return converted
}
