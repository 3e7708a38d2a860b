package gpt

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"
)

// Message is one turn of a conversation transcript. It is JSON-serializable
// so roleplay transcripts survive a round-trip through the session store.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type Config struct {
	Model       string
	Temperature float64
	TopP        float64
	MaxTokens   int
	// Timeout bounds each individual attempt; Retries is the number of
	// additional attempts after the first one fails.
	Timeout time.Duration
	Retries int
}

type Client struct {
	api openai.Client
	cfg Config
}

// NewClient creates a chat-completion client. baseURL is optional and allows
// pointing at any OpenAI-compatible endpoint.
func NewClient(apiKey, baseURL string, cfg Config) *Client {
	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}

	if cfg.Timeout <= 0 {
		cfg.Timeout = 60 * time.Second
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = 1024
	}
	if cfg.Retries < 0 {
		cfg.Retries = 0
	}

	return &Client{
		api: openai.NewClient(opts...),
		cfg: cfg,
	}
}

// Complete issues a single stateless request: one system prompt, one user
// message, one reply.
func (c *Client) Complete(ctx context.Context, system, user string) (string, error) {
	return c.Chat(ctx, system, nil, user)
}

// Chat issues a request carrying a prior transcript. The caller owns the
// transcript; the new user message and the returned reply are not appended
// here so a failed call leaves no trace in the history.
func (c *Client) Chat(ctx context.Context, system string, history []Message, user string) (string, error) {
	messages := make([]openai.ChatCompletionMessageParamUnion, 0, len(history)+2)
	if system != "" {
		messages = append(messages, openai.SystemMessage(system))
	}
	for _, msg := range history {
		switch msg.Role {
		case "assistant":
			messages = append(messages, openai.AssistantMessage(msg.Content))
		default:
			messages = append(messages, openai.UserMessage(msg.Content))
		}
	}
	messages = append(messages, openai.UserMessage(user))

	params := openai.ChatCompletionNewParams{
		Model:       shared.ChatModel(c.cfg.Model),
		Messages:    messages,
		Temperature: openai.Float(c.cfg.Temperature),
		TopP:        openai.Float(c.cfg.TopP),
		MaxTokens:   openai.Int(int64(c.cfg.MaxTokens)),
	}

	var lastErr error
	attempts := c.cfg.Retries + 1
	for attempt := 0; attempt < attempts; attempt++ {
		reply, err := c.complete(ctx, params)
		if err == nil {
			return reply, nil
		}
		lastErr = err
		log.Printf("gpt: attempt %d/%d failed: %v", attempt+1, attempts, err)
		if ctx.Err() != nil {
			break
		}
	}
	return "", fmt.Errorf("completion failed after %d attempt(s): %w", attempts, lastErr)
}

func (c *Client) complete(ctx context.Context, params openai.ChatCompletionNewParams) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	resp, err := c.api.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", err
	}
	if resp == nil || len(resp.Choices) == 0 {
		return "", fmt.Errorf("empty response")
	}
	return resp.Choices[0].Message.Content, nil
}
