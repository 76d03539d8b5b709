package openrouter

import (
	"context"
	"errors"
	"fmt"

	"github.com/eduardolat/openroutergo"
)

const (
	DefaultModel  = "google/gemini-2.5-flash"
	systemMessage = "You are an expert technical recruiter and resume writer. Follow the output rules in each request exactly."
)

var ErrNoChoices = errors.New("openrouter: no response choices received")

type Config struct {
	APIKey string
	Model  string
}

// Client generates text through the OpenRouter chat completion API
type Client struct {
	client *openroutergo.Client
	model  string
}

func NewClient(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openrouter: API key is required")
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}

	client, err := openroutergo.
		NewClient().
		WithAPIKey(cfg.APIKey).
		Create()
	if err != nil {
		return nil, fmt.Errorf("openrouter: failed to create client: %w", err)
	}

	return &Client{client: client, model: cfg.Model}, nil
}

// Generate runs a single-turn chat completion. The context is checked before
// the call; the library does not accept one.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	_, resp, err := c.client.
		NewChatCompletion().
		WithModel(c.model).
		WithSystemMessage(systemMessage).
		WithUserMessage(prompt).
		Execute()
	if err != nil {
		return "", fmt.Errorf("openrouter: execute completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", ErrNoChoices
	}

	return resp.Choices[0].Message.Content, nil
}
