package openai

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/google/uuid"
	openai "github.com/sashabaranov/go-openai"

	"github.com/examforge/mcq-ingest/internal/llm"
)

// Client implements llm.Oracle over the OpenAI chat-completions API.
type Client struct {
	client *openai.Client
	cfg    Config
	log    *slog.Logger
}

func NewClient(cfg Config, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	return &Client{
		client: openai.NewClientWithConfig(clientCfg),
		cfg:    cfg,
		log:    logger,
	}
}

// Complete sends one extraction instruction at deterministic sampling and
// returns the raw reply text. No output-length cap: explanations must come
// back whole, and truncation would surface as a parse failure anyway.
func (c *Client) Complete(ctx context.Context, instruction string) (string, error) {
	rid := uuid.New().String()
	start := time.Now()

	c.log.Info("oracle.request",
		"req_id", rid,
		"model", c.cfg.Model,
		"instruction_bytes", len(instruction),
	)

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.cfg.Model,
		// omitempty drops a literal zero, which would fall back to the
		// server-side default temperature; smallest nonzero survives
		// serialization and is deterministic in practice.
		Temperature: math.SmallestNonzeroFloat32,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: llm.SystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: instruction},
		},
	})
	if err != nil {
		c.log.Error("oracle.request_failed",
			"req_id", rid,
			"error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return "", err
	}
	if len(resp.Choices) == 0 {
		c.log.Error("oracle.no_choices",
			"req_id", rid,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return "", fmt.Errorf("no choices in oracle response")
	}

	content := resp.Choices[0].Message.Content
	c.log.Info("oracle.response",
		"req_id", rid,
		"bytes", len(content),
		"finish_reason", string(resp.Choices[0].FinishReason),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return content, nil
}
