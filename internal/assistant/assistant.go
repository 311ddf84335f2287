package assistant

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

const defaultPollInterval = 800 * time.Millisecond

// Service drives conversations with a pre-configured hosted assistant. The
// assistant itself (instructions, attached files) is managed out of band;
// this wrapper only creates threads and runs against it.
type Service struct {
	client       *openai.Client
	assistantID  string
	logger       *slog.Logger
	pollInterval time.Duration
}

// NewService resolves the assistant up front so a bad ID fails at startup
// rather than on the first chat.
func NewService(ctx context.Context, client *openai.Client, assistantID string, logger *slog.Logger) (*Service, error) {
	if logger == nil {
		logger = slog.Default()
	}
	a, err := client.RetrieveAssistant(ctx, assistantID)
	if err != nil {
		return nil, fmt.Errorf("retrieving assistant %s: %w", assistantID, err)
	}
	name := ""
	if a.Name != nil {
		name = *a.Name
	}
	logger.Info("assistant.ready", "assistant_id", assistantID, "name", name)
	return &Service{
		client:       client,
		assistantID:  assistantID,
		logger:       logger,
		pollInterval: defaultPollInterval,
	}, nil
}

// Chat posts a user message on the given thread and returns the assistant's
// reply. An empty threadID starts a new thread; the thread ID in use is
// returned so callers can continue the conversation.
func (s *Service) Chat(ctx context.Context, threadID, message string) (string, string, error) {
	start := time.Now()

	if threadID == "" {
		thread, err := s.client.CreateThread(ctx, openai.ThreadRequest{})
		if err != nil {
			return "", "", fmt.Errorf("creating thread: %w", err)
		}
		threadID = thread.ID
		s.logger.Info("assistant.thread_created", "thread_id", threadID)
	}

	if _, err := s.client.CreateMessage(ctx, threadID, openai.MessageRequest{
		Role:    openai.ChatMessageRoleUser,
		Content: message,
	}); err != nil {
		return "", threadID, fmt.Errorf("posting message: %w", err)
	}

	run, err := s.client.CreateRun(ctx, threadID, openai.RunRequest{
		AssistantID: s.assistantID,
	})
	if err != nil {
		return "", threadID, fmt.Errorf("starting run: %w", err)
	}

	run, err = s.awaitRun(ctx, threadID, run)
	if err != nil {
		return "", threadID, err
	}

	reply, err := s.latestReply(ctx, threadID, run.ID)
	if err != nil {
		return "", threadID, err
	}

	s.logger.Info("assistant.chat_ok",
		"thread_id", threadID,
		"run_id", run.ID,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return reply, threadID, nil
}

// awaitRun polls until the run reaches a terminal status.
func (s *Service) awaitRun(ctx context.Context, threadID string, run openai.Run) (openai.Run, error) {
	for {
		switch run.Status {
		case openai.RunStatusCompleted:
			return run, nil
		case openai.RunStatusFailed, openai.RunStatusCancelled, openai.RunStatusExpired:
			msg := ""
			if run.LastError != nil {
				msg = run.LastError.Message
			}
			return run, fmt.Errorf("run %s ended with status %s: %s", run.ID, run.Status, msg)
		case openai.RunStatusRequiresAction:
			return run, fmt.Errorf("run %s requires tool action, which is not supported here", run.ID)
		}

		select {
		case <-ctx.Done():
			return run, ctx.Err()
		case <-time.After(s.pollInterval):
		}

		var err error
		run, err = s.client.RetrieveRun(ctx, threadID, run.ID)
		if err != nil {
			return run, fmt.Errorf("polling run %s: %w", run.ID, err)
		}
	}
}

// latestReply fetches the assistant message produced by the given run.
func (s *Service) latestReply(ctx context.Context, threadID, runID string) (string, error) {
	limit := 1
	order := "desc"
	msgs, err := s.client.ListMessage(ctx, threadID, &limit, &order, nil, nil, &runID)
	if err != nil {
		return "", fmt.Errorf("listing messages: %w", err)
	}
	for _, m := range msgs.Messages {
		if m.Role != openai.ChatMessageRoleAssistant {
			continue
		}
		for _, c := range m.Content {
			if c.Text != nil {
				return c.Text.Value, nil
			}
		}
	}
	return "", errors.New("run produced no assistant reply")
}
