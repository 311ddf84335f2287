package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	openai "github.com/sashabaranov/go-openai"
	"github.com/spf13/cobra"

	"github.com/examforge/mcq-ingest/internal/assistant"
	"github.com/examforge/mcq-ingest/internal/common"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Interactive chat with the revision assistant",
	Long: `chat opens an interactive session against the pre-configured hosted
assistant. The conversation stays on one thread for the whole session,
so the assistant keeps context across questions. End with Ctrl-D or an
empty line.`,
	RunE: runChat,
}

func runChat(cmd *cobra.Command, args []string) error {
	logger := newLogger()
	cfg := loadConfig(logger,
		(*common.Config).ValidateLLM,
		(*common.Config).ValidateAssistant,
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	clientCfg := openai.DefaultConfig(cfg.LLM.APIKey)
	if cfg.LLM.BaseURL != "" {
		clientCfg.BaseURL = cfg.LLM.BaseURL
	}
	svc, err := assistant.NewService(ctx, openai.NewClientWithConfig(clientCfg), cfg.Assistant.AssistantID, logger)
	if err != nil {
		return err
	}

	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	threadID := ""
	fmt.Println("assistant ready; empty line or Ctrl-D ends the session")
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			break
		}

		reply, tid, err := svc.Chat(ctx, threadID, line)
		if err != nil {
			if ctx.Err() != nil {
				break
			}
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			continue
		}
		threadID = tid
		fmt.Println(reply)
	}
	return scanner.Err()
}
