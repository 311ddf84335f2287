package openai

// Config holds what the oracle client needs to reach the chat-completions
// endpoint. BaseURL is optional and exists for OpenAI-compatible gateways.
type Config struct {
	APIKey  string
	BaseURL string
	Model   string
}
