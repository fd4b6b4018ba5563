package llm

import (
	"os"

	"gold-premium-bot/internal/interfaces"
	"gold-premium-bot/internal/llm/noop"
	"gold-premium-bot/internal/llm/openai"
	"gold-premium-bot/internal/store"
)

// NewSummarizer picks the OpenAI summarizer when an API key is configured
// and the degraded noop stand-in otherwise. The key's absence costs only the
// AI block of the report, never the run.
func NewSummarizer(cfg *store.Config) interfaces.Summarizer {
	if os.Getenv("OPENAI_API_KEY") == "" {
		return noop.NewSummarizer()
	}
	return openai.NewSummarizer(cfg)
}
