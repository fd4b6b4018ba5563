package llmobs

import (
	"context"

	"gold-premium-bot/internal/interfaces"
	"gold-premium-bot/internal/logger"
	"gold-premium-bot/internal/trace"
	"gold-premium-bot/internal/types"
)

// observableSummarizer wraps a Summarizer with observability (logging & tracing)
type observableSummarizer struct {
	summarizer interfaces.Summarizer
}

// Compile-time interface check
var _ interfaces.Summarizer = (*observableSummarizer)(nil)

// Wrap wraps a summarizer with observability middleware
func Wrap(summarizer interfaces.Summarizer) interfaces.Summarizer {
	return &observableSummarizer{summarizer: summarizer}
}

func (o *observableSummarizer) Summarize(ctx context.Context, todayMsg string, hist []types.PremiumObservation) string {
	ctx, span := trace.StartSpan(ctx, "llm.Summarize")
	defer span.End()

	logger.DebugSkip(ctx, 1, "Requesting AI summary", "history_points", len(hist))

	summary := o.summarizer.Summarize(ctx, todayMsg, hist)

	logger.InfoSkip(ctx, 1, "AI summary received", "length", len(summary))
	return summary
}
