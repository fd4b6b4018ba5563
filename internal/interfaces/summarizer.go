package interfaces

import (
	"context"

	"gold-premium-bot/internal/types"
)

// Summarizer produces the AI commentary block of the daily report. It never
// fails the run: on any degradation it returns an explanatory string instead.
type Summarizer interface {
	Summarize(ctx context.Context, todayMsg string, history []types.PremiumObservation) string
}
