package quoteobs

import (
	"context"

	"gold-premium-bot/internal/interfaces"
	"gold-premium-bot/internal/logger"
	"gold-premium-bot/internal/trace"
	"gold-premium-bot/internal/types"
)

// observableSource wraps a QuoteSource with observability (logging & tracing)
type observableSource struct {
	src interfaces.QuoteSource
}

// Compile-time interface check
var _ interfaces.QuoteSource = (*observableSource)(nil)

// Wrap wraps a quote source with observability middleware
func Wrap(src interfaces.QuoteSource) interfaces.QuoteSource {
	return &observableSource{src: src}
}

func (o *observableSource) GetQuote(ctx context.Context, symbol string) (types.Quote, error) {
	ctx, span := trace.StartSpan(ctx, "marketdata.GetQuote")
	defer span.End()

	logger.DebugSkip(ctx, 1, "Fetching quote", "symbol", symbol)

	q, err := o.src.GetQuote(ctx, symbol)
	if err != nil {
		logger.ErrorWithErrSkip(ctx, 1, "Failed to fetch quote", err, "symbol", symbol)
		return types.Quote{}, err
	}

	logger.InfoSkip(ctx, 1, "Quote fetched",
		"symbol", symbol,
		"price", q.Price,
		"previous_close", q.PreviousClose,
		"nav", q.NAV,
		"quoted_at", q.QuotedAt,
	)
	return q, nil
}
