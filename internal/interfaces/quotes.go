package interfaces

import (
	"context"

	"gold-premium-bot/internal/types"
)

type QuoteSource interface {
	GetQuote(ctx context.Context, symbol string) (types.Quote, error)
}
