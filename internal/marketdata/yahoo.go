package marketdata

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"gold-premium-bot/internal/types"
)

// ErrDataUnavailable means the source resolved neither a live price nor a
// previous close for the requested symbol. It aborts the run.
var ErrDataUnavailable = errors.New("no usable price data")

const quoteURL = "https://query1.finance.yahoo.com/v7/finance/quote"

// Yahoo fetches quotes from the Yahoo Finance v7 quote endpoint. For ETF
// symbols the payload also carries the fund's NAV when the exchange reports
// one; previous close, NAV and quote time are each optional.
type Yahoo struct {
	client *resty.Client
}

func NewYahoo(timeout time.Duration) *Yahoo {
	client := resty.New()
	client.SetTimeout(timeout)
	// Yahoo rejects requests without a browser-looking agent.
	client.SetHeader("User-Agent", "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36")
	return &Yahoo{client: client}
}

type quoteResponse struct {
	QuoteResponse struct {
		Result []struct {
			Symbol                     string  `json:"symbol"`
			RegularMarketPrice         float64 `json:"regularMarketPrice"`
			RegularMarketPreviousClose float64 `json:"regularMarketPreviousClose"`
			NavPrice                   float64 `json:"navPrice"`
			RegularMarketTime          int64   `json:"regularMarketTime"`
		} `json:"result"`
		Error any `json:"error"`
	} `json:"quoteResponse"`
}

func (y *Yahoo) GetQuote(ctx context.Context, symbol string) (types.Quote, error) {
	resp, err := y.client.R().
		SetContext(ctx).
		SetQueryParam("symbols", symbol).
		Get(quoteURL)
	if err != nil {
		return types.Quote{}, fmt.Errorf("quote %s: %w", symbol, err)
	}
	if resp.StatusCode() >= 300 {
		return types.Quote{}, fmt.Errorf("quote %s: http %d", symbol, resp.StatusCode())
	}
	return parseQuote(resp.Body(), symbol)
}

func parseQuote(body []byte, symbol string) (types.Quote, error) {
	var qr quoteResponse
	if err := json.Unmarshal(body, &qr); err != nil {
		return types.Quote{}, fmt.Errorf("quote %s: decode: %w", symbol, err)
	}
	if len(qr.QuoteResponse.Result) == 0 {
		return types.Quote{}, fmt.Errorf("quote %s: %w", symbol, ErrDataUnavailable)
	}

	r := qr.QuoteResponse.Result[0]
	q := types.Quote{
		Symbol:        symbol,
		Price:         r.RegularMarketPrice,
		PreviousClose: r.RegularMarketPreviousClose,
		NAV:           r.NavPrice,
		QuotedAt:      r.RegularMarketTime,
	}
	// Same fallback as the original deployment: a closed market still
	// reports yesterday's close, which is good enough for a daily report.
	if q.Price <= 0 {
		q.Price = q.PreviousClose
	}
	if q.Price <= 0 {
		return types.Quote{}, fmt.Errorf("quote %s: %w", symbol, ErrDataUnavailable)
	}
	return q, nil
}
