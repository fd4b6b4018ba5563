package marketdata

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseQuoteFullPayload(t *testing.T) {
	body := []byte(`{"quoteResponse":{"result":[{
		"symbol":"411060.KS",
		"regularMarketPrice":27300,
		"regularMarketPreviousClose":27100,
		"navPrice":27000,
		"regularMarketTime":1724900000
	}],"error":null}}`)

	q, err := parseQuote(body, "411060.KS")
	require.NoError(t, err)

	assert.Equal(t, 27300.0, q.Price)
	assert.Equal(t, 27100.0, q.PreviousClose)
	assert.Equal(t, 27000.0, q.NAV)
	assert.Equal(t, int64(1724900000), q.QuotedAt)
	assert.True(t, q.HasNAV())
}

func TestParseQuoteOptionalFieldsAbsent(t *testing.T) {
	body := []byte(`{"quoteResponse":{"result":[{
		"symbol":"GC=F",
		"regularMarketPrice":2020.4
	}],"error":null}}`)

	q, err := parseQuote(body, "GC=F")
	require.NoError(t, err)

	assert.Equal(t, 2020.4, q.Price)
	assert.False(t, q.HasNAV())
	assert.False(t, q.HasPreviousClose())
	assert.Zero(t, q.QuotedAt)
}

func TestParseQuoteFallsBackToPreviousClose(t *testing.T) {
	body := []byte(`{"quoteResponse":{"result":[{
		"symbol":"411060.KS",
		"regularMarketPreviousClose":27100
	}],"error":null}}`)

	q, err := parseQuote(body, "411060.KS")
	require.NoError(t, err)
	assert.Equal(t, 27100.0, q.Price)
}

func TestParseQuoteNoUsablePrice(t *testing.T) {
	body := []byte(`{"quoteResponse":{"result":[{"symbol":"411060.KS"}],"error":null}}`)

	_, err := parseQuote(body, "411060.KS")
	assert.True(t, errors.Is(err, ErrDataUnavailable))
}

func TestParseQuoteEmptyResult(t *testing.T) {
	body := []byte(`{"quoteResponse":{"result":[],"error":null}}`)

	_, err := parseQuote(body, "NOPE")
	assert.True(t, errors.Is(err, ErrDataUnavailable))
}

func TestParseQuoteMalformedBody(t *testing.T) {
	_, err := parseQuote([]byte("<html>rate limited</html>"), "411060.KS")
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrDataUnavailable))
}
