package engine

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gold-premium-bot/internal/chart"
	"gold-premium-bot/internal/history"
	"gold-premium-bot/internal/llm/noop"
	"gold-premium-bot/internal/marketdata"
	"gold-premium-bot/internal/store"
	"gold-premium-bot/internal/types"
)

type fakeSource struct {
	quotes map[string]types.Quote
	errFor string
	err    error
}

func (f *fakeSource) GetQuote(ctx context.Context, symbol string) (types.Quote, error) {
	if symbol == f.errFor {
		return types.Quote{}, f.err
	}
	q, ok := f.quotes[symbol]
	if !ok {
		return types.Quote{}, fmt.Errorf("quote %s: %w", symbol, marketdata.ErrDataUnavailable)
	}
	return q, nil
}

type fakeNotifier struct {
	texts    []string
	captions []string
	textErr  error
}

func (f *fakeNotifier) SendText(ctx context.Context, msg string) error {
	if f.textErr != nil {
		return f.textErr
	}
	f.texts = append(f.texts, msg)
	return nil
}

func (f *fakeNotifier) SendPhoto(ctx context.Context, png []byte, caption string) error {
	f.captions = append(f.captions, caption)
	return nil
}

func testConfig(t *testing.T) (*store.Config, *history.Store, string) {
	t.Helper()
	cfg, err := store.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	histPath := filepath.Join(t.TempDir(), "gold_premium_history.json")
	cfg.HistoryFile = histPath
	return cfg, history.New(histPath), histPath
}

func todayKST() string {
	return time.Now().In(kst).Format("2006-01-02")
}

func TestRunComputedFirstObservation(t *testing.T) {
	cfg, hist, histPath := testConfig(t)
	src := &fakeSource{quotes: map[string]types.Quote{
		cfg.Symbols.ETF:  {Price: 27300, NAV: 27000, QuotedAt: 1724900000},
		cfg.Symbols.FX:   {Price: 1310.55, PreviousClose: 1300},
		cfg.Symbols.Gold: {Price: 2020.4, PreviousClose: 2000},
	}}
	notifier := &fakeNotifier{}

	eng := New(cfg, src, hist, noop.NewSummarizer(), notifier, chart.NewRenderer(600, 300))
	require.NoError(t, eng.Run(context.Background()))

	// Stored as the sole entry with the NAV-exact premium.
	stored := hist.Load(context.Background())
	require.Len(t, stored, 1)
	assert.Equal(t, todayKST(), stored[0].Date)
	assert.Equal(t, 1.11, stored[0].Premium)

	require.Len(t, notifier.texts, 1)
	msg := notifier.texts[0]
	assert.Contains(t, msg, "👉 ETF 괴리율: +1.11% (+0.00% vs 전일)")
	// First ever observation: no prior day, labels unknown.
	assert.Contains(t, msg, "최근 7일 평균 대비: N/A")
	// No AI key configured: the placeholder ships inside the report.
	assert.Contains(t, msg, "🤖 AI 요약:")
	assert.Contains(t, msg, "API 키 누락")

	// A single point cannot make a line chart.
	assert.Empty(t, notifier.captions)

	_, err := os.Stat(histPath)
	assert.NoError(t, err)
}

func TestRunEstimatedWritesHistory(t *testing.T) {
	cfg, hist, _ := testConfig(t)
	src := &fakeSource{quotes: map[string]types.Quote{
		cfg.Symbols.ETF:  {Price: 9200, PreviousClose: 9000},
		cfg.Symbols.FX:   {Price: 1310, PreviousClose: 1300},
		cfg.Symbols.Gold: {Price: 2020, PreviousClose: 2000},
	}}
	notifier := &fakeNotifier{}

	eng := New(cfg, src, hist, noop.NewSummarizer(), notifier, chart.NewRenderer(600, 300))
	require.NoError(t, eng.Run(context.Background()))

	stored := hist.Load(context.Background())
	require.Len(t, stored, 1)
	assert.Equal(t, todayKST(), stored[0].Date)

	require.Len(t, notifier.texts, 1)
	assert.Contains(t, notifier.texts[0], "추정")
}

func TestRunHistoricalFallback(t *testing.T) {
	cfg, hist, histPath := testConfig(t)
	seed := []types.PremiumObservation{
		{Date: "2026-08-27", Premium: 1.2, TimeKST: "2026-08-27 15:30:00 KST"},
		{Date: "2026-08-28", Premium: 1.5, TimeKST: "2026-08-28 15:30:00 KST"},
	}
	require.NoError(t, hist.Save(seed))
	before, err := os.ReadFile(histPath)
	require.NoError(t, err)

	// No NAV and incomplete previous closes: estimation fails entirely.
	src := &fakeSource{quotes: map[string]types.Quote{
		cfg.Symbols.ETF:  {Price: 9200},
		cfg.Symbols.FX:   {Price: 1310},
		cfg.Symbols.Gold: {Price: 2020},
	}}
	notifier := &fakeNotifier{}

	eng := New(cfg, src, hist, noop.NewSummarizer(), notifier, chart.NewRenderer(600, 300))
	require.NoError(t, eng.Run(context.Background()))

	require.Len(t, notifier.texts, 1)
	msg := notifier.texts[0]
	assert.Contains(t, msg, "👉 ETF 괴리율: +1.50% (+0.00% vs 전일)")
	assert.Contains(t, msg, "과거 기록된 괴리율 (1.50%)")
	assert.Contains(t, msg, "기준 일시: 과거 (2026-08-28 15:30:00 KST)")
	assert.Contains(t, msg, "--- (과거 기록)")

	// The stale run must not rewrite history.
	after, err := os.ReadFile(histPath)
	require.NoError(t, err)
	assert.Equal(t, before, after)

	// Two stored points: the chart still goes out.
	assert.Equal(t, []string{chartCaption}, notifier.captions)
}

func TestRunNeutralWhenNoHistory(t *testing.T) {
	cfg, hist, histPath := testConfig(t)
	src := &fakeSource{quotes: map[string]types.Quote{
		cfg.Symbols.ETF:  {Price: 9200},
		cfg.Symbols.FX:   {Price: 1310},
		cfg.Symbols.Gold: {Price: 2020},
	}}
	notifier := &fakeNotifier{}

	eng := New(cfg, src, hist, noop.NewSummarizer(), notifier, chart.NewRenderer(600, 300))
	require.NoError(t, eng.Run(context.Background()))

	require.Len(t, notifier.texts, 1)
	msg := notifier.texts[0]
	assert.Contains(t, msg, "괴리율 0.00%로 표시됨")
	assert.Contains(t, msg, "👉 ETF 괴리율: +0.00%")
	assert.Contains(t, msg, "최근 7일 평균 대비: N/A (0.00%) N/A")

	_, err := os.Stat(histPath)
	assert.True(t, os.IsNotExist(err), "failed run must not create a history file")
}

func TestRunAbortsOnDataUnavailable(t *testing.T) {
	cfg, hist, histPath := testConfig(t)
	src := &fakeSource{
		errFor: cfg.Symbols.ETF,
		err:    fmt.Errorf("quote %s: %w", cfg.Symbols.ETF, marketdata.ErrDataUnavailable),
	}
	notifier := &fakeNotifier{}

	eng := New(cfg, src, hist, noop.NewSummarizer(), notifier, chart.NewRenderer(600, 300))
	err := eng.Run(context.Background())

	require.Error(t, err)
	assert.True(t, errors.Is(err, marketdata.ErrDataUnavailable))
	// Aborts before touching history or the channel.
	assert.Empty(t, notifier.texts)
	_, statErr := os.Stat(histPath)
	assert.True(t, os.IsNotExist(statErr))
}

func TestRunPropagatesDeliveryFailure(t *testing.T) {
	cfg, hist, _ := testConfig(t)
	src := &fakeSource{quotes: map[string]types.Quote{
		cfg.Symbols.ETF:  {Price: 27300, NAV: 27000},
		cfg.Symbols.FX:   {Price: 1310},
		cfg.Symbols.Gold: {Price: 2020},
	}}
	notifier := &fakeNotifier{textErr: errors.New("telegram sendMessage: http 502")}

	eng := New(cfg, src, hist, noop.NewSummarizer(), notifier, chart.NewRenderer(600, 300))
	err := eng.Run(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "sendMessage")
}

func TestRunSameDayRerunReplacesEntry(t *testing.T) {
	cfg, hist, _ := testConfig(t)
	quotes := map[string]types.Quote{
		cfg.Symbols.ETF:  {Price: 27300, NAV: 27000},
		cfg.Symbols.FX:   {Price: 1310},
		cfg.Symbols.Gold: {Price: 2020},
	}
	src := &fakeSource{quotes: quotes}
	notifier := &fakeNotifier{}
	eng := New(cfg, src, hist, noop.NewSummarizer(), notifier, chart.NewRenderer(600, 300))

	require.NoError(t, eng.Run(context.Background()))

	// Same day, new price: the day's entry is replaced, not duplicated.
	quotes[cfg.Symbols.ETF] = types.Quote{Price: 27540, NAV: 27000}
	require.NoError(t, eng.Run(context.Background()))

	stored := hist.Load(context.Background())
	require.Len(t, stored, 1)
	assert.Equal(t, 2.0, stored[0].Premium)
}

func TestFormatKST(t *testing.T) {
	assert.Equal(t, "N/A", formatKST(0))
	// 2024-08-29 03:33:20 UTC is 12:33:20 in KST.
	assert.Equal(t, "2024-08-29 12:33:20 KST", formatKST(1724902400))
}
