package engine

import (
	"context"
	"fmt"
	"time"

	"gold-premium-bot/internal/history"
	"gold-premium-bot/internal/interfaces"
	"gold-premium-bot/internal/logger"
	"gold-premium-bot/internal/premium"
	"gold-premium-bot/internal/report"
	"gold-premium-bot/internal/store"
	"gold-premium-bot/internal/trend"
	"gold-premium-bot/internal/types"
)

// The reporting day and all display timestamps use Korean local time.
var kst = time.FixedZone("KST", 9*3600)

const chartCaption = "📈 최근 7일 ETF 괴리율 추세"

// Engine runs one full report cycle: quotes, estimation, history update,
// trend analysis, message composition and delivery.
type Engine struct {
	cfg        *store.Config
	quotes     interfaces.QuoteSource
	hist       *history.Store
	summarizer interfaces.Summarizer
	notifier   interfaces.Notifier
	renderer   interfaces.ChartRenderer
}

func New(cfg *store.Config, quotes interfaces.QuoteSource, hist *history.Store,
	summarizer interfaces.Summarizer, notifier interfaces.Notifier,
	renderer interfaces.ChartRenderer) *Engine {
	return &Engine{
		cfg:        cfg,
		quotes:     quotes,
		hist:       hist,
		summarizer: summarizer,
		notifier:   notifier,
		renderer:   renderer,
	}
}

// Run executes one synchronous report cycle. Only an unresolvable quote or a
// delivery/persistence error aborts; estimation and summary degradation are
// folded into the report text instead.
func (e *Engine) Run(ctx context.Context) error {
	today := time.Now().In(kst).Format("2006-01-02")
	logger.Info(ctx, "Starting daily premium run", "date", today)

	etf, err := e.quotes.GetQuote(ctx, e.cfg.Symbols.ETF)
	if err != nil {
		return err
	}
	fx, err := e.quotes.GetQuote(ctx, e.cfg.Symbols.FX)
	if err != nil {
		return err
	}
	gold, err := e.quotes.GetQuote(ctx, e.cfg.Symbols.Gold)
	if err != nil {
		return err
	}

	res := premium.Estimate(etf, fx, gold)
	hist := e.hist.Load(ctx)

	var timeStr string
	switch res.Status {
	case types.StatusComputed, types.StatusEstimated:
		timeStr = formatKST(res.QuotedAt)
		hist = history.UpsertToday(hist, types.PremiumObservation{
			Date:    today,
			Premium: res.Premium,
			TimeKST: timeStr,
		})
		if err := e.hist.Save(hist); err != nil {
			return fmt.Errorf("save history: %w", err)
		}

	default:
		// Estimation failed entirely. Report the last stored value as a
		// stale reading, or a neutral zero when nothing was ever stored.
		// The history file is left untouched either way.
		if n := len(hist); n > 0 {
			last := hist[n-1]
			res.Status = types.StatusHistorical
			res.Premium = last.Premium
			lastTime := last.TimeKST
			if lastTime == "" {
				lastTime = last.Date
			}
			timeStr = fmt.Sprintf("과거 (%s)", lastTime)
			res.StatusNote = fmt.Sprintf("%s - 과거 기록된 괴리율 (%.2f%%) 표시됨.", res.StatusNote, last.Premium)
		} else {
			res.Premium = 0
			timeStr = time.Now().In(kst).Format("2006-01-02 15:04:05 KST")
			res.StatusNote = fmt.Sprintf("%s - 기록된 데이터가 없어 괴리율 0.00%%로 표시됨.", res.StatusNote)
		}
	}

	sum := trend.Analyze(hist, today, res.Premium, res.Status)
	logger.Premium(ctx, string(res.Status), res.Premium, sum.Change, sum.Avg7)

	msg := report.Compose(today, timeStr, res, sum)
	aiSummary := e.summarizer.Summarize(ctx, msg, hist)
	full := report.WithSummary(msg, aiSummary)

	if err := e.notifier.SendText(ctx, full); err != nil {
		return err
	}

	png, err := e.renderer.Render(hist)
	if err != nil {
		return fmt.Errorf("render chart: %w", err)
	}
	if png == nil {
		logger.Info(ctx, "Chart skipped, not enough history", "points", len(hist))
		return nil
	}
	if err := e.notifier.SendPhoto(ctx, png, chartCaption); err != nil {
		return err
	}

	logger.Info(ctx, "Daily premium run finished", "date", today, "status", string(res.Status))
	return nil
}

// formatKST renders a unix quote timestamp for the report header.
func formatKST(ts int64) string {
	if ts == 0 {
		return "N/A"
	}
	return time.Unix(ts, 0).In(kst).Format("2006-01-02 15:04:05 KST")
}
