package trend

import (
	"gold-premium-bot/internal/history"
	"gold-premium-bot/internal/types"
)

// Analyze derives the day-over-day change, the 7-day average and the
// valuation/trend labels for today's premium. The history passed in already
// includes today's observation when the run stored one.
//
// Tie convention: a premium equal to its 7-day average reads as undervalued,
// and a zero day-over-day change reads as a downtrend (strict greater-than
// on both tests).
func Analyze(hist []types.PremiumObservation, today string, current float64, status types.PremiumStatus) types.TrendSummary {
	switch status {
	case types.StatusUnavailable:
		// Nothing computed and nothing stored: neutral zero, no labels.
		return types.TrendSummary{Valuation: types.ValuationUnknown, Trend: types.TrendUnknown}

	case types.StatusHistorical:
		// Yesterday's number re-reported as today's: no direction, but it
		// still positions against the stored average.
		avg7 := mean(history.LastN(hist, 7))
		return types.TrendSummary{
			Avg7:      avg7,
			Valuation: valuation(current, avg7),
			Trend:     types.TrendHistorical,
		}
	}

	avg7 := mean(history.LastN(hist, 7))

	prev, ok := history.LastBefore(hist, today)
	if !ok {
		// First ever observation: there is no prior day to compare against.
		return types.TrendSummary{Avg7: avg7, Valuation: types.ValuationUnknown, Trend: types.TrendUnknown}
	}

	change := current - prev.Premium
	sum := types.TrendSummary{
		Change:    change,
		Avg7:      avg7,
		Valuation: valuation(current, avg7),
		Trend:     types.TrendDown,
	}
	if change > 0 {
		sum.Trend = types.TrendUp
	}
	return sum
}

func valuation(current, avg7 float64) types.ValuationLabel {
	if current > avg7 {
		return types.ValuationOver
	}
	return types.ValuationUnder
}

func mean(obs []types.PremiumObservation) float64 {
	if len(obs) == 0 {
		return 0
	}
	var sum float64
	for _, o := range obs {
		sum += o.Premium
	}
	return sum / float64(len(obs))
}
