package report

import (
	"fmt"
	"strings"

	"gold-premium-bot/internal/types"
)

// Labels mirror the wording of the Telegram report this bot has always sent.
var valuationText = map[types.ValuationLabel]string{
	types.ValuationOver:    "고평가",
	types.ValuationUnder:   "저평가",
	types.ValuationUnknown: "N/A",
}

var trendText = map[types.TrendLabel]string{
	types.TrendUp:         "📈 상승세",
	types.TrendDown:       "📉 하락세",
	types.TrendHistorical: "--- (과거 기록)",
	types.TrendUnknown:    "N/A",
}

// Compose renders the daily status message from the estimation and trend
// outputs. Pure formatting, no I/O.
func Compose(today, timeStr string, res types.PremiumResult, sum types.TrendSummary) string {
	var b strings.Builder

	fmt.Fprintf(&b, "📅 %s ACE KRX금현물 ETF 괴리율 알림\n", today)
	fmt.Fprintf(&b, "기준 일시: %s\n", timeStr)
	if res.StatusNote != "" {
		b.WriteString(res.StatusNote)
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, "국내 ETF 시장가 (주당): %s원\n", comma(res.ETFPrice, 0))
	fmt.Fprintf(&b, "국제 금 1g 이론가 (NAV): %s원\n", comma(res.Theoretical, 0))
	fmt.Fprintf(&b, "국제 금시세 (oz): $%s\n", comma(res.GoldUSD, 2))
	fmt.Fprintf(&b, "환율: %s원/$\n", comma(res.FXRate, 2))
	fmt.Fprintf(&b, "👉 ETF 괴리율: %+.2f%% (%+.2f%% vs 전일)\n", res.Premium, sum.Change)
	fmt.Fprintf(&b, "최근 7일 평균 대비: %s (%.2f%%) %s",
		valuationText[sum.Valuation], sum.Avg7, trendText[sum.Trend])

	return b.String()
}

// WithSummary appends the AI commentary block to a composed message.
func WithSummary(msg, aiSummary string) string {
	return fmt.Sprintf("%s\n\n🤖 AI 요약:\n%s", msg, aiSummary)
}

// comma formats v with thousands separators and the given number of
// decimal places, e.g. comma(27300, 0) == "27,300".
func comma(v float64, decimals int) string {
	s := fmt.Sprintf("%.*f", decimals, v)

	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	intPart, fracPart, hasFrac := strings.Cut(s, ".")

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}

	out := b.String()
	if hasFrac {
		out += "." + fracPart
	}
	if neg {
		out = "-" + out
	}
	return out
}
