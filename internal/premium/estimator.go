package premium

import (
	"github.com/shopspring/decimal"

	"gold-premium-bot/internal/types"
)

// Grams per troy ounce, for converting the international gold quote (USD/oz)
// into a per-gram KRW value.
var troyOunceGrams = decimal.NewFromFloat(31.1035)

var (
	one     = decimal.NewFromInt(1)
	hundred = decimal.NewFromInt(100)
)

// Estimate computes today's premium of the domestic gold ETF over its
// theoretical value. Three methods, in priority order:
//
//  1. NAV-based: the exchange reported a NAV, premium is exact.
//  2. Ratio-inference: NAV missing, but all three previous closes are known.
//     Yesterday's implied 1g KRW value calibrates the ETF's unit sizing
//     (shares are fractional grams, the exact fraction is not hardcoded);
//     the same ratio applied to today's implied 1g value gives an estimated
//     theoretical value. Assumes the fund's structural premium is stable
//     day to day.
//  3. Degenerate: not even the previous closes are complete. The theoretical
//     value is set to the traded price itself, the premium is unusable and
//     the caller falls back to history.
func Estimate(etf, fx, gold types.Quote) types.PremiumResult {
	res := types.PremiumResult{
		ETFPrice: etf.Price,
		FXRate:   fx.Price,
		GoldUSD:  gold.Price,
		QuotedAt: etf.QuotedAt,
	}

	price := decimal.NewFromFloat(etf.Price)

	if etf.HasNAV() {
		nav := decimal.NewFromFloat(etf.NAV)
		res.Status = types.StatusComputed
		res.Theoretical = etf.NAV
		res.Premium = premiumPct(price, nav)
		return res
	}

	if etf.HasPreviousClose() && gold.HasPreviousClose() && fx.HasPreviousClose() {
		// Yesterday's implied KRW value of 1g of gold.
		prev1g := decimal.NewFromFloat(gold.PreviousClose).
			Div(troyOunceGrams).
			Mul(decimal.NewFromFloat(fx.PreviousClose))
		if !prev1g.IsZero() {
			ratio := decimal.NewFromFloat(etf.PreviousClose).Div(prev1g)
			today1g := decimal.NewFromFloat(gold.Price).
				Div(troyOunceGrams).
				Mul(decimal.NewFromFloat(fx.Price))
			estimate := ratio.Mul(today1g)
			if !estimate.IsZero() {
				res.Status = types.StatusEstimated
				res.Theoretical, _ = estimate.Round(2).Float64()
				res.Premium = premiumPct(price, estimate)
				res.StatusNote = "⚠️ NAV 데이터 누락 - 전일 종가 비율로 추정한 이론가 사용됨."
				return res
			}
		}
	}

	// Neutral substitute: premium forced to 0 against the price itself.
	res.Status = types.StatusUnavailable
	res.Theoretical = etf.Price
	res.Premium = 0
	res.StatusNote = "⚠️ NAV 데이터 누락! 괴리율 계산 불가."
	return res
}

// premiumPct returns (price/value - 1) * 100 rounded to 2 decimals.
func premiumPct(price, value decimal.Decimal) float64 {
	p, _ := price.Div(value).Sub(one).Mul(hundred).Round(2).Float64()
	return p
}
