package types

// Quote holds one instrument snapshot from the market data source.
// PreviousClose, NAV and QuotedAt are independently optional: a zero or
// negative value means the field was missing from the upstream payload.
type Quote struct {
	Symbol        string
	Price         float64
	PreviousClose float64
	NAV           float64
	QuotedAt      int64 // unix seconds, 0 when the source gave no timestamp
}

// HasNAV reports whether the quote carries a usable net asset value.
func (q Quote) HasNAV() bool { return q.NAV > 0 }

// HasPreviousClose reports whether the quote carries a usable previous close.
func (q Quote) HasPreviousClose() bool { return q.PreviousClose > 0 }

// PremiumStatus tags how the premium of a run was obtained.
type PremiumStatus string

const (
	// StatusComputed means the NAV was present and the premium is exact.
	StatusComputed PremiumStatus = "COMPUTED"
	// StatusEstimated means the NAV was missing and the premium was inferred
	// from the previous day's price/value ratio.
	StatusEstimated PremiumStatus = "ESTIMATED"
	// StatusHistorical means estimation failed entirely and the last stored
	// observation is being reported instead.
	StatusHistorical PremiumStatus = "HISTORICAL"
	// StatusUnavailable means estimation failed and no history exists either.
	StatusUnavailable PremiumStatus = "UNAVAILABLE"
)

// PremiumResult is the outcome of one estimation run.
type PremiumResult struct {
	Status      PremiumStatus
	ETFPrice    float64
	Theoretical float64 // NAV, the ratio-inferred estimate, or the neutral substitute
	FXRate      float64
	GoldUSD     float64
	Premium     float64 // percent, 2 decimals; meaningful only for COMPUTED and ESTIMATED
	QuotedAt    int64
	StatusNote  string // user-facing warning line, empty on a clean NAV run
}

// PremiumObservation is one persisted history entry, at most one per
// calendar day. JSON keys match the original history file schema so files
// written by earlier deployments keep loading.
type PremiumObservation struct {
	Date    string  `json:"date"`     // ISO 8601 calendar day, local reporting day
	Premium float64 `json:"premium"`  // percent, 2 decimals
	TimeKST string  `json:"time_kst"` // display timestamp of the quote
}

// ValuationLabel positions today's premium against its 7-day average.
type ValuationLabel string

const (
	ValuationOver    ValuationLabel = "OVER"
	ValuationUnder   ValuationLabel = "UNDER"
	ValuationUnknown ValuationLabel = "UNKNOWN"
)

// TrendLabel describes the day-over-day direction.
type TrendLabel string

const (
	TrendUp         TrendLabel = "UP"
	TrendDown       TrendLabel = "DOWN"
	TrendHistorical TrendLabel = "HISTORICAL" // stale value re-reported, no direction
	TrendUnknown    TrendLabel = "UNKNOWN"
)

// TrendSummary is the analyzer output for one run.
type TrendSummary struct {
	Change    float64 // current premium minus the most recent prior day's
	Avg7      float64 // mean premium over the last 7 stored entries
	Valuation ValuationLabel
	Trend     TrendLabel
}
