package interfaces

import "gold-premium-bot/internal/types"

// ChartRenderer turns a premium history into a PNG image. A nil image with a
// nil error means the chart was skipped (not enough points).
type ChartRenderer interface {
	Render(history []types.PremiumObservation) ([]byte, error)
}
