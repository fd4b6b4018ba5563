package chart

import (
	"bytes"

	gochart "github.com/wcharczuk/go-chart/v2"

	"gold-premium-bot/internal/history"
	"gold-premium-bot/internal/types"
)

// Renderer draws the 7-day premium trend as a PNG line chart.
type Renderer struct {
	width  int
	height int
}

func NewRenderer(width, height int) *Renderer {
	return &Renderer{width: width, height: height}
}

// Render returns the chart image for the last 7 observations, or (nil, nil)
// when fewer than 2 points exist and a line cannot be drawn.
func (r *Renderer) Render(hist []types.PremiumObservation) ([]byte, error) {
	hist = history.LastN(hist, 7)
	if len(hist) < 2 {
		return nil, nil
	}

	xs := make([]float64, len(hist))
	ys := make([]float64, len(hist))
	ticks := make([]gochart.Tick, len(hist))
	for i, o := range hist {
		xs[i] = float64(i)
		ys[i] = o.Premium
		ticks[i] = gochart.Tick{Value: float64(i), Label: o.Date}
	}

	graph := gochart.Chart{
		Title:  "ETF Premium 7-Day Trend (%)",
		Width:  r.width,
		Height: r.height,
		XAxis: gochart.XAxis{
			Ticks: ticks,
		},
		Series: []gochart.Series{
			gochart.ContinuousSeries{
				XValues: xs,
				YValues: ys,
				Style: gochart.Style{
					StrokeWidth: 2,
					DotWidth:    3,
				},
			},
		},
	}

	var buf bytes.Buffer
	if err := graph.Render(gochart.PNG, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
