package stats

import (
	"bytes"
	"fmt"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// ChartTopN is the number of games drawn in the votes chart.
const ChartTopN = 10

var (
	chartBackground = drawing.ColorFromHex("1f2430")
	chartBar        = drawing.ColorFromHex("f2b134")
	chartText       = drawing.ColorFromHex("e6e6e6")
)

// RenderVotesChart draws the best rated games of the report as a PNG bar chart.
func RenderVotesChart(report Report) ([]byte, error) {
	if len(report.Votes) == 0 {
		return renderNoData("No ratings yet")
	}

	top := report.Votes[:min(ChartTopN, len(report.Votes))]
	bars := make([]chart.Value, len(top))
	for i, v := range top {
		bars[i] = chart.Value{
			Label: truncate(v.Name, 14),
			Value: v.AverageStars,
			Style: chart.Style{FillColor: chartBar, StrokeColor: chartBar},
		}
	}

	graph := chart.BarChart{
		Title:      "Top rated games",
		TitleStyle: chart.Style{FontColor: chartText},
		Width:      1000,
		Height:     480,
		BarWidth:   60,
		Background: chart.Style{
			FillColor: chartBackground,
			Padding:   chart.Box{Top: 40, Left: 20, Right: 20, Bottom: 20},
		},
		Canvas: chart.Style{FillColor: chartBackground},
		XAxis:  chart.Style{FontColor: chartText},
		YAxis: chart.YAxis{
			Style: chart.Style{FontColor: chartText},
			Range: &chart.ContinuousRange{Min: 0, Max: 5},
		},
		Bars: bars,
	}

	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return nil, fmt.Errorf("render votes chart: %w", err)
	}
	return buffer.Bytes(), nil
}

func renderNoData(msg string) ([]byte, error) {
	graph := chart.Chart{
		Width:      400,
		Height:     200,
		Background: chart.Style{FillColor: chartBackground},
		Canvas:     chart.Style{FillColor: chartBackground},
		Elements: []chart.Renderable{
			func(r chart.Renderer, cb chart.Box, _ chart.Style) {
				r.SetFontColor(chartText)
				r.SetFontSize(12.0)
				tb := r.MeasureText(msg)
				x := (cb.Width() - tb.Width()) / 2
				y := (cb.Height() + tb.Height()) / 2
				r.Text(msg, x, y)
			},
		},
	}
	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return nil, fmt.Errorf("render placeholder chart: %w", err)
	}
	return buffer.Bytes(), nil
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
