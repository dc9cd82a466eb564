package report

import (
	"bytes"

	"github.com/wcharczuk/go-chart/v2"
)

// PopularityChart produces a PNG bar chart of the most popular remaining
// teams.
func PopularityChart(data *ReportData) ([]byte, error) {
	if len(data.MostPopular) == 0 {
		return renderNoDataPlaceholder("No remaining teams to chart")
	}

	bars := make([]chart.Value, 0, len(data.MostPopular))
	for _, tc := range data.MostPopular {
		bars = append(bars, chart.Value{
			Label: tc.Team,
			Value: float64(tc.Count),
		})
	}

	graph := chart.BarChart{
		Title:  "Most Popular Remaining Teams",
		Width:  800,
		Height: 400,
		Background: chart.Style{
			Padding: chart.Box{Top: 40},
		},
		BarWidth: 50,
		Bars:     bars,
	}

	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}

// StandingsChart produces a PNG bar chart of per-user points.
func StandingsChart(data *ReportData) ([]byte, error) {
	if len(data.Scores) == 0 {
		return renderNoDataPlaceholder("No picks recorded yet")
	}

	bars := make([]chart.Value, 0, len(data.Scores))
	for _, s := range data.Scores {
		bars = append(bars, chart.Value{
			Label: s.FullName,
			Value: float64(s.Points),
		})
	}

	graph := chart.BarChart{
		Title:  "Standings",
		Width:  800,
		Height: 400,
		Background: chart.Style{
			Padding: chart.Box{Top: 40},
		},
		BarWidth: 50,
		Bars:     bars,
	}

	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}

func renderNoDataPlaceholder(msg string) ([]byte, error) {
	const (
		width  = 400
		height = 200
	)

	graph := chart.Chart{
		Width:  width,
		Height: height,
		Elements: []chart.Renderable{
			func(r chart.Renderer, cb chart.Box, chartDefaults chart.Style) {
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
		return nil, err
	}
	return buffer.Bytes(), nil
}
