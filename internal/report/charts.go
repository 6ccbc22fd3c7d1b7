package report

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

func (g *Generator) generateSignalCharts(outputDir string, hours int) error {
	ssids, err := g.monitoredSSIDs(hours)
	if err != nil {
		return err
	}

	for _, ssid := range ssids {
		points, err := g.db.GetSignalHistory(ssid, hours)
		if err != nil {
			return err
		}
		if len(points) < 2 {
			continue
		}

		timestamps := make([]time.Time, 0, len(points))
		values := make([]float64, 0, len(points))
		for _, p := range points {
			timestamps = append(timestamps, p.Timestamp)
			values = append(values, p.SignalDBM)
		}

		graph := chart.Chart{
			Title: fmt.Sprintf("Signal Strength - %s", ssid),
			TitleStyle: chart.Style{
				FontSize: 16,
			},
			Background: chart.Style{
				Padding: chart.Box{
					Top:    20,
					Left:   20,
					Right:  20,
					Bottom: 20,
				},
			},
			Width:  1200,
			Height: 400,
			XAxis: chart.XAxis{
				Name: "Time",
				NameStyle: chart.Style{
					FontSize: 12,
				},
				Style: chart.Style{
					StrokeColor: drawing.ColorBlack,
					FontSize:    10,
				},
				ValueFormatter: chart.TimeMinuteValueFormatter,
			},
			YAxis: chart.YAxis{
				Name: "Signal (dBm)",
				NameStyle: chart.Style{
					FontSize: 12,
				},
				Style: chart.Style{
					StrokeColor: drawing.ColorBlack,
					FontSize:    10,
				},
				GridMajorStyle: chart.Style{
					StrokeColor: drawing.Color{R: 200, G: 200, B: 200, A: 255},
					StrokeWidth: 1.0,
				},
			},
			Series: []chart.Series{
				chart.TimeSeries{
					Name: ssid,
					Style: chart.Style{
						StrokeColor: chart.GetDefaultColor(0),
						StrokeWidth: 2,
					},
					XValues: timestamps,
					YValues: values,
				},
			},
		}

		// Add moving average
		if len(values) > 10 {
			ts := graph.Series[0].(chart.TimeSeries)
			graph.Series = append(graph.Series, chart.SMASeries{
				Name: "Moving Avg",
				Style: chart.Style{
					StrokeColor:     chart.GetDefaultColor(1),
					StrokeWidth:     2,
					StrokeDashArray: []float64{5, 5},
				},
				InnerSeries: ts,
				Period:      10,
			})
		}

		filename := filepath.Join(outputDir, fmt.Sprintf("signal_%s.png", sanitizeFilename(ssid)))
		file, err := os.Create(filename)
		if err != nil {
			return err
		}

		if err := graph.Render(chart.PNG, file); err != nil {
			file.Close()
			return err
		}
		file.Close()
	}

	return nil
}

func (g *Generator) generateBandChart(outputDir string, hours int) error {
	stats, err := g.db.GetBandStats(hours)
	if err != nil {
		return err
	}
	if len(stats) == 0 {
		return nil
	}

	var values []chart.Value
	for _, s := range stats {
		values = append(values, chart.Value{
			Label: fmt.Sprintf("%s (%d SSIDs)", s.Band, s.UniqueSSIDs),
			Value: float64(s.Observations),
		})
	}

	graph := chart.BarChart{
		Title: "Observations by Band",
		TitleStyle: chart.Style{
			FontSize: 16,
		},
		Background: chart.Style{
			Padding: chart.Box{
				Top:    20,
				Left:   20,
				Right:  20,
				Bottom: 20,
			},
		},
		Width:    800,
		Height:   400,
		Bars:     values,
		BarWidth: 80,
	}

	filename := filepath.Join(outputDir, "bands.png")
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	return graph.Render(chart.PNG, file)
}
