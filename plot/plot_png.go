package plot

import (
	"bytes"
	"fmt"
	"time"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// DrawSeriesPNG renders the global cases/deaths series as a PNG for
// export. go-chart needs at least two points to draw a line.
func DrawSeriesPNG(times []time.Time, cases []float64, deaths []float64) ([]byte, error) {
	if len(times) < 2 || len(times) != len(cases) || len(times) != len(deaths) {
		return nil, fmt.Errorf("not enough points for time series chart: %d", len(times))
	}

	graph := chart.Chart{
		Title: "COVID-19 global totals",
		Background: chart.Style{
			Padding: chart.Box{
				Top:    40,
				Left:   20,
				Right:  20,
				Bottom: 20,
			},
			FillColor: drawing.ColorWhite,
		},
		Width:  2048,
		Height: 1024,
		XAxis: chart.XAxis{
			Name: "Date",
			ValueFormatter: func(v interface{}) string {
				if vf, isFloat := v.(float64); isFloat {
					return time.Unix(0, int64(vf)).Format("2006-01-02")
				}
				return ""
			},
		},
		YAxis: chart.YAxis{
			Name: "Count",
			ValueFormatter: func(v interface{}) string {
				if vf, isFloat := v.(float64); isFloat {
					return fmt.Sprintf("%.0f", vf)
				}
				return ""
			},
		},
		Series: []chart.Series{
			chart.TimeSeries{
				Name:    "Total cases",
				XValues: times,
				YValues: cases,
				Style: chart.Style{
					StrokeColor: drawing.ColorBlue,
					StrokeWidth: 2,
				},
			},
			chart.TimeSeries{
				Name:    "Total deaths",
				XValues: times,
				YValues: deaths,
				Style: chart.Style{
					StrokeColor: drawing.ColorRed,
					StrokeWidth: 2,
				},
			},
		},
	}

	// Создаем буфер для записи изображения
	buffer := bytes.NewBuffer([]byte{})
	graph.Background.StrokeWidth = 1
	graph.Background.StrokeColor = drawing.ColorFromHex("efefef")

	// Отрисовываем график в формате PNG
	err := graph.Render(chart.PNG, buffer)
	if err != nil {
		return nil, fmt.Errorf("error rendering chart: %v", err)
	}

	return buffer.Bytes(), nil
}
