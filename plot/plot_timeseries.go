package plot

import (
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/pivolan/covid_dashboard/domain/models"
)

// BuildLineChart builds the dashboard's time-series chart: one line for
// global cases and one for deaths per date. Callers pass points already
// sorted by date; the aggregator's own order is first-seen.
func BuildLineChart(points []models.TimeSeriesPoint) *charts.Line {
	dates := make([]string, len(points))
	cases := make([]opts.LineData, len(points))
	deaths := make([]opts.LineData, len(points))
	for i, p := range points {
		dates[i] = p.Date
		cases[i] = opts.LineData{Value: p.TotalCases}
		deaths[i] = opts.LineData{Value: p.TotalDeaths}
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "COVID-19 global totals per day",
			Subtitle: "all countries summed per reporting date",
		}),
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "COVID-19 time series",
			Width:     "1200px",
			Height:    "600px",
		}),
	)
	line.SetXAxis(dates).
		AddSeries("Total cases", cases).
		AddSeries("Total deaths", deaths)
	return line
}
