// time_series.go
package main

import (
	"github.com/pivolan/covid_dashboard/domain/models"
)

// AggregateTimeSeries produces one global point per date, summing cases and
// deaths across all countries. Points come out in first-seen order of each
// date in the record stream; ChartSeries re-sorts before charting.
func AggregateTimeSeries(records []models.RawRecord) []models.TimeSeriesPoint {
	index := map[string]int{}
	points := []models.TimeSeriesPoint{}
	for _, r := range records {
		i, ok := index[r.DateRep]
		if !ok {
			i = len(points)
			index[r.DateRep] = i
			points = append(points, models.TimeSeriesPoint{Date: r.DateRep})
		}
		points[i].TotalCases += r.Cases
		points[i].TotalDeaths += r.Deaths
	}
	return points
}
