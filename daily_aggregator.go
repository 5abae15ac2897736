// daily_aggregator.go
package main

import (
	"github.com/pivolan/covid_dashboard/domain/models"
)

// AggregateDaily groups records by their raw date string and computes the
// cross-country average and maximum of cases and deaths per date. Grouping
// compares the text as delivered, so "05/03/2020" and "5/3/2020" land in
// different groups.
func AggregateDaily(records []models.RawRecord) map[string]models.DailyStat {
	type acc struct {
		sumCases  int
		sumDeaths int
		maxCases  int
		maxDeaths int
		n         int
	}

	groups := map[string]*acc{}
	for _, r := range records {
		g, ok := groups[r.DateRep]
		if !ok {
			g = &acc{maxCases: r.Cases, maxDeaths: r.Deaths}
			groups[r.DateRep] = g
		}
		g.sumCases += r.Cases
		g.sumDeaths += r.Deaths
		if r.Cases > g.maxCases {
			g.maxCases = r.Cases
		}
		if r.Deaths > g.maxDeaths {
			g.maxDeaths = r.Deaths
		}
		g.n++
	}

	result := make(map[string]models.DailyStat, len(groups))
	for date, g := range groups {
		n := float64(g.n)
		result[date] = models.DailyStat{
			AverageCases:  formatFixed(float64(g.sumCases)/n, 4),
			AverageDeaths: formatFixed(float64(g.sumDeaths)/n, 4),
			MaxCases:      formatFixed(float64(g.maxCases), 4),
			MaxDeaths:     formatFixed(float64(g.maxDeaths), 4),
		}
	}
	return result
}
