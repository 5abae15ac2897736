// country_totals.go
package main

import (
	"github.com/pivolan/covid_dashboard/domain/models"
)

// AggregateCountryTotals sums cases and deaths per country over all dates.
// Countries group by exact string equality; normalization happens only at
// filter time.
func AggregateCountryTotals(records []models.RawRecord) map[string]models.CountryTotal {
	totals := map[string]models.CountryTotal{}
	for _, r := range records {
		t := totals[r.Country]
		t.TotalCases += r.Cases
		t.TotalDeaths += r.Deaths
		totals[r.Country] = t
	}
	return totals
}
