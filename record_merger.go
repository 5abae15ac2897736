// record_merger.go
package main

import (
	"github.com/pivolan/covid_dashboard/domain/models"
)

// MergeRecords builds the per-country and per-date lookup tables, then maps
// every record into its denormalized table row in one functional pass. The
// per-1000 columns carry 5 fractional digits here while the calculator's
// display convention is 4; both precisions are intentional.
func MergeRecords(records []models.RawRecord) []models.ObservationRow {
	totals := AggregateCountryTotals(records)
	daily := AggregateDaily(records)

	rows := make([]models.ObservationRow, 0, len(records))
	for i := range records {
		r := &records[i]
		t := totals[r.Country]
		d := daily[r.DateRep]
		rows = append(rows, models.ObservationRow{
			Country:       r.Country,
			Date:          r.DateRep,
			Cases:         r.Cases,
			Deaths:        r.Deaths,
			CasesPer1000:  formatFixed(Rate(r, false).Value, 5),
			DeathsPer1000: formatFixed(Rate(r, true).Value, 5),
			TotalCases:    t.TotalCases,
			TotalDeaths:   t.TotalDeaths,
			AverageCases:  d.AverageCases,
			AverageDeaths: d.AverageDeaths,
			MaxCases:      d.MaxCases,
			MaxDeaths:     d.MaxDeaths,
		})
	}
	return rows
}
