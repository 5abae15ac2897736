// table_formatter.go
package main

import (
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/pivolan/covid_dashboard/domain/models"
)

func observationTable(rows []models.ObservationRow) table.Writer {
	t := table.NewWriter()
	t.AppendHeader(table.Row{
		"Country", "Date", "Cases", "Deaths",
		"CasesPer1000", "DeathsPer1000",
		"TotalCases", "TotalDeaths",
		"AverageCases", "AverageDeaths",
		"MaxCases", "MaxDeaths",
	})
	for _, r := range rows {
		t.AppendRows([]table.Row{
			{r.Country, r.Date, r.Cases, r.Deaths,
				r.CasesPer1000, r.DeathsPer1000,
				r.TotalCases, r.TotalDeaths,
				r.AverageCases, r.AverageDeaths,
				r.MaxCases, r.MaxDeaths},
		})
	}
	t.SetStyle(table.StyleDefault)
	return t
}

// GenerateRowsTable renders the observation rows as an ASCII table.
func GenerateRowsTable(rows []models.ObservationRow) string {
	return observationTable(rows).Render()
}

// GenerateRowsTableHTML renders the same table for the dashboard page.
func GenerateRowsTableHTML(rows []models.ObservationRow) string {
	return observationTable(rows).RenderHTML()
}
