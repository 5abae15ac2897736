package models

// RawRecord is one country/day observation as delivered by the dataset
// endpoint. PopData2019 is nullable in the source feed.
type RawRecord struct {
	Country     string   `json:"country"`
	DateRep     string   `json:"dateRep"` // day/month/year, slash-separated
	Cases       int      `json:"cases"`
	Deaths      int      `json:"deaths"`
	PopData2019 *float64 `json:"popData2019"`
}

// DatasetEnvelope is the shape of the dataset payload.
type DatasetEnvelope struct {
	Records []RawRecord `json:"records"`
}

// RateResult is the per-1000-population rate of one record. Value and
// Display can disagree: a zero population yields {0.0001, "0"}, matching
// the dashboard this feed was built for.
type RateResult struct {
	Value   float64
	Display string
}

// CountryTotal holds cumulative sums over all dates for one country.
type CountryTotal struct {
	TotalCases  int `json:"totalCases"`
	TotalDeaths int `json:"totalDeaths"`
}

// DailyStat holds the cross-country average and maximum for one date,
// pre-formatted to 4 fractional digits.
type DailyStat struct {
	AverageCases  string `json:"averageCases"`
	AverageDeaths string `json:"averageDeaths"`
	MaxCases      string `json:"maxCases"`
	MaxDeaths     string `json:"maxDeaths"`
}

// TimeSeriesPoint is one date's global (all-country) total. Feeds the
// chart only, never the table.
type TimeSeriesPoint struct {
	Date        string `json:"date"`
	TotalCases  int    `json:"totalCases"`
	TotalDeaths int    `json:"totalDeaths"`
}

// ObservationRow is the unit of display, one per RawRecord. The per-1000
// fields carry 5 fractional digits, the daily aggregates 4.
type ObservationRow struct {
	Country       string `json:"country"`
	Date          string `json:"date"`
	Cases         int    `json:"cases"`
	Deaths        int    `json:"deaths"`
	CasesPer1000  string `json:"casesPer1000"`
	DeathsPer1000 string `json:"deathsPer1000"`
	TotalCases    int    `json:"totalCases"`
	TotalDeaths   int    `json:"totalDeaths"`
	AverageCases  string `json:"averageCases"`
	AverageDeaths string `json:"averageDeaths"`
	MaxCases      string `json:"maxCases"`
	MaxDeaths     string `json:"maxDeaths"`
}

// CountryOption is a value/label pair for the country select widget.
type CountryOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Column identifiers accepted by the sort and column-filter controls.
const (
	ColumnCases         = "cases"
	ColumnDeaths        = "deaths"
	ColumnTotalCases    = "totalCases"
	ColumnTotalDeaths   = "totalDeaths"
	ColumnCasesPer1000  = "casesPer1000"
	ColumnDeathsPer1000 = "deathsPer1000"
	ColumnAverageCases  = "averageCases"
	ColumnAverageDeaths = "averageDeaths"
	ColumnMaxCases      = "maxCases"
	ColumnMaxDeaths     = "maxDeaths"
	ColumnCountry       = "country"
)

// FilterColumns is the fixed list exposed to the UI selects.
var FilterColumns = []string{
	ColumnCases,
	ColumnDeaths,
	ColumnTotalCases,
	ColumnTotalDeaths,
	ColumnCasesPer1000,
	ColumnDeathsPer1000,
	ColumnAverageCases,
	ColumnAverageDeaths,
	ColumnMaxCases,
	ColumnMaxDeaths,
}
