// view_model.go
package main

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/mozillazg/go-unidecode"
	"github.com/pivolan/go_utils"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/pivolan/covid_dashboard/domain/models"
)

const maxPageButtons = 5

// FilterState is the transient UI state of one dashboard request. The
// rendering layer owns it; the pipeline only reads it.
type FilterState struct {
	SelectedCountry string
	StartDate       *time.Time
	EndDate         *time.Time
	SelectedColumn  string
	MinValue        *float64
	MaxValue        *float64
	SortColumn      string
	SortDirection   string // "asc" or "desc"
	CurrentPage     int
	ItemsPerPage    int
}

func DefaultFilterState(pageSize int) FilterState {
	if pageSize < 1 {
		pageSize = 20
	}
	return FilterState{
		SortDirection: "asc",
		CurrentPage:   1,
		ItemsPerPage:  pageSize,
	}
}

// PageWindow is the contiguous run of page buttons around the current page.
// ShowFirst/ShowLast signal the jump control plus ellipsis on that side.
type PageWindow struct {
	Pages     []int `json:"pages"`
	ShowFirst bool  `json:"showFirst"`
	ShowLast  bool  `json:"showLast"`
}

// TableView is everything the table widget needs for one render.
type TableView struct {
	Rows       []models.ObservationRow `json:"rows"`
	TotalRows  int                     `json:"totalRows"`
	TotalPages int                     `json:"totalPages"`
	Window     PageWindow              `json:"window"`
}

// BuildView runs filter, sort and paginate over the merged rows for one
// request. Pure: rows and state are never mutated.
func BuildView(rows []models.ObservationRow, st FilterState) TableView {
	filtered := ApplyFilters(rows, st)
	sorted := SortRows(filtered, st.SortColumn, st.SortDirection)
	totalPages := TotalPages(len(filtered), st.ItemsPerPage)
	return TableView{
		Rows:       Paginate(sorted, st.CurrentPage, st.ItemsPerPage),
		TotalRows:  len(filtered),
		TotalPages: totalPages,
		Window:     PageNumbers(st.CurrentPage, totalPages, maxPageButtons),
	}
}

// ApplyFilters keeps the rows passing every active clause (AND semantics).
func ApplyFilters(rows []models.ObservationRow, st FilterState) []models.ObservationRow {
	out := make([]models.ObservationRow, 0, len(rows))
	for _, row := range rows {
		if rowPasses(row, st) {
			out = append(out, row)
		}
	}
	return out
}

func rowPasses(row models.ObservationRow, st FilterState) bool {
	// country clause
	if st.SelectedCountry != "" &&
		normalizeCountry(row.Country) != normalizeCountry(st.SelectedCountry) {
		return false
	}

	// date-range clause: a row whose date does not parse never passes,
	// whatever the bounds
	date, err := parseRecordDate(row.Date)
	if err != nil {
		return false
	}
	if st.StartDate != nil && date.Before(*st.StartDate) {
		return false
	}
	if st.EndDate != nil && date.After(*st.EndDate) {
		return false
	}

	// column-range clause
	if st.SelectedColumn != "" {
		raw, defined := cellText(row, st.SelectedColumn)
		if !defined {
			return false
		}
		if st.MinValue != nil || st.MaxValue != nil {
			v, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return false
			}
			if st.MinValue != nil && v < *st.MinValue {
				return false
			}
			if st.MaxValue != nil && v > *st.MaxValue {
				return false
			}
		}
	}
	return true
}

// normalizeCountry folds a country name for comparison: trimmed,
// transliterated to ASCII and lowercased. Idempotent, so option values
// produced by CountryOptions fold to themselves.
func normalizeCountry(s string) string {
	return strings.ToLower(unidecode.Unidecode(strings.TrimSpace(s)))
}

// parseRecordDate parses the feed's day/month/year date. Strict: values
// like 31/02/2020 are rejected instead of normalized into March.
func parseRecordDate(s string) (time.Time, error) {
	parts := strings.Split(strings.TrimSpace(s), "/")
	if len(parts) != 3 {
		return time.Time{}, fmt.Errorf("bad record date %q", s)
	}
	day, err1 := strconv.Atoi(parts[0])
	month, err2 := strconv.Atoi(parts[1])
	year, err3 := strconv.Atoi(parts[2])
	if err1 != nil || err2 != nil || err3 != nil {
		return time.Time{}, fmt.Errorf("bad record date %q", s)
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Day() != day || int(t.Month()) != month || t.Year() != year {
		return time.Time{}, fmt.Errorf("bad record date %q", s)
	}
	return t, nil
}

// SortRows returns a stably sorted copy. Country sorts with an English
// collator; numeric columns compare as numbers and fall back to plain
// string comparison of the raw cell text when either side fails to parse
// (e.g. "<0.0001"). An empty column leaves the order untouched.
func SortRows(rows []models.ObservationRow, column, direction string) []models.ObservationRow {
	out := make([]models.ObservationRow, len(rows))
	copy(out, rows)
	if column == "" {
		return out
	}

	var collator *collate.Collator
	if column == models.ColumnCountry {
		collator = collate.New(language.English)
	}
	desc := direction == "desc"

	sort.SliceStable(out, func(i, j int) bool {
		c := compareRows(out[i], out[j], column, collator)
		if desc {
			c = -c
		}
		return c < 0
	})
	return out
}

func compareRows(a, b models.ObservationRow, column string, collator *collate.Collator) int {
	if column == models.ColumnCountry {
		return collator.CompareString(a.Country, b.Country)
	}

	ra, _ := cellText(a, column)
	rb, _ := cellText(b, column)
	if go_utils.InArray(column, models.FilterColumns) {
		va, errA := strconv.ParseFloat(ra, 64)
		vb, errB := strconv.ParseFloat(rb, 64)
		if errA == nil && errB == nil {
			switch {
			case va < vb:
				return -1
			case va > vb:
				return 1
			default:
				return 0
			}
		}
		// malformed cell on either side: compare the raw text instead
	}
	return strings.Compare(ra, rb)
}

// cellText returns the raw cell text of a column, mirroring what the table
// displays. defined is false for identifiers outside the fixed list.
func cellText(row models.ObservationRow, column string) (string, bool) {
	switch column {
	case models.ColumnCountry:
		return row.Country, true
	case models.ColumnCases:
		return strconv.Itoa(row.Cases), true
	case models.ColumnDeaths:
		return strconv.Itoa(row.Deaths), true
	case models.ColumnTotalCases:
		return strconv.Itoa(row.TotalCases), true
	case models.ColumnTotalDeaths:
		return strconv.Itoa(row.TotalDeaths), true
	case models.ColumnCasesPer1000:
		return row.CasesPer1000, true
	case models.ColumnDeathsPer1000:
		return row.DeathsPer1000, true
	case models.ColumnAverageCases:
		return row.AverageCases, true
	case models.ColumnAverageDeaths:
		return row.AverageDeaths, true
	case models.ColumnMaxCases:
		return row.MaxCases, true
	case models.ColumnMaxDeaths:
		return row.MaxDeaths, true
	}
	return "", false
}

// Paginate returns the 1-indexed page slice. Pages past the end are empty,
// never an error.
func Paginate(rows []models.ObservationRow, page, perPage int) []models.ObservationRow {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 1
	}
	start := (page - 1) * perPage
	if start >= len(rows) {
		return []models.ObservationRow{}
	}
	end := start + perPage
	if end > len(rows) {
		end = len(rows)
	}
	return rows[start:end]
}

func TotalPages(rowCount, perPage int) int {
	if perPage < 1 {
		perPage = 1
	}
	return (rowCount + perPage - 1) / perPage
}

// PageNumbers builds the window of up to maxButtons contiguous page numbers
// centered on the current page and clamped to [1, totalPages].
func PageNumbers(current, totalPages, maxButtons int) PageWindow {
	if totalPages < 1 || maxButtons < 1 {
		return PageWindow{Pages: []int{}}
	}
	if current < 1 {
		current = 1
	}
	if current > totalPages {
		current = totalPages
	}

	start := current - maxButtons/2
	if start < 1 {
		start = 1
	}
	end := start + maxButtons - 1
	if end > totalPages {
		end = totalPages
		start = end - maxButtons + 1
		if start < 1 {
			start = 1
		}
	}

	pages := make([]int, 0, end-start+1)
	for p := start; p <= end; p++ {
		pages = append(pages, p)
	}
	return PageWindow{
		Pages:     pages,
		ShowFirst: start > 1,
		ShowLast:  end < totalPages,
	}
}

// CountryOptions deduplicates countries across all rows in first-seen
// order. The option value is the folded name, the label the raw one.
func CountryOptions(rows []models.ObservationRow) []models.CountryOption {
	seen := map[string]bool{}
	options := []models.CountryOption{}
	for _, row := range rows {
		value := normalizeCountry(row.Country)
		if seen[value] {
			continue
		}
		seen[value] = true
		options = append(options, models.CountryOption{Value: value, Label: row.Country})
	}
	return options
}

// ChartSeries returns a date-sorted copy of the aggregator's points; the
// aggregator itself emits first-seen order. Unparseable dates sort first.
func ChartSeries(points []models.TimeSeriesPoint) []models.TimeSeriesPoint {
	out := make([]models.TimeSeriesPoint, len(points))
	copy(out, points)
	sort.SliceStable(out, func(i, j int) bool {
		di, _ := parseRecordDate(out[i].Date)
		dj, _ := parseRecordDate(out[j].Date)
		return di.Before(dj)
	})
	return out
}
