// web_handler.go
package main

import (
	"html/template"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"

	"github.com/pivolan/covid_dashboard/domain/models"
	"github.com/pivolan/covid_dashboard/plot"
)

// Dashboard owns the aggregated dataset. Load replaces the whole snapshot
// at once, handlers only read.
type Dashboard struct {
	logger   *zap.SugaredLogger
	pageSize int

	mu        sync.RWMutex
	rows      []models.ObservationRow
	series    []models.TimeSeriesPoint
	countries []models.CountryOption
}

func NewDashboard(logger *zap.SugaredLogger, pageSize int) *Dashboard {
	return &Dashboard{logger: logger, pageSize: pageSize}
}

// Load runs the aggregation pipeline over freshly fetched records and
// swaps the dashboard's snapshot.
func (d *Dashboard) Load(records []models.RawRecord) {
	rows := MergeRecords(records)
	series := AggregateTimeSeries(records)
	countries := CountryOptions(rows)

	d.mu.Lock()
	d.rows = rows
	d.series = series
	d.countries = countries
	d.mu.Unlock()
}

func (d *Dashboard) snapshot() ([]models.ObservationRow, []models.TimeSeriesPoint, []models.CountryOption) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.rows, d.series, d.countries
}

func (d *Dashboard) Routes() http.Handler {
	r := chi.NewRouter()
	r.Get("/", d.handleIndex)
	r.Get("/chart", d.handleChart)
	r.Get("/chart.png", d.handleChartPNG)
	r.Route("/api", func(r chi.Router) {
		r.Get("/rows", d.handleRows)
		r.Get("/series", d.handleSeries)
		r.Get("/countries", d.handleCountries)
		r.Get("/columns", d.handleColumns)
	})
	return r
}

// parseFilterState decodes the UI state from the query string. Absent or
// malformed params fall back to defaults; state lives only in the URL.
func parseFilterState(q url.Values, defaultPerPage int) FilterState {
	st := DefaultFilterState(defaultPerPage)
	st.SelectedCountry = q.Get("country")
	st.SelectedColumn = q.Get("column")
	st.SortColumn = q.Get("sort")
	if dir := q.Get("dir"); dir == "desc" {
		st.SortDirection = "desc"
	}

	if v := q.Get("from"); v != "" {
		if t, err := time.Parse("2006-01-02", v); err == nil {
			st.StartDate = &t
		}
	}
	if v := q.Get("to"); v != "" {
		if t, err := time.Parse("2006-01-02", v); err == nil {
			st.EndDate = &t
		}
	}
	if v := q.Get("min"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			st.MinValue = &f
		}
	}
	if v := q.Get("max"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			st.MaxValue = &f
		}
	}
	if v, err := strconv.Atoi(q.Get("page")); err == nil && v > 0 {
		st.CurrentPage = v
	}
	if v, err := strconv.Atoi(q.Get("per_page")); err == nil && v > 0 {
		st.ItemsPerPage = v
	}
	return st
}

func (d *Dashboard) writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		d.logger.Errorw("encode response", "err", err)
	}
}

func (d *Dashboard) handleRows(w http.ResponseWriter, r *http.Request) {
	rows, _, _ := d.snapshot()
	st := parseFilterState(r.URL.Query(), d.pageSize)
	d.writeJSON(w, BuildView(rows, st))
}

func (d *Dashboard) handleSeries(w http.ResponseWriter, r *http.Request) {
	_, series, _ := d.snapshot()
	d.writeJSON(w, ChartSeries(series))
}

func (d *Dashboard) handleCountries(w http.ResponseWriter, r *http.Request) {
	_, _, countries := d.snapshot()
	d.writeJSON(w, countries)
}

func (d *Dashboard) handleColumns(w http.ResponseWriter, r *http.Request) {
	d.writeJSON(w, models.FilterColumns)
}

func (d *Dashboard) handleChart(w http.ResponseWriter, r *http.Request) {
	_, series, _ := d.snapshot()
	line := plot.BuildLineChart(ChartSeries(series))
	if err := line.Render(w); err != nil {
		d.logger.Errorw("render chart", "err", err)
	}
}

func (d *Dashboard) handleChartPNG(w http.ResponseWriter, r *http.Request) {
	_, series, _ := d.snapshot()
	sorted := ChartSeries(series)

	times := make([]time.Time, 0, len(sorted))
	cases := make([]float64, 0, len(sorted))
	deaths := make([]float64, 0, len(sorted))
	for _, p := range sorted {
		t, err := parseRecordDate(p.Date)
		if err != nil {
			continue
		}
		times = append(times, t)
		cases = append(cases, float64(p.TotalCases))
		deaths = append(deaths, float64(p.TotalDeaths))
	}

	png, err := plot.DrawSeriesPNG(times, cases, deaths)
	if err != nil {
		http.Error(w, "Error rendering chart: "+err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Write(png)
}

type pageLink struct {
	Num     int
	URL     string
	Current bool
}

type indexData struct {
	Table     template.HTML
	Countries []models.CountryOption
	Columns   []string
	State     FilterState
	TotalRows int
	Pages     []pageLink
	First     *pageLink
	Last      *pageLink
}

func (d *Dashboard) handleIndex(w http.ResponseWriter, r *http.Request) {
	rows, _, countries := d.snapshot()
	st := parseFilterState(r.URL.Query(), d.pageSize)
	view := BuildView(rows, st)

	data := indexData{
		Table:     template.HTML(GenerateRowsTableHTML(view.Rows)),
		Countries: countries,
		Columns:   models.FilterColumns,
		State:     st,
		TotalRows: view.TotalRows,
	}
	for _, p := range view.Window.Pages {
		data.Pages = append(data.Pages, pageLink{
			Num:     p,
			URL:     pageURL(r.URL.Query(), p),
			Current: p == st.CurrentPage,
		})
	}
	if view.Window.ShowFirst {
		data.First = &pageLink{Num: 1, URL: pageURL(r.URL.Query(), 1)}
	}
	if view.Window.ShowLast {
		data.Last = &pageLink{Num: view.TotalPages, URL: pageURL(r.URL.Query(), view.TotalPages)}
	}

	if err := indexTemplate.Execute(w, data); err != nil {
		d.logger.Errorw("render dashboard page", "err", err)
	}
}

func pageURL(q url.Values, page int) string {
	out := url.Values{}
	for k, vs := range q {
		for _, v := range vs {
			out.Add(k, v)
		}
	}
	out.Set("page", strconv.Itoa(page))
	return "?" + out.Encode()
}

var indexTemplate = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html>
<head><title>COVID-19 dashboard</title></head>
<body>
<h1>COVID-19 cases and deaths</h1>
<form method="get" action="/">
  <select name="country">
    <option value="">All countries</option>
    {{range .Countries}}<option value="{{.Value}}"{{if eq .Value $.State.SelectedCountry}} selected{{end}}>{{.Label}}</option>
    {{end}}
  </select>
  <input type="date" name="from" value="{{if .State.StartDate}}{{.State.StartDate.Format "2006-01-02"}}{{end}}">
  <input type="date" name="to" value="{{if .State.EndDate}}{{.State.EndDate.Format "2006-01-02"}}{{end}}">
  <select name="column">
    <option value="">No column filter</option>
    {{range .Columns}}<option value="{{.}}"{{if eq . $.State.SelectedColumn}} selected{{end}}>{{.}}</option>
    {{end}}
  </select>
  <input type="text" name="min" placeholder="min">
  <input type="text" name="max" placeholder="max">
  <select name="sort">
    <option value="">No sort</option>
    <option value="country"{{if eq "country" .State.SortColumn}} selected{{end}}>country</option>
    {{range .Columns}}<option value="{{.}}"{{if eq . $.State.SortColumn}} selected{{end}}>{{.}}</option>
    {{end}}
  </select>
  <select name="dir">
    <option value="asc">asc</option>
    <option value="desc"{{if eq "desc" .State.SortDirection}} selected{{end}}>desc</option>
  </select>
  <button type="submit">Apply</button>
  <a href="/">Reset</a>
</form>

<p>{{.TotalRows}} rows</p>
{{.Table}}

<p>
  {{if .First}}<a href="{{.First.URL}}">1</a> &hellip; {{end}}
  {{range .Pages}}{{if .Current}}<b>{{.Num}}</b>{{else}}<a href="{{.URL}}">{{.Num}}</a>{{end}} {{end}}
  {{if .Last}}&hellip; <a href="{{.Last.URL}}">{{.Last.Num}}</a>{{end}}
</p>

<iframe src="/chart" width="1250" height="650" frameborder="0"></iframe>
<p><a href="/chart.png">Download chart as PNG</a></p>
</body>
</html>
`))
