package main

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/pivolan/covid_dashboard/domain/models"
)

func TestParseFilterState(t *testing.T) {
	q := url.Values{}
	q.Set("country", "latvia")
	q.Set("column", models.ColumnCases)
	q.Set("sort", models.ColumnDeaths)
	q.Set("dir", "desc")
	q.Set("from", "2020-04-01")
	q.Set("to", "2020-04-02")
	q.Set("min", "1.5")
	q.Set("max", "100")
	q.Set("page", "3")
	q.Set("per_page", "50")

	st := parseFilterState(q, 20)
	assert.Equal(t, "latvia", st.SelectedCountry)
	assert.Equal(t, models.ColumnCases, st.SelectedColumn)
	assert.Equal(t, models.ColumnDeaths, st.SortColumn)
	assert.Equal(t, "desc", st.SortDirection)
	require.NotNil(t, st.StartDate)
	assert.Equal(t, time.Date(2020, 4, 1, 0, 0, 0, 0, time.UTC), *st.StartDate)
	require.NotNil(t, st.MinValue)
	assert.Equal(t, 1.5, *st.MinValue)
	assert.Equal(t, 3, st.CurrentPage)
	assert.Equal(t, 50, st.ItemsPerPage)
}

func TestParseFilterStateDefaults(t *testing.T) {
	q := url.Values{}
	q.Set("from", "01/04/2020")
	q.Set("min", "abc")
	q.Set("page", "-1")
	q.Set("dir", "sideways")

	st := parseFilterState(q, 20)
	assert.Nil(t, st.StartDate)
	assert.Nil(t, st.MinValue)
	assert.Equal(t, 1, st.CurrentPage)
	assert.Equal(t, 20, st.ItemsPerPage)
	assert.Equal(t, "asc", st.SortDirection)
}

func dashboardFixture() *Dashboard {
	d := NewDashboard(zap.NewNop().Sugar(), 20)
	d.Load(mergerFixture())
	return d
}

func TestDashboardRows(t *testing.T) {
	srv := httptest.NewServer(dashboardFixture().Routes())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/rows?country=latvia&sort=cases&dir=desc")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var view TableView
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&view))
	assert.Equal(t, 2, view.TotalRows)
	require.Len(t, view.Rows, 2)
	assert.Equal(t, 20, view.Rows[0].Cases)
	assert.Equal(t, "Latvia", view.Rows[0].Country)
}

func TestDashboardSeries(t *testing.T) {
	srv := httptest.NewServer(dashboardFixture().Routes())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/series")
	require.NoError(t, err)
	defer resp.Body.Close()

	var points []models.TimeSeriesPoint
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&points))
	require.Len(t, points, 2)
	assert.Equal(t, models.TimeSeriesPoint{Date: "01/04/2020", TotalCases: 40, TotalDeaths: 3}, points[0])
}

func TestDashboardCountries(t *testing.T) {
	srv := httptest.NewServer(dashboardFixture().Routes())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/countries")
	require.NoError(t, err)
	defer resp.Body.Close()

	var options []models.CountryOption
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&options))
	assert.Equal(t, []models.CountryOption{
		{Value: "latvia", Label: "Latvia"},
		{Value: "estonia", Label: "Estonia"},
	}, options)
}

func TestDashboardColumns(t *testing.T) {
	srv := httptest.NewServer(dashboardFixture().Routes())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/columns")
	require.NoError(t, err)
	defer resp.Body.Close()

	var columns []string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&columns))
	assert.Equal(t, models.FilterColumns, columns)
}

func TestDashboardIndexPage(t *testing.T) {
	srv := httptest.NewServer(dashboardFixture().Routes())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/?country=latvia")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	page := string(body)
	assert.True(t, strings.Contains(page, "<table"))
	assert.True(t, strings.Contains(page, "Latvia"))
	assert.False(t, strings.Contains(page, "Estonia</td>"))
	assert.True(t, strings.Contains(page, "2 rows"))
}

func TestDashboardEmptySnapshot(t *testing.T) {
	d := NewDashboard(zap.NewNop().Sugar(), 20)
	srv := httptest.NewServer(d.Routes())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/rows")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var view TableView
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&view))
	assert.Equal(t, 0, view.TotalRows)
}

func TestPageURL(t *testing.T) {
	q := url.Values{}
	q.Set("country", "latvia")
	q.Set("page", "1")

	assert.Equal(t, "?country=latvia&page=3", pageURL(q, 3))
	// исходные query параметры не меняем
	assert.Equal(t, "1", q.Get("page"))
}
