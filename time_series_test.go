package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pivolan/covid_dashboard/domain/models"
)

func TestAggregateTimeSeries(t *testing.T) {
	records := []models.RawRecord{
		{Country: "Latvia", DateRep: "02/04/2020", Cases: 5, Deaths: 1},
		{Country: "Estonia", DateRep: "01/04/2020", Cases: 3, Deaths: 0},
		{Country: "Estonia", DateRep: "02/04/2020", Cases: 7, Deaths: 2},
	}

	points := AggregateTimeSeries(records)
	require.Len(t, points, 2)

	// first-seen order, not date order
	assert.Equal(t, models.TimeSeriesPoint{Date: "02/04/2020", TotalCases: 12, TotalDeaths: 3}, points[0])
	assert.Equal(t, models.TimeSeriesPoint{Date: "01/04/2020", TotalCases: 3, TotalDeaths: 0}, points[1])
}

func TestAggregateTimeSeriesEmpty(t *testing.T) {
	assert.Empty(t, AggregateTimeSeries(nil))
}
