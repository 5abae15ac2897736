package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pivolan/covid_dashboard/domain/models"
)

func TestAggregateDaily(t *testing.T) {
	records := []models.RawRecord{
		{Country: "Latvia", DateRep: "01/04/2020", Cases: 10, Deaths: 1},
		{Country: "Estonia", DateRep: "01/04/2020", Cases: 20, Deaths: 2},
		{Country: "Latvia", DateRep: "02/04/2020", Cases: 7, Deaths: 0},
	}

	stats := AggregateDaily(records)
	require.Len(t, stats, 2)

	assert.Equal(t, models.DailyStat{
		AverageCases:  "15.0000",
		AverageDeaths: "1.5000",
		MaxCases:      "20.0000",
		MaxDeaths:     "2.0000",
	}, stats["01/04/2020"])

	assert.Equal(t, models.DailyStat{
		AverageCases:  "7.0000",
		AverageDeaths: "0.0000",
		MaxCases:      "7.0000",
		MaxDeaths:     "0.0000",
	}, stats["02/04/2020"])
}

func TestAggregateDailyGroupsByRawDateString(t *testing.T) {
	// date text must be byte-identical to co-group
	records := []models.RawRecord{
		{Country: "A", DateRep: "05/03/2020", Cases: 10},
		{Country: "B", DateRep: "5/3/2020", Cases: 20},
	}

	stats := AggregateDaily(records)
	require.Len(t, stats, 2)
	assert.Equal(t, "10.0000", stats["05/03/2020"].AverageCases)
	assert.Equal(t, "20.0000", stats["5/3/2020"].AverageCases)
}

func TestAggregateDailyEmpty(t *testing.T) {
	assert.Empty(t, AggregateDaily(nil))
}
