// rate_calculator.go
package main

import (
	"math"
	"strconv"

	"github.com/pivolan/covid_dashboard/domain/models"
)

// Rate computes the per-1000-population rate of one record. forDeaths
// selects the deaths count, otherwise cases are used.
//
// Edge cases degrade instead of failing: a missing record, a zero count or
// a null population yield {0, "0"}; a zero population (non-finite division)
// yields the historical placeholder pair {0.0001, "0"}; a finite rate below
// 0.0001 displays as "<0.0001".
func Rate(rec *models.RawRecord, forDeaths bool) models.RateResult {
	if rec == nil || rec.PopData2019 == nil {
		return models.RateResult{Value: 0, Display: "0"}
	}
	count := rec.Cases
	if forDeaths {
		count = rec.Deaths
	}
	if count == 0 {
		return models.RateResult{Value: 0, Display: "0"}
	}

	rate := float64(count) / (*rec.PopData2019 / 1000)
	if math.IsInf(rate, 0) || math.IsNaN(rate) {
		return models.RateResult{Value: 0.0001, Display: "0"}
	}
	if rate < 0.0001 {
		return models.RateResult{Value: rate, Display: "<0.0001"}
	}
	return models.RateResult{Value: rate, Display: formatFixed(rate, 4)}
}

// formatFixed округляет число до digits знаков после запятой (half-up)
func formatFixed(v float64, digits int) string {
	pow := math.Pow(10, float64(digits))
	var r float64
	if v < 0 {
		r = math.Ceil(v*pow-0.5) / pow
	} else {
		r = math.Floor(v*pow+0.5) / pow
	}
	return strconv.FormatFloat(r, 'f', digits, 64)
}
