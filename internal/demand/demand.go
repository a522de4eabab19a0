// Package demand derives a shop-wide stock recommendation from a trailing
// window of sale records. The per-product grouping of the input rows is
// summed away: the result is one aggregate estimate for the whole shop, not a
// per-product forecast.
package demand

import (
	"math"
	"time"

	"github.com/estolo/spaza-backend/internal/models"
)

// WindowDays is the length of the trailing sales window, in calendar days.
const WindowDays = 7

// PredictionPeriodDays is the horizon the recommendation covers. Constant.
const PredictionPeriodDays = 5

const (
	ConfidenceLow    = "low"
	ConfidenceMedium = "medium"
	ConfidenceHigh   = "high"
)

type Prediction struct {
	RecommendedStock  int     `json:"recommended_stock"`
	Confidence        string  `json:"confidence"`
	AverageDailySales float64 `json:"average_daily_sales"`
	PredictionPeriod  int     `json:"prediction_period"`
	GeneratedAt       string  `json:"generated_at"`
}

// WindowStart returns the inclusive lower bound of the trailing window ending
// at now.
func WindowStart(now time.Time) time.Time {
	return now.UTC().AddDate(0, 0, -WindowDays)
}

// Estimate computes the recommendation from per-product window summaries.
// Days-with-sales are summed across products, so one product selling on three
// distinct days counts three even if another product sold on the same days.
// Rounding is math.Round: half away from zero.
func Estimate(rows []models.SaleSummary, now time.Time) Prediction {
	generatedAt := now.UTC().Format(time.RFC3339)

	if len(rows) == 0 {
		return Prediction{
			RecommendedStock:  0,
			Confidence:        ConfidenceLow,
			AverageDailySales: 0,
			PredictionPeriod:  PredictionPeriodDays,
			GeneratedAt:       generatedAt,
		}
	}

	totalQuantity := 0
	totalDays := 0
	for _, row := range rows {
		totalQuantity += row.TotalQuantity
		totalDays += row.DaysWithSales
	}

	averageDailySales := float64(totalQuantity) / float64(max(totalDays, 1))
	recommended := int(math.Round(averageDailySales * PredictionPeriodDays))

	confidence := ConfidenceLow
	switch {
	case totalDays >= 5:
		confidence = ConfidenceHigh
	case totalDays >= 3:
		confidence = ConfidenceMedium
	}

	return Prediction{
		RecommendedStock:  recommended,
		Confidence:        confidence,
		AverageDailySales: averageDailySales,
		PredictionPeriod:  PredictionPeriodDays,
		GeneratedAt:       generatedAt,
	}
}
