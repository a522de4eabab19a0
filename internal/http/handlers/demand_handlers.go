package handlers

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/estolo/spaza-backend/internal/demand"
)

// GetDemandPredictionHandler godoc
// @Summary Shop-wide demand prediction
// @Description Aggregates the trailing 7 days of sales into one recommended stock figure for the shop. No sales in the window yields a zero recommendation with low confidence.
// @Tags analytics
// @Produce json
// @Success 200 {object} demand.Prediction
// @Failure 500 {string} string "Internal error"
// @Router /api/analytics/demand [get]
func GetDemandPredictionHandler(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	rows, err := saleRepo.Summary(demand.WindowStart(now))
	if err != nil {
		zap.L().Error("could not compute demand prediction", zap.Error(err))
		http.Error(w, "could not compute demand prediction", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, demand.Estimate(rows, now))
}
