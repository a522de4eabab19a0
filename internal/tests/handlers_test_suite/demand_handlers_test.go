package handlers_test_suite

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/estolo/spaza-backend/internal/demand"
	api "github.com/estolo/spaza-backend/internal/http"
	handler "github.com/estolo/spaza-backend/internal/http/handlers"
)

func getPrediction(t *testing.T, r http.Handler) demand.Prediction {
	t.Helper()
	w := doJSON(r, http.MethodGet, "/api/analytics/demand", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	var p demand.Prediction
	if err := json.NewDecoder(w.Body).Decode(&p); err != nil {
		t.Fatalf("error decoding prediction: %v", err)
	}
	return p
}

func TestDemandPrediction_NoSales(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	p := getPrediction(t, r)
	if p.RecommendedStock != 0 {
		t.Errorf("expected recommendation 0, got %d", p.RecommendedStock)
	}
	if p.Confidence != demand.ConfidenceLow {
		t.Errorf("expected confidence %q, got %q", demand.ConfidenceLow, p.Confidence)
	}
	if p.PredictionPeriod != demand.PredictionPeriodDays {
		t.Errorf("expected prediction period %d, got %d", demand.PredictionPeriodDays, p.PredictionPeriod)
	}
	if p.GeneratedAt == "" {
		t.Error("expected generated_at to be set")
	}
}

func TestDemandPrediction_RecentSales(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()
	prod := createProductWithStock(t, r, "Maize Meal", 100)

	// 5 units yesterday, 3 units the day before: 8 units over 2 day-slots.
	now := time.Now().UTC()
	for _, s := range []struct {
		qty  int
		date string
	}{
		{5, now.AddDate(0, 0, -1).Format(time.RFC3339)},
		{3, now.AddDate(0, 0, -2).Format(time.RFC3339)},
	} {
		w := createSale(r, handler.SaleRequest{
			ProductID:   prod.ID,
			ProductName: prod.Name,
			Quantity:    s.qty,
			Price:       10,
			TotalPrice:  float64(s.qty) * 10,
			Date:        s.date,
		})
		if w.Code != http.StatusCreated {
			t.Fatalf("creating sale: expected 201, got %d", w.Code)
		}
	}

	p := getPrediction(t, r)
	if p.AverageDailySales != 4 {
		t.Errorf("expected average 4/day, got %v", p.AverageDailySales)
	}
	if p.RecommendedStock != 20 {
		t.Errorf("expected recommendation 20, got %d", p.RecommendedStock)
	}
	if p.Confidence != demand.ConfidenceLow {
		t.Errorf("expected confidence %q for 2 day-slots, got %q", demand.ConfidenceLow, p.Confidence)
	}
}

func TestDemandPrediction_IgnoresSalesOutsideWindow(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()
	prod := createProductWithStock(t, r, "Cooking Oil", 100)

	old := time.Now().UTC().AddDate(0, 0, -30).Format(time.RFC3339)
	w := createSale(r, handler.SaleRequest{
		ProductID:   prod.ID,
		ProductName: prod.Name,
		Quantity:    50,
		Price:       10,
		TotalPrice:  500,
		Date:        old,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("creating sale: expected 201, got %d", w.Code)
	}

	p := getPrediction(t, r)
	if p.RecommendedStock != 0 {
		t.Errorf("expected stale sale to be ignored, got recommendation %d", p.RecommendedStock)
	}
}

func TestRootHandler(t *testing.T) {
	r := api.NewRouter()

	w := doJSON(r, http.MethodGet, "/", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	var resp handler.MessageResponse
	json.NewDecoder(w.Body).Decode(&resp)
	if resp.Message == "" {
		t.Error("expected a banner message")
	}
}

func TestHealthHandlers(t *testing.T) {
	r := api.NewRouter()

	for _, path := range []string{"/health", "/health/db"} {
		w := doJSON(r, http.MethodGet, path, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("%s: expected 200 OK, got %d", path, w.Code)
		}
		var resp handler.HealthResponse
		if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
			t.Fatalf("%s: error decoding response: %v", path, err)
		}
		if resp.Status != "ok" {
			t.Errorf("%s: expected status ok, got %q", path, resp.Status)
		}
	}
}
