package repo

import (
	"testing"
	"time"
)

func TestSummaryGroupsByProductAndDistinctDay(t *testing.T) {
	_, products, sales := newTestStore()
	mustCreateProduct(t, products, "p1", 100)
	mustCreateProduct(t, products, "p2", 100)

	// p1: two sales on the 20th, one on the 21st; p2: one sale on the 20th.
	sales.Create(sale("s1", "p1", 2, "2026-08-20T09:00:00Z"))
	sales.Create(sale("s2", "p1", 3, "2026-08-20T18:30:00Z"))
	sales.Create(sale("s3", "p1", 4, "2026-08-21T09:00:00Z"))
	sales.Create(sale("s4", "p2", 5, "2026-08-20T09:00:00Z"))

	since := time.Date(2026, 8, 18, 0, 0, 0, 0, time.UTC)
	rows, err := sales.Summary(since)
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}

	byProduct := map[string][2]int{}
	for _, row := range rows {
		byProduct[row.ProductID] = [2]int{row.TotalQuantity, row.DaysWithSales}
	}
	if got := byProduct["p1"]; got != [2]int{9, 2} {
		t.Errorf("p1: got quantity %d over %d days, want 9 over 2", got[0], got[1])
	}
	if got := byProduct["p2"]; got != [2]int{5, 1} {
		t.Errorf("p2: got quantity %d over %d days, want 5 over 1", got[0], got[1])
	}
}

func TestSummaryExcludesSalesBeforeCutoff(t *testing.T) {
	_, products, sales := newTestStore()
	mustCreateProduct(t, products, "p1", 100)

	sales.Create(sale("s1", "p1", 10, "2026-08-10T09:00:00Z"))
	sales.Create(sale("s2", "p1", 3, "2026-08-20T09:00:00Z"))

	since := time.Date(2026, 8, 18, 0, 0, 0, 0, time.UTC)
	rows, err := sales.Summary(since)
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if len(rows) != 1 || rows[0].TotalQuantity != 3 || rows[0].DaysWithSales != 1 {
		t.Errorf("expected only the in-window sale, got %+v", rows)
	}
}

func TestSummaryEmptyWindow(t *testing.T) {
	_, products, sales := newTestStore()
	mustCreateProduct(t, products, "p1", 100)
	sales.Create(sale("s1", "p1", 10, "2026-08-10T09:00:00Z"))

	rows, err := sales.Summary(time.Date(2026, 8, 18, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("expected no rows, got %+v", rows)
	}
}
