package handlers_test_suite

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	api "github.com/estolo/spaza-backend/internal/http"
	handler "github.com/estolo/spaza-backend/internal/http/handlers"
	"github.com/estolo/spaza-backend/internal/models"
)

func TestCreateProductHandler_Valid(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	w := createProduct(r, handler.ProductRequest{Name: "Maize Meal 5kg", Price: 89.99, Stock: 12})

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 Created, got %d", w.Code)
	}

	var resp models.Product
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}

	if resp.Name != "Maize Meal 5kg" {
		t.Errorf("expected name 'Maize Meal 5kg', got %v", resp.Name)
	}
	if resp.Price != 89.99 {
		t.Errorf("expected price 89.99, got %v", resp.Price)
	}
	if resp.Stock != 12 {
		t.Errorf("expected stock 12, got %v", resp.Stock)
	}
	if resp.ID == "" {
		t.Error("expected server-generated id")
	}
	if resp.CreatedAt == "" {
		t.Error("expected server-generated created_at")
	}
}

func TestCreateProductHandler_ClientSuppliedIDAndTimestamp(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	w := createProduct(r, handler.ProductRequest{
		ID:        "prod-1",
		Name:      "Bread",
		Price:     18.5,
		CreatedAt: "2026-08-01T08:00:00Z",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 Created, got %d", w.Code)
	}

	var resp models.Product
	json.NewDecoder(w.Body).Decode(&resp)
	if resp.ID != "prod-1" {
		t.Errorf("expected supplied id to be kept, got %v", resp.ID)
	}
	if resp.CreatedAt != "2026-08-01T08:00:00Z" {
		t.Errorf("expected supplied created_at to be kept, got %v", resp.CreatedAt)
	}
}

func TestCreateProductHandler_NegativeStockAllowed(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	w := createProduct(r, handler.ProductRequest{Name: "Oversold Item", Price: 5, Stock: -4})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 Created for negative stock, got %d", w.Code)
	}
}

func TestCreateProductHandler_Invalid(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	tests := []struct {
		name           string
		payload        handler.ProductRequest
		expectedErrors []string
	}{
		{
			name:           "Empty name and negative price",
			payload:        handler.ProductRequest{Name: "", Price: -1},
			expectedErrors: []string{"Name", "Price"},
		},
		{
			name:           "Empty name only",
			payload:        handler.ProductRequest{Name: "", Price: 100.0},
			expectedErrors: []string{"Name"},
		},
		{
			name:           "Negative price only",
			payload:        handler.ProductRequest{Name: "Sugar", Price: -5.0},
			expectedErrors: []string{"Price"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := createProduct(r, tt.payload)

			if w.Code != http.StatusBadRequest {
				t.Errorf("expected status 400, got %d", w.Code)
			}

			var resp []handler.ValidationError
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				t.Fatalf("error decoding response: %v", err)
			}

			for _, field := range tt.expectedErrors {
				found := false
				for _, err := range resp {
					if strings.EqualFold(err.Field, field) {
						found = true
						break
					}
				}
				if !found {
					t.Errorf("expected error for field %q, but not found", field)
				}
			}
		})
	}
}

func TestCreateProductHandler_MalformedJSON(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	badJSON := `{name: "Invalid" price: 100 "}` // missing comma
	req := httptest.NewRequest(http.MethodPost, "/api/products", bytes.NewBufferString(badJSON))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400 Bad Request, got %d", w.Code)
	}

	expectedBody := "invalid input\n"
	if w.Body.String() != expectedBody {
		t.Errorf("expected response body %q, got %q", expectedBody, w.Body.String())
	}
}

func TestCreateProductHandler_AutoCreatesCategory(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	cat := "beverages"
	w := createProduct(r, handler.ProductRequest{Name: "Cola 2L", Price: 25, Category: &cat})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 Created, got %d", w.Code)
	}

	getW := doJSON(r, http.MethodGet, "/api/categories", nil)
	if getW.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", getW.Code)
	}
	var cats []models.Category
	json.NewDecoder(getW.Body).Decode(&cats)
	if len(cats) != 1 || cats[0].Name != "beverages" {
		t.Errorf("expected the category to be auto-created, got %+v", cats)
	}
}

func TestGetProductsHandler(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	if w := createProduct(r, handler.ProductRequest{Name: "Sugar 2kg", Price: 45.5, Stock: 8}); w.Code != http.StatusCreated {
		t.Fatalf("expected 201 Created, got %d", w.Code)
	}
	if w := createProduct(r, handler.ProductRequest{Name: "Bread", Price: 18.5, Stock: 20}); w.Code != http.StatusCreated {
		t.Fatalf("expected 201 Created, got %d", w.Code)
	}

	getW := doJSON(r, http.MethodGet, "/api/products", nil)
	if getW.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", getW.Code)
	}

	var products []models.Product
	if err := json.NewDecoder(getW.Body).Decode(&products); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if len(products) != 2 {
		t.Fatalf("expected 2 products, got %d", len(products))
	}
	// Listing is ordered by name ascending.
	if products[0].Name != "Bread" || products[1].Name != "Sugar 2kg" {
		t.Errorf("expected name-ascending order, got %q then %q", products[0].Name, products[1].Name)
	}
}

func TestGetProductsHandler_EmptyIsArray(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	w := doJSON(r, http.MethodGet, "/api/products", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	if got := strings.TrimSpace(w.Body.String()); got != "[]" {
		t.Errorf("expected empty JSON array, got %q", got)
	}
}

func TestUpdateProductHandler_Valid(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	w := createProduct(r, handler.ProductRequest{Name: "Old Name", Price: 100.0, Stock: 1})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 Created, got %d", w.Code)
	}
	var created models.Product
	json.NewDecoder(w.Body).Decode(&created)

	updateW := doJSON(r, http.MethodPut, "/api/products/"+created.ID,
		handler.ProductRequest{Name: "New Name", Price: 200.0, Stock: 2, CreatedAt: created.CreatedAt})
	if updateW.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", updateW.Code)
	}

	var updated models.Product
	if err := json.NewDecoder(updateW.Body).Decode(&updated); err != nil {
		t.Fatalf("error decoding update response: %v", err)
	}
	if updated.Name != "New Name" {
		t.Errorf("expected name 'New Name', got %v", updated.Name)
	}
	if updated.Price != 200.0 {
		t.Errorf("expected price 200.0, got %v", updated.Price)
	}
	if updated.Stock != 2 {
		t.Errorf("expected stock 2, got %v", updated.Stock)
	}
}

func TestUpdateProductHandler_NotFound(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	w := doJSON(r, http.MethodPut, "/api/products/missing", handler.ProductRequest{Name: "Ghost", Price: 1.0})
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 Not Found, got %d", w.Code)
	}
}

func TestDeleteProductHandler(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	w := createProduct(r, handler.ProductRequest{Name: "Doomed", Price: 1})
	var created models.Product
	json.NewDecoder(w.Body).Decode(&created)

	delW := doJSON(r, http.MethodDelete, "/api/products/"+created.ID, nil)
	if delW.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", delW.Code)
	}
	var status handler.StatusResponse
	json.NewDecoder(delW.Body).Decode(&status)
	if status.Status != "deleted" {
		t.Errorf("expected status 'deleted', got %q", status.Status)
	}

	if again := doJSON(r, http.MethodDelete, "/api/products/"+created.ID, nil); again.Code != http.StatusNotFound {
		t.Errorf("expected 404 on second delete, got %d", again.Code)
	}
}
