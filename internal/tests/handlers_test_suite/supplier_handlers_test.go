package handlers_test_suite

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	api "github.com/estolo/spaza-backend/internal/http"
	handler "github.com/estolo/spaza-backend/internal/http/handlers"
	"github.com/estolo/spaza-backend/internal/models"
)

func TestCreateSupplierHandler_Valid(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	email := "orders@kasiwholesale.co.za"
	w := createSupplier(r, handler.SupplierRequest{
		Name:     "Kasi Wholesale",
		Phone:    "+27 82 555 0101",
		Location: "Soweto",
		Email:    &email,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 Created, got %d", w.Code)
	}

	var resp models.Supplier
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if resp.Name != "Kasi Wholesale" {
		t.Errorf("expected name 'Kasi Wholesale', got %v", resp.Name)
	}
	if resp.Email == nil || *resp.Email != email {
		t.Errorf("expected email %q, got %v", email, resp.Email)
	}
	if resp.ID == "" {
		t.Error("expected server-generated id")
	}
}

func TestCreateSupplierHandler_Invalid(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	w := createSupplier(r, handler.SupplierRequest{Name: "", Phone: "", Location: ""})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 Bad Request, got %d", w.Code)
	}

	var resp []handler.ValidationError
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	for _, field := range []string{"Name", "Phone", "Location"} {
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
}

func TestGetSuppliersHandler_SortedByName(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	for _, name := range []string{"Zanele Distributors", "Ace Cash & Carry"} {
		w := createSupplier(r, handler.SupplierRequest{Name: name, Phone: "000", Location: "Town"})
		if w.Code != http.StatusCreated {
			t.Fatalf("creating %q: expected 201, got %d", name, w.Code)
		}
	}

	w := doJSON(r, http.MethodGet, "/api/suppliers", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	var suppliers []models.Supplier
	json.NewDecoder(w.Body).Decode(&suppliers)
	if len(suppliers) != 2 || suppliers[0].Name != "Ace Cash & Carry" {
		t.Errorf("expected name-ascending order, got %+v", suppliers)
	}
}

func TestUpdateSupplierHandler_Valid(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	w := createSupplier(r, handler.SupplierRequest{Name: "Old Supplier", Phone: "111", Location: "Here"})
	var created models.Supplier
	json.NewDecoder(w.Body).Decode(&created)

	updateW := doJSON(r, http.MethodPut, "/api/suppliers/"+created.ID,
		handler.SupplierRequest{Name: "New Supplier", Phone: "222", Location: "There", CreatedAt: created.CreatedAt})
	if updateW.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", updateW.Code)
	}
	var updated models.Supplier
	json.NewDecoder(updateW.Body).Decode(&updated)
	if updated.Name != "New Supplier" || updated.Phone != "222" || updated.Location != "There" {
		t.Errorf("unexpected updated supplier: %+v", updated)
	}
}

func TestUpdateSupplierHandler_NotFound(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	w := doJSON(r, http.MethodPut, "/api/suppliers/missing",
		handler.SupplierRequest{Name: "Ghost", Phone: "0", Location: "Nowhere"})
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 Not Found, got %d", w.Code)
	}
}

func TestDeleteSupplierHandler(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	w := createSupplier(r, handler.SupplierRequest{Name: "Doomed", Phone: "1", Location: "Gone"})
	var created models.Supplier
	json.NewDecoder(w.Body).Decode(&created)

	delW := doJSON(r, http.MethodDelete, "/api/suppliers/"+created.ID, nil)
	if delW.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", delW.Code)
	}

	if again := doJSON(r, http.MethodDelete, "/api/suppliers/"+created.ID, nil); again.Code != http.StatusNotFound {
		t.Errorf("expected 404 on second delete, got %d", again.Code)
	}
}
