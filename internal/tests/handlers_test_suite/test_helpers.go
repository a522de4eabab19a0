package handlers_test_suite

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	handler "github.com/estolo/spaza-backend/internal/http/handlers"
	"github.com/estolo/spaza-backend/internal/repo"
)

var (
	productRepo  *repo.InMemoryProductRepository
	saleRepo     *repo.InMemorySaleRepository
	categoryRepo *repo.InMemoryCategoryRepository
	supplierRepo *repo.InMemorySupplierRepository
)

func init() {
	setupTestRepos()
}

func setupTestRepos() {
	categoryRepo = repo.NewInMemoryCategoryRepository()
	productRepo = repo.NewInMemoryProductRepository(categoryRepo)
	categoryRepo.SetProductRepository(productRepo)
	saleRepo = repo.NewInMemorySaleRepository(productRepo)
	supplierRepo = repo.NewInMemorySupplierRepository()

	handler.SetCategoryRepo(categoryRepo)
	handler.SetProductRepo(productRepo)
	handler.SetSaleRepo(saleRepo)
	handler.SetSupplierRepo(supplierRepo)
}

func clearAll() {
	productRepo.Clear()
	saleRepo.Clear()
	categoryRepo.Clear()
	supplierRepo.Clear()
}

func doJSON(r http.Handler, method, path string, payload any) *httptest.ResponseRecorder {
	var body *bytes.Reader
	if payload != nil {
		b, _ := json.Marshal(payload)
		body = bytes.NewReader(b)
	} else {
		body = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, body)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func createProduct(r http.Handler, p handler.ProductRequest) *httptest.ResponseRecorder {
	return doJSON(r, http.MethodPost, "/api/products", p)
}

func createSale(r http.Handler, s handler.SaleRequest) *httptest.ResponseRecorder {
	return doJSON(r, http.MethodPost, "/api/sales", s)
}

func createCategory(r http.Handler, c handler.CategoryRequest) *httptest.ResponseRecorder {
	return doJSON(r, http.MethodPost, "/api/categories", c)
}

func createSupplier(r http.Handler, s handler.SupplierRequest) *httptest.ResponseRecorder {
	return doJSON(r, http.MethodPost, "/api/suppliers", s)
}
