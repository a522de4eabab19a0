package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	models "github.com/estolo/spaza-backend/internal/models"
	repo "github.com/estolo/spaza-backend/internal/repo"
)

// CreateSaleHandler godoc
// @Summary Record a sale
// @Description Inserts the sale and decrements the product's stock by the sold quantity. No stock-sufficiency check is made here; stock is allowed to go negative.
// @Tags sales
// @Accept json
// @Produce json
// @Param sale body SaleRequest true "Sale to record"
// @Success 201 {object} models.Sale
// @Failure 400 {array} ValidationError
// @Router /api/sales [post]
func CreateSaleHandler(w http.ResponseWriter, r *http.Request) {
	var req SaleRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	validationErrors := validateSale(req)
	if len(validationErrors) > 0 {
		writeJSON(w, http.StatusBadRequest, validationErrors)
		return
	}

	sale := models.Sale{
		ID:          newID(req.ID),
		ProductID:   req.ProductID,
		ProductName: req.ProductName,
		Quantity:    req.Quantity,
		Price:       req.Price,
		TotalPrice:  req.TotalPrice,
		Date:        nowOr(req.Date),
	}
	created, err := saleRepo.Create(sale)
	if err != nil {
		if errors.Is(err, repo.ErrDuplicateID) {
			http.Error(w, "sale id already exists", http.StatusBadRequest)
			return
		}
		zap.L().Error("could not record sale", zap.Error(err))
		http.Error(w, "could not record sale", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

// GetSalesHandler godoc
// @Summary List all sales
// @Description Returns every sale ordered by date descending.
// @Tags sales
// @Produce json
// @Success 200 {array} models.Sale
// @Failure 500 {string} string "Internal error"
// @Router /api/sales [get]
func GetSalesHandler(w http.ResponseWriter, r *http.Request) {
	sales, err := saleRepo.GetAll()
	if err != nil {
		zap.L().Error("could not fetch sales", zap.Error(err))
		http.Error(w, "could not fetch sales", http.StatusInternalServerError)
		return
	}
	if sales == nil {
		sales = []models.Sale{}
	}
	writeJSON(w, http.StatusOK, sales)
}

// UpdateSaleHandler godoc
// @Summary Amend a sale
// @Description Overwrites the sale's mutable fields and applies the quantity delta to the product's stock. The product reference is immutable; raising the quantity past current stock is rejected.
// @Tags sales
// @Accept json
// @Produce json
// @Param id path string true "Sale ID"
// @Param sale body SaleRequest true "Amended sale"
// @Success 200 {object} models.Sale
// @Failure 400 {string} string "Immutable product reference or insufficient stock"
// @Failure 404 {string} string "Not found"
// @Router /api/sales/{id} [put]
func UpdateSaleHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req SaleRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	validationErrors := validateSale(req)
	if len(validationErrors) > 0 {
		writeJSON(w, http.StatusBadRequest, validationErrors)
		return
	}

	sale := models.Sale{
		ID:          id,
		ProductID:   req.ProductID,
		ProductName: req.ProductName,
		Quantity:    req.Quantity,
		Price:       req.Price,
		TotalPrice:  req.TotalPrice,
		Date:        nowOr(req.Date),
	}
	updated, err := saleRepo.Update(id, sale)
	if err != nil {
		switch {
		case errors.Is(err, repo.ErrSaleNotFound):
			http.Error(w, "sale not found", http.StatusNotFound)
		case errors.Is(err, repo.ErrProductNotFound):
			http.Error(w, "product not found", http.StatusNotFound)
		case errors.Is(err, repo.ErrSaleProductImmutable):
			http.Error(w, "changing product_id for a sale is not supported", http.StatusBadRequest)
		case errors.Is(err, repo.ErrInsufficientStock):
			http.Error(w, "insufficient stock for updated sale quantity", http.StatusBadRequest)
		default:
			zap.L().Error("could not update sale", zap.Error(err))
			http.Error(w, "could not update sale", http.StatusInternalServerError)
		}
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

// DeleteSaleHandler godoc
// @Summary Reverse a sale
// @Description Deletes the sale and restores its quantity to the product's stock. Restoring onto a product that no longer exists is a no-op and still succeeds.
// @Tags sales
// @Produce json
// @Param id path string true "Sale ID"
// @Success 200 {object} StatusResponse
// @Failure 404 {string} string "Not found"
// @Router /api/sales/{id} [delete]
func DeleteSaleHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := saleRepo.Delete(id); err != nil {
		if errors.Is(err, repo.ErrSaleNotFound) {
			http.Error(w, "sale not found", http.StatusNotFound)
			return
		}
		zap.L().Error("could not delete sale", zap.Error(err))
		http.Error(w, "could not delete sale", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, StatusResponse{Status: "deleted"})
}
