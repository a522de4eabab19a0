package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	models "github.com/estolo/spaza-backend/internal/models"
	repo "github.com/estolo/spaza-backend/internal/repo"
)

// GetSuppliersHandler godoc
// @Summary List all suppliers
// @Description Returns every supplier ordered by name ascending.
// @Tags suppliers
// @Produce json
// @Success 200 {array} models.Supplier
// @Failure 500 {string} string "Internal error"
// @Router /api/suppliers [get]
func GetSuppliersHandler(w http.ResponseWriter, r *http.Request) {
	suppliers, err := supplierRepo.GetAll()
	if err != nil {
		zap.L().Error("could not fetch suppliers", zap.Error(err))
		http.Error(w, "could not fetch suppliers", http.StatusInternalServerError)
		return
	}
	if suppliers == nil {
		suppliers = []models.Supplier{}
	}
	writeJSON(w, http.StatusOK, suppliers)
}

// CreateSupplierHandler godoc
// @Summary Create a supplier
// @Tags suppliers
// @Accept json
// @Produce json
// @Param supplier body SupplierRequest true "Supplier to add"
// @Success 201 {object} models.Supplier
// @Failure 400 {array} ValidationError
// @Router /api/suppliers [post]
func CreateSupplierHandler(w http.ResponseWriter, r *http.Request) {
	var req SupplierRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	validationErrors := validateSupplier(req)
	if len(validationErrors) > 0 {
		writeJSON(w, http.StatusBadRequest, validationErrors)
		return
	}

	supplier := models.Supplier{
		ID:           newID(req.ID),
		Name:         req.Name,
		Phone:        req.Phone,
		Location:     req.Location,
		Email:        req.Email,
		BusinessName: req.BusinessName,
		CreatedAt:    nowOr(req.CreatedAt),
	}
	created, err := supplierRepo.Create(supplier)
	if err != nil {
		if errors.Is(err, repo.ErrDuplicateID) {
			http.Error(w, "supplier id already exists", http.StatusBadRequest)
			return
		}
		zap.L().Error("could not create supplier", zap.Error(err))
		http.Error(w, "could not create supplier", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

// UpdateSupplierHandler godoc
// @Summary Update a supplier
// @Tags suppliers
// @Accept json
// @Produce json
// @Param id path string true "Supplier ID"
// @Param supplier body SupplierRequest true "Updated supplier"
// @Success 200 {object} models.Supplier
// @Failure 400 {array} ValidationError
// @Failure 404 {string} string "Not found"
// @Router /api/suppliers/{id} [put]
func UpdateSupplierHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req SupplierRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	validationErrors := validateSupplier(req)
	if len(validationErrors) > 0 {
		writeJSON(w, http.StatusBadRequest, validationErrors)
		return
	}

	supplier := models.Supplier{
		ID:           id,
		Name:         req.Name,
		Phone:        req.Phone,
		Location:     req.Location,
		Email:        req.Email,
		BusinessName: req.BusinessName,
		CreatedAt:    nowOr(req.CreatedAt),
	}
	updated, err := supplierRepo.Update(supplier)
	if err != nil {
		if errors.Is(err, repo.ErrSupplierNotFound) {
			http.Error(w, "supplier not found", http.StatusNotFound)
			return
		}
		zap.L().Error("could not update supplier", zap.Error(err))
		http.Error(w, "could not update supplier", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

// DeleteSupplierHandler godoc
// @Summary Delete a supplier
// @Tags suppliers
// @Produce json
// @Param id path string true "Supplier ID"
// @Success 200 {object} StatusResponse
// @Failure 404 {string} string "Not found"
// @Router /api/suppliers/{id} [delete]
func DeleteSupplierHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := supplierRepo.Delete(id); err != nil {
		if errors.Is(err, repo.ErrSupplierNotFound) {
			http.Error(w, "supplier not found", http.StatusNotFound)
			return
		}
		zap.L().Error("could not delete supplier", zap.Error(err))
		http.Error(w, "could not delete supplier", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, StatusResponse{Status: "deleted"})
}
