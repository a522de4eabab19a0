package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	models "github.com/estolo/spaza-backend/internal/models"
	repo "github.com/estolo/spaza-backend/internal/repo"
)

// GetCategoriesHandler godoc
// @Summary List all categories
// @Description Returns every category ordered by name ascending.
// @Tags categories
// @Produce json
// @Success 200 {array} models.Category
// @Failure 500 {string} string "Internal error"
// @Router /api/categories [get]
func GetCategoriesHandler(w http.ResponseWriter, r *http.Request) {
	categories, err := categoryRepo.GetAll()
	if err != nil {
		zap.L().Error("could not fetch categories", zap.Error(err))
		http.Error(w, "could not fetch categories", http.StatusInternalServerError)
		return
	}
	if categories == nil {
		categories = []models.Category{}
	}
	writeJSON(w, http.StatusOK, categories)
}

// CreateCategoryHandler godoc
// @Summary Create a category
// @Description Fails when a category with the same name already exists (case-sensitive match).
// @Tags categories
// @Accept json
// @Produce json
// @Param category body CategoryRequest true "Category to add"
// @Success 201 {object} models.Category
// @Failure 400 {string} string "Duplicate name"
// @Router /api/categories [post]
func CreateCategoryHandler(w http.ResponseWriter, r *http.Request) {
	var req CategoryRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	validationErrors := validateCategory(req)
	if len(validationErrors) > 0 {
		writeJSON(w, http.StatusBadRequest, validationErrors)
		return
	}

	category := models.Category{
		ID:        newID(req.ID),
		Name:      req.Name,
		CreatedAt: nowOr(req.CreatedAt),
	}
	created, err := categoryRepo.Create(category)
	if err != nil {
		if errors.Is(err, repo.ErrCategoryNameTaken) {
			http.Error(w, "category with this name already exists", http.StatusBadRequest)
			return
		}
		zap.L().Error("could not create category", zap.Error(err))
		http.Error(w, "could not create category", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

// DeleteCategoryHandler godoc
// @Summary Delete a category
// @Description Clears the category reference on every product pointing at it, then removes the category.
// @Tags categories
// @Produce json
// @Param id path string true "Category ID"
// @Success 200 {object} StatusResponse
// @Failure 404 {string} string "Not found"
// @Router /api/categories/{id} [delete]
func DeleteCategoryHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := categoryRepo.Delete(id); err != nil {
		if errors.Is(err, repo.ErrCategoryNotFound) {
			http.Error(w, "category not found", http.StatusNotFound)
			return
		}
		zap.L().Error("could not delete category", zap.Error(err))
		http.Error(w, "could not delete category", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, StatusResponse{Status: "deleted"})
}
