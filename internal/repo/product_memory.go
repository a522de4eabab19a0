package repo

import (
	"sort"

	"github.com/estolo/spaza-backend/internal/models"
)

// InMemoryProductRepository is an in-memory implementation of
// ProductRepository, used by the handler test suites.
type InMemoryProductRepository struct {
	products   []models.Product
	categories *InMemoryCategoryRepository
}

func NewInMemoryProductRepository(categories *InMemoryCategoryRepository) *InMemoryProductRepository {
	return &InMemoryProductRepository{categories: categories}
}

func (r *InMemoryProductRepository) Create(p models.Product) (models.Product, error) {
	for _, existing := range r.products {
		if existing.ID == p.ID {
			return models.Product{}, ErrDuplicateID
		}
	}
	if err := r.ensureCategory(p); err != nil {
		return models.Product{}, err
	}
	r.products = append(r.products, p)
	return p, nil
}

func (r *InMemoryProductRepository) GetAll() ([]models.Product, error) {
	out := make([]models.Product, len(r.products))
	copy(out, r.products)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *InMemoryProductRepository) GetByID(id string) (models.Product, error) {
	for _, p := range r.products {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Product{}, ErrProductNotFound
}

func (r *InMemoryProductRepository) Update(p models.Product) (models.Product, error) {
	for i, existing := range r.products {
		if existing.ID == p.ID {
			if err := r.ensureCategory(p); err != nil {
				return models.Product{}, err
			}
			r.products[i] = p
			return p, nil
		}
	}
	return models.Product{}, ErrProductNotFound
}

func (r *InMemoryProductRepository) Delete(id string) error {
	for i, p := range r.products {
		if p.ID == id {
			r.products = append(r.products[:i], r.products[i+1:]...)
			return nil
		}
	}
	return ErrProductNotFound
}

func (r *InMemoryProductRepository) ensureCategory(p models.Product) error {
	if r.categories == nil || p.Category == nil || *p.Category == "" {
		return nil
	}
	return r.categories.Ensure(*p.Category, p.CreatedAt)
}

// adjustStock applies a stock delta to the product. A missing product is a
// no-op, mirroring an UPDATE that affects zero rows.
func (r *InMemoryProductRepository) adjustStock(id string, delta int) {
	for i := range r.products {
		if r.products[i].ID == id {
			r.products[i].Stock += delta
			return
		}
	}
}

// clearCategory drops the category reference from every product pointing at it.
func (r *InMemoryProductRepository) clearCategory(categoryID string) {
	for i := range r.products {
		if r.products[i].Category != nil && *r.products[i].Category == categoryID {
			r.products[i].Category = nil
		}
	}
}

func (r *InMemoryProductRepository) Clear() {
	r.products = nil
}
