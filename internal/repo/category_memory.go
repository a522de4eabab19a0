package repo

import (
	"sort"

	"github.com/estolo/spaza-backend/internal/models"
)

// InMemoryCategoryRepository is an in-memory implementation of
// CategoryRepository, used by the handler test suites.
type InMemoryCategoryRepository struct {
	categories []models.Category
	products   *InMemoryProductRepository
}

func NewInMemoryCategoryRepository() *InMemoryCategoryRepository {
	return &InMemoryCategoryRepository{}
}

// SetProductRepository wires the product repository so category deletion can
// orphan the products referencing it.
func (r *InMemoryCategoryRepository) SetProductRepository(products *InMemoryProductRepository) {
	r.products = products
}

func (r *InMemoryCategoryRepository) Create(c models.Category) (models.Category, error) {
	for _, existing := range r.categories {
		if existing.Name == c.Name {
			return models.Category{}, ErrCategoryNameTaken
		}
	}
	r.categories = append(r.categories, c)
	return c, nil
}

func (r *InMemoryCategoryRepository) GetAll() ([]models.Category, error) {
	out := make([]models.Category, len(r.categories))
	copy(out, r.categories)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *InMemoryCategoryRepository) Delete(id string) error {
	for i, c := range r.categories {
		if c.ID == id {
			if r.products != nil {
				r.products.clearCategory(id)
			}
			r.categories = append(r.categories[:i], r.categories[i+1:]...)
			return nil
		}
	}
	return ErrCategoryNotFound
}

func (r *InMemoryCategoryRepository) Ensure(name, createdAt string) error {
	for _, c := range r.categories {
		if c.Name == name {
			return nil
		}
	}
	r.categories = append(r.categories, models.Category{ID: name, Name: name, CreatedAt: createdAt})
	return nil
}

func (r *InMemoryCategoryRepository) Clear() {
	r.categories = nil
}
