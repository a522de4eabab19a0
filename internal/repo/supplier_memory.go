package repo

import (
	"sort"

	"github.com/estolo/spaza-backend/internal/models"
)

// InMemorySupplierRepository is an in-memory implementation of
// SupplierRepository, used by the handler test suites.
type InMemorySupplierRepository struct {
	suppliers []models.Supplier
}

func NewInMemorySupplierRepository() *InMemorySupplierRepository {
	return &InMemorySupplierRepository{}
}

func (r *InMemorySupplierRepository) Create(s models.Supplier) (models.Supplier, error) {
	for _, existing := range r.suppliers {
		if existing.ID == s.ID {
			return models.Supplier{}, ErrDuplicateID
		}
	}
	r.suppliers = append(r.suppliers, s)
	return s, nil
}

func (r *InMemorySupplierRepository) GetAll() ([]models.Supplier, error) {
	out := make([]models.Supplier, len(r.suppliers))
	copy(out, r.suppliers)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *InMemorySupplierRepository) Update(s models.Supplier) (models.Supplier, error) {
	for i, existing := range r.suppliers {
		if existing.ID == s.ID {
			r.suppliers[i] = s
			return s, nil
		}
	}
	return models.Supplier{}, ErrSupplierNotFound
}

func (r *InMemorySupplierRepository) Delete(id string) error {
	for i, s := range r.suppliers {
		if s.ID == id {
			r.suppliers = append(r.suppliers[:i], r.suppliers[i+1:]...)
			return nil
		}
	}
	return ErrSupplierNotFound
}

func (r *InMemorySupplierRepository) Clear() {
	r.suppliers = nil
}
