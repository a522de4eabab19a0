package repo

import (
	"time"

	"github.com/estolo/spaza-backend/internal/models"
)

// ProductRepository defines the interface for product data operations.
// Saving a product with a non-empty category ensures the category exists as
// part of the same unit of work.
type ProductRepository interface {
	Create(p models.Product) (models.Product, error)
	GetAll() ([]models.Product, error)
	GetByID(id string) (models.Product, error)
	Update(p models.Product) (models.Product, error)
	Delete(id string) error
}

// CategoryRepository defines the interface for category data operations.
type CategoryRepository interface {
	Create(c models.Category) (models.Category, error)
	GetAll() ([]models.Category, error)
	// Delete removes the category and clears the category reference on every
	// product that points at it, atomically.
	Delete(id string) error
	// Ensure creates the category if no category with that name exists, using
	// the name as its id. Idempotent.
	Ensure(name, createdAt string) error
}

// SupplierRepository defines the interface for supplier data operations.
type SupplierRepository interface {
	Create(s models.Supplier) (models.Supplier, error)
	GetAll() ([]models.Supplier, error)
	Update(s models.Supplier) (models.Supplier, error)
	Delete(id string) error
}

// SaleRepository defines the interface for the sale ledger. Every write is
// paired with a compensating stock mutation on the referenced product inside
// the same unit of work, so that a product's stock always equals its initial
// stock minus the quantities of its active sales.
type SaleRepository interface {
	Create(s models.Sale) (models.Sale, error)
	GetAll() ([]models.Sale, error)
	Update(id string, s models.Sale) (models.Sale, error)
	Delete(id string) error
	// Summary aggregates sales dated at or after since, grouped by product:
	// total quantity and count of distinct calendar dates with sales.
	Summary(since time.Time) ([]models.SaleSummary, error)
}
