package handlers

import (
	"database/sql"

	repo "github.com/estolo/spaza-backend/internal/repo"
)

var (
	productRepo  repo.ProductRepository
	saleRepo     repo.SaleRepository
	categoryRepo repo.CategoryRepository
	supplierRepo repo.SupplierRepository

	database *sql.DB
	dbEngine string
)

func SetProductRepo(r repo.ProductRepository) {
	productRepo = r
}

func SetSaleRepo(r repo.SaleRepository) {
	saleRepo = r
}

func SetCategoryRepo(r repo.CategoryRepository) {
	categoryRepo = r
}

func SetSupplierRepo(r repo.SupplierRepository) {
	supplierRepo = r
}

// SetDatabase wires the raw handle used by the database health check. The
// handler test suites leave it nil and run against the in-memory repos.
func SetDatabase(db *sql.DB, engine string) {
	database = db
	dbEngine = engine
}
