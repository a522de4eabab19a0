package repo

import "errors"

var (
	// ErrProductNotFound is returned when a product id does not exist.
	ErrProductNotFound = errors.New("product not found")

	// ErrSaleNotFound is returned when a sale id does not exist.
	ErrSaleNotFound = errors.New("sale not found")

	// ErrCategoryNotFound is returned when a category id does not exist.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrSupplierNotFound is returned when a supplier id does not exist.
	ErrSupplierNotFound = errors.New("supplier not found")

	// ErrCategoryNameTaken is returned when creating a category whose name
	// already exists (case-sensitive match).
	ErrCategoryNameTaken = errors.New("category with this name already exists")

	// ErrSaleProductImmutable is returned when an amendment tries to point an
	// existing sale at a different product.
	ErrSaleProductImmutable = errors.New("changing product_id for a sale is not supported")

	// ErrInsufficientStock is returned when an amendment would consume more
	// stock than the product currently has. Sale creation deliberately does
	// not perform this check.
	ErrInsufficientStock = errors.New("insufficient stock for updated sale quantity")

	// ErrDuplicateID is returned when creating a record whose id already
	// exists. The SQL repositories rely on the primary key constraint instead.
	ErrDuplicateID = errors.New("id already exists")
)
