package models

// Sale is one ledger entry. ProductName and Price are denormalized copies of
// the product at time of sale; TotalPrice is supplied by the caller and not
// recomputed. ProductID is immutable once the sale exists.
type Sale struct {
	ID          string  `json:"id"`
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
	TotalPrice  float64 `json:"total_price"`
	Date        string  `json:"date"`
}

// SaleSummary is one row of the per-product aggregation over the trailing
// sales window: total quantity sold and the number of distinct calendar dates
// with at least one sale.
type SaleSummary struct {
	ProductID     string
	TotalQuantity int
	DaysWithSales int
}
