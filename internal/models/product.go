package models

// Product represents an item kept in stock. Stock is allowed to go negative:
// sale creation never checks sufficiency, so oversell surfaces as negative
// stock on later reads.
type Product struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Stock     int     `json:"stock"`
	Price     float64 `json:"price"`
	Barcode   *string `json:"barcode,omitempty"`
	Category  *string `json:"category,omitempty"`
	CreatedAt string  `json:"created_at"`
}
