package handlers

// Requests mirror the persisted payloads; id and created_at are optional and
// filled in server-side when omitted.

type ProductRequest struct {
	ID        string  `json:"id,omitempty"`
	Name      string  `json:"name"`
	Stock     int     `json:"stock"`
	Price     float64 `json:"price"`
	Barcode   *string `json:"barcode,omitempty"`
	Category  *string `json:"category,omitempty"`
	CreatedAt string  `json:"created_at,omitempty"`
}

type SaleRequest struct {
	ID          string  `json:"id,omitempty"`
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
	TotalPrice  float64 `json:"total_price"`
	Date        string  `json:"date,omitempty"`
}

type CategoryRequest struct {
	ID        string `json:"id,omitempty"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at,omitempty"`
}

type SupplierRequest struct {
	ID           string  `json:"id,omitempty"`
	Name         string  `json:"name"`
	Phone        string  `json:"phone"`
	Location     string  `json:"location"`
	Email        *string `json:"email,omitempty"`
	BusinessName *string `json:"business_name,omitempty"`
	CreatedAt    string  `json:"created_at,omitempty"`
}

type StatusResponse struct {
	Status string `json:"status"`
}

type HealthResponse struct {
	Status   string `json:"status"`
	DBEngine string `json:"db_engine"`
	Error    string `json:"error,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
