package models

type Supplier struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Phone        string  `json:"phone"`
	Location     string  `json:"location"`
	Email        *string `json:"email,omitempty"`
	BusinessName *string `json:"business_name,omitempty"`
	CreatedAt    string  `json:"created_at"`
}
