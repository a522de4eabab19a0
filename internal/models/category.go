package models

// Category names are unique. Auto-created categories use the name as their id.
type Category struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at"`
}
