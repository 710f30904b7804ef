package model

import "time"

// Sweet represents an inventory item row in the database.
type Sweet struct {
	ID        int64
	Name      string
	Category  string
	Price     float64
	Quantity  int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CreateSweetRequest represents a request to add a new sweet to the inventory.
type CreateSweetRequest struct {
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
	Quantity int64   `json:"quantity"`
}

// RestockRequest represents a request to increase a sweet's stock.
type RestockRequest struct {
	Quantity int64 `json:"quantity"`
}

// SweetResponse represents a sweet in API responses.
type SweetResponse struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
	Quantity int64   `json:"quantity"`
}

// SweetToResponse converts a Sweet row to its API representation.
func SweetToResponse(s *Sweet) SweetResponse {
	return SweetResponse{
		ID:       s.ID,
		Name:     s.Name,
		Category: s.Category,
		Price:    s.Price,
		Quantity: s.Quantity,
	}
}
